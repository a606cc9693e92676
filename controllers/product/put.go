package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	SKU           *string  `json:"sku"`
	NameNO        *string  `json:"name_no"`
	NameEN        *string  `json:"name_en"`
	DescriptionNO *string  `json:"description_no"`
	DescriptionEN *string  `json:"description_en"`
	Price         *float64 `json:"price"`
	ComparePrice  *float64 `json:"compare_price"`
	Grade         *string  `json:"grade"`
	Image         *string  `json:"image"`
	Stock         *int     `json:"stock"`
	CategoryIDs   *[]uint  `json:"category_ids"`
}

// UpdateProduct applies a partial update; only fields present in the body change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.SKU != nil {
			product.SKU = *input.SKU
		}
		if input.NameNO != nil {
			product.NameNO = *input.NameNO
		}
		if input.NameEN != nil {
			product.NameEN = *input.NameEN
		}
		if input.DescriptionNO != nil {
			product.DescriptionNO = *input.DescriptionNO
		}
		if input.DescriptionEN != nil {
			product.DescriptionEN = *input.DescriptionEN
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.ComparePrice != nil {
			product.ComparePrice = *input.ComparePrice
		}
		if input.Grade != nil {
			grade, err := models.ParseGrade(*input.Grade)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grade"})
				return
			}
			product.Grade = grade
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if input.CategoryIDs != nil {
				var categories []models.Category
				if len(*input.CategoryIDs) > 0 {
					if err := tx.Where("id IN ?", *input.CategoryIDs).Find(&categories).Error; err != nil {
						return err
					}
				}
				if err := tx.Model(&product).Association("Categories").Replace(categories); err != nil {
					return err
				}
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
