package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	SKU           string  `json:"sku" binding:"required"`
	NameNO        string  `json:"name_no" binding:"required"`
	NameEN        string  `json:"name_en"`
	DescriptionNO string  `json:"description_no"`
	DescriptionEN string  `json:"description_en"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	ComparePrice  float64 `json:"compare_price"`
	Grade         string  `json:"grade" binding:"required"`
	Image         string  `json:"image"`
	Stock         int     `json:"stock"`
	CategoryIDs   []uint  `json:"category_ids"`
}

// CreateProduct creates a refurbished product with its categories.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		grade, err := models.ParseGrade(input.Grade)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid grade"})
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}

		newProduct := models.Product{
			SKU:           input.SKU,
			NameNO:        input.NameNO,
			NameEN:        input.NameEN,
			DescriptionNO: input.DescriptionNO,
			DescriptionEN: input.DescriptionEN,
			Price:         input.Price,
			ComparePrice:  input.ComparePrice,
			Grade:         grade,
			Image:         input.Image,
			Stock:         input.Stock,
			Categories:    categories,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
