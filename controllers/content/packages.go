package contentControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

type PackageView struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	MonthlyPrice float64  `json:"monthly_price"`
	Features     []string `json:"features"`
	Highlighted  bool     `json:"highlighted"`
}

func packageView(p models.ServicePackage, lang models.Lang) PackageView {
	features := models.Pick(lang, p.FeaturesNO, p.FeaturesEN)
	var list []string
	for _, f := range strings.Split(features, "\n") {
		if f = strings.TrimSpace(f); f != "" {
			list = append(list, f)
		}
	}
	return PackageView{
		ID:           p.ID,
		Name:         models.Pick(lang, p.NameNO, p.NameEN),
		MonthlyPrice: p.MonthlyPrice,
		Features:     list,
		Highlighted:  p.Highlighted,
	}
}

// GET /packages
func GetPackages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := middleware.Lang(c)

		var packages []models.ServicePackage
		if err := db.Order("sort_order ASC, monthly_price ASC").Find(&packages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
			return
		}

		views := make([]PackageView, 0, len(packages))
		for _, p := range packages {
			views = append(views, packageView(p, lang))
		}
		c.JSON(http.StatusOK, views)
	}
}

type PackageInput struct {
	NameNO       string  `json:"name_no" binding:"required"`
	NameEN       string  `json:"name_en"`
	MonthlyPrice float64 `json:"monthly_price" binding:"required,gt=0"`
	FeaturesNO   string  `json:"features_no"`
	FeaturesEN   string  `json:"features_en"`
	Highlighted  bool    `json:"highlighted"`
	SortOrder    int     `json:"sort_order"`
}

// POST /admin/packages
func CreatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pkg := models.ServicePackage{
			NameNO:       input.NameNO,
			NameEN:       input.NameEN,
			MonthlyPrice: input.MonthlyPrice,
			FeaturesNO:   input.FeaturesNO,
			FeaturesEN:   input.FeaturesEN,
			Highlighted:  input.Highlighted,
			SortOrder:    input.SortOrder,
		}

		if err := db.Create(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

// PUT /admin/packages/:id
func UpdatePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
			return
		}

		var pkg models.ServicePackage
		if err := db.First(&pkg, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}

		var input PackageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		pkg.NameNO = input.NameNO
		pkg.NameEN = input.NameEN
		pkg.MonthlyPrice = input.MonthlyPrice
		pkg.FeaturesNO = input.FeaturesNO
		pkg.FeaturesEN = input.FeaturesEN
		pkg.Highlighted = input.Highlighted
		pkg.SortOrder = input.SortOrder

		if err := db.Save(&pkg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

// DELETE /admin/packages/:id
func DeletePackage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID"})
			return
		}

		result := db.Delete(&models.ServicePackage{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
	}
}
