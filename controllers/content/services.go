package contentControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

// ServiceView is the localized public projection of a Service.
type ServiceView struct {
	ID          uint        `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Body        string      `json:"body,omitempty"`
	Icon        models.Icon `json:"icon"`
	Category    string      `json:"category"`
	PriceFrom   float64     `json:"price_from"`
}

func serviceView(s models.Service, lang models.Lang, withBody bool) ServiceView {
	v := ServiceView{
		ID:          s.ID,
		Slug:        s.Slug,
		Name:        models.Pick(lang, s.NameNO, s.NameEN),
		Description: models.Pick(lang, s.DescriptionNO, s.DescriptionEN),
		Icon:        s.Icon,
		Category:    s.Category,
		PriceFrom:   s.PriceFrom,
	}
	if withBody {
		v.Body = models.Pick(lang, s.BodyNO, s.BodyEN)
	}
	return v
}

// GET /services
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := middleware.Lang(c)

		query := db.Model(&models.Service{}).Order("sort_order ASC, id ASC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var services []models.Service
		if err := query.Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}

		views := make([]ServiceView, 0, len(services))
		for _, s := range services {
			views = append(views, serviceView(s, lang, false))
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /services/:slug
func GetServiceBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var service models.Service
		if err := db.Where("slug = ?", c.Param("slug")).First(&service).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
			}
			return
		}
		c.JSON(http.StatusOK, serviceView(service, middleware.Lang(c), true))
	}
}

type ServiceInput struct {
	Slug          string  `json:"slug" binding:"required"`
	NameNO        string  `json:"name_no" binding:"required"`
	NameEN        string  `json:"name_en"`
	DescriptionNO string  `json:"description_no"`
	DescriptionEN string  `json:"description_en"`
	BodyNO        string  `json:"body_no"`
	BodyEN        string  `json:"body_en"`
	Icon          string  `json:"icon" binding:"required"`
	Category      string  `json:"category"`
	PriceFrom     float64 `json:"price_from"`
	SortOrder     int     `json:"sort_order"`
}

// POST /admin/services
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		icon, err := models.ParseIcon(input.Icon)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		service := models.Service{
			Slug:          input.Slug,
			NameNO:        input.NameNO,
			NameEN:        input.NameEN,
			DescriptionNO: input.DescriptionNO,
			DescriptionEN: input.DescriptionEN,
			BodyNO:        input.BodyNO,
			BodyEN:        input.BodyEN,
			Icon:          icon,
			Category:      input.Category,
			PriceFrom:     input.PriceFrom,
			SortOrder:     input.SortOrder,
		}

		if err := db.Create(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

// PUT /admin/services/:id
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
			return
		}

		var service models.Service
		if err := db.First(&service, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}

		var input ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		icon, err := models.ParseIcon(input.Icon)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		service.Slug = input.Slug
		service.NameNO = input.NameNO
		service.NameEN = input.NameEN
		service.DescriptionNO = input.DescriptionNO
		service.DescriptionEN = input.DescriptionEN
		service.BodyNO = input.BodyNO
		service.BodyEN = input.BodyEN
		service.Icon = icon
		service.Category = input.Category
		service.PriceFrom = input.PriceFrom
		service.SortOrder = input.SortOrder

		if err := db.Save(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

// DELETE /admin/services/:id
func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
			return
		}

		result := db.Delete(&models.Service{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
	}
}
