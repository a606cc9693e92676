package contentControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

type TestimonialView struct {
	ID      uint   `json:"id"`
	Author  string `json:"author"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Rating  int    `json:"rating"`
}

// GET /testimonials
func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := middleware.Lang(c)

		var testimonials []models.Testimonial
		if err := db.Order("created_at DESC").Find(&testimonials).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
			return
		}

		views := make([]TestimonialView, 0, len(testimonials))
		for _, t := range testimonials {
			views = append(views, TestimonialView{
				ID:      t.ID,
				Author:  t.Author,
				Company: t.Company,
				Quote:   models.Pick(lang, t.QuoteNO, t.QuoteEN),
				Rating:  t.Rating,
			})
		}
		c.JSON(http.StatusOK, views)
	}
}

type TestimonialInput struct {
	Author  string `json:"author" binding:"required"`
	Company string `json:"company"`
	QuoteNO string `json:"quote_no" binding:"required"`
	QuoteEN string `json:"quote_en"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// POST /admin/testimonials
func CreateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TestimonialInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		testimonial := models.Testimonial{
			Author:  input.Author,
			Company: input.Company,
			QuoteNO: input.QuoteNO,
			QuoteEN: input.QuoteEN,
			Rating:  input.Rating,
		}

		if err := db.Create(&testimonial).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
			return
		}
		c.JSON(http.StatusCreated, testimonial)
	}
}

// DELETE /admin/testimonials/:id
func DeleteTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid testimonial ID"})
			return
		}

		result := db.Delete(&models.Testimonial{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
	}
}
