package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}
