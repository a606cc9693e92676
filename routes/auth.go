package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/session", auth.CreateSession(db))
	}
}
