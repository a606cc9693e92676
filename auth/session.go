package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

// POST /auth/session
// Creates an anonymous browsing session with an empty cart and returns a JWT
// the storefront sends on every cart/checkout call.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + uuid.NewString()

		session := models.Session{
			ID:        sessionID,
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		// Provision the cart up front so cart handlers can assume it exists
		cart := models.Cart{SessionID: sessionID}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}

		token, err := issueSessionToken(sessionID, session.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func issueSessionToken(id string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"role":       "customer",
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
