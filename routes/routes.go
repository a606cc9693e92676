package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/checkout"
	orderControllers "github.com/janjabro30/Nornex-as-sub000/controllers/order"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Shop, Checkout,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Every response is localized; Norwegian is the default.
	r.Use(middleware.Language)

	// Checkout state and the order finalizer are shared by the shop routes.
	store := checkout.NewSessionStore(30 * time.Minute)
	submitter := &checkout.GormSubmitter{
		DB:     db,
		Notify: orderControllers.BroadcastNewOrder,
	}

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public content + storefront, JWT-protected cart and checkout
	SetupShopRoutes(r, db, store, submitter)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// Order routes
	SetupOrderRoutes(r, db)
}
