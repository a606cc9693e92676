package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/janjabro30/Nornex-as-sub000/controllers/order"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates (admin dashboard)
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch a single order by id or order number (confirmation page)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Fetch orders for the calling session
		orders.GET("", middleware.ValidateToken, sessionOrders(db))
	}
}

// sessionOrders resolves the caller's session before delegating to the
// session order listing.
func sessionOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Get("session_id")
		id, _ := sid.(string)
		if id == "" {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		c.Params = append(c.Params, gin.Param{Key: "sessionID", Value: id})
		orderControllers.GetSessionOrdersHandler(db)(c)
	}
}
