package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/janjabro30/Nornex-as-sub000/controllers/admin"
	cartControllers "github.com/janjabro30/Nornex-as-sub000/controllers/cart"
	contentControllers "github.com/janjabro30/Nornex-as-sub000/controllers/content"
	contractControllers "github.com/janjabro30/Nornex-as-sub000/controllers/contract"
	orderControllers "github.com/janjabro30/Nornex-as-sub000/controllers/order"
	productcontroller "github.com/janjabro30/Nornex-as-sub000/controllers/product"
	repairControllers "github.com/janjabro30/Nornex-as-sub000/controllers/repair"
	sellbackControllers "github.com/janjabro30/Nornex-as-sub000/controllers/sellback"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Admin Accounts ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/session/:sessionID", orderControllers.GetSessionOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Contracts ───────────
		contractAdmin := adminGroup.Group("/contracts")
		{
			contractAdmin.GET("", contractControllers.GetAllContracts(db))
			contractAdmin.POST("", contractControllers.CreateContract(db))
			contractAdmin.PUT("/:id", contractControllers.UpdateContract(db))
			contractAdmin.PUT("/:id/status", contractControllers.UpdateContractStatus(db))
			contractAdmin.DELETE("/:id", contractControllers.DeleteContract(db))
		}

		// ─────────── Repairs ───────────
		repairAdmin := adminGroup.Group("/repairs")
		{
			repairAdmin.GET("", repairControllers.GetAllRepairs(db))
			repairAdmin.PUT("/:id/status", repairControllers.UpdateRepairStatus(db))
			repairAdmin.DELETE("/:id", repairControllers.DeleteRepair(db))
		}

		// ─────────── Sellback ───────────
		sellbackAdmin := adminGroup.Group("/sellback")
		{
			sellbackAdmin.GET("", sellbackControllers.GetAllSellbacks(db))
			sellbackAdmin.PUT("/:id/status", sellbackControllers.UpdateSellbackStatus(db))
			sellbackAdmin.DELETE("/:id", sellbackControllers.DeleteSellback(db))
		}

		// ─────────── Content Editor ───────────
		contentAdmin := adminGroup.Group("/content")
		{
			contentAdmin.POST("/services", contentControllers.CreateService(db))
			contentAdmin.PUT("/services/:id", contentControllers.UpdateService(db))
			contentAdmin.DELETE("/services/:id", contentControllers.DeleteService(db))

			contentAdmin.POST("/packages", contentControllers.CreatePackage(db))
			contentAdmin.PUT("/packages/:id", contentControllers.UpdatePackage(db))
			contentAdmin.DELETE("/packages/:id", contentControllers.DeletePackage(db))

			contentAdmin.POST("/testimonials", contentControllers.CreateTestimonial(db))
			contentAdmin.DELETE("/testimonials/:id", contentControllers.DeleteTestimonial(db))

			contentAdmin.POST("/blog", contentControllers.CreateBlogPost(db))
			contentAdmin.PUT("/blog/:id", contentControllers.UpdateBlogPost(db))
			contentAdmin.DELETE("/blog/:id", contentControllers.DeleteBlogPost(db))
		}

		// ─────────── Session carts ───────────
		cartMgmt := adminGroup.Group("/session-cart")
		{
			cartMgmt.GET("/:session_id", cartControllers.GetAdminSessionCart(db))
		}
	}
}
