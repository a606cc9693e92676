package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/checkout"
	cartControllers "github.com/janjabro30/Nornex-as-sub000/controllers/cart"
	checkoutControllers "github.com/janjabro30/Nornex-as-sub000/controllers/checkout"
	contentControllers "github.com/janjabro30/Nornex-as-sub000/controllers/content"
	productcontroller "github.com/janjabro30/Nornex-as-sub000/controllers/product"
	repairControllers "github.com/janjabro30/Nornex-as-sub000/controllers/repair"
	sellbackControllers "github.com/janjabro30/Nornex-as-sub000/controllers/sellback"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public storefront/content endpoints and the
// JWT-protected cart and checkout endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, store *checkout.SessionStore, submitter checkout.OrderSubmitter) {
	// ──────────────── Public content ────────────────
	r.GET("/services", contentControllers.GetServices(db))
	r.GET("/services/:slug", contentControllers.GetServiceBySlug(db))
	r.GET("/packages", contentControllers.GetPackages(db))
	r.GET("/testimonials", contentControllers.GetTestimonials(db))
	r.GET("/blog", contentControllers.GetBlogPosts(db))
	r.GET("/blog/:slug", contentControllers.GetBlogPostBySlug(db))

	// ──────────────── Public storefront ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategoriesWithProducts(db))

	// ──────────────── Public intake & tracking ────────────────
	r.POST("/repairs", repairControllers.CreateRepair(db))
	r.GET("/repairs/:ref", repairControllers.GetRepairByRef(db))
	r.POST("/sellback", sellbackControllers.CreateSellback(db))
	r.GET("/sellback/:ref", sellbackControllers.GetSellbackByRef(db))

	// ──────────────── Shopping cart (JWT) ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartQuantity(db))
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}

	// ──────────────── Checkout (JWT) ────────────────
	r.GET("/delivery-methods", checkoutControllers.ListDeliveryMethods())

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ValidateToken)
	{
		checkoutGroup.POST("/start", checkoutControllers.StartCheckout(db, store))
		checkoutGroup.GET("/:checkoutID", checkoutControllers.GetCheckout(db, store))
		checkoutGroup.PUT("/:checkoutID/delivery", checkoutControllers.SubmitDelivery(db, store))
		checkoutGroup.PUT("/:checkoutID/shipping", checkoutControllers.SubmitShipping(db, store))
		checkoutGroup.POST("/:checkoutID/discount", checkoutControllers.ApplyDiscount(db, store))
		checkoutGroup.DELETE("/:checkoutID/discount", checkoutControllers.RemoveDiscount(db, store))
		checkoutGroup.POST("/:checkoutID/submit", checkoutControllers.Submit(db, store, submitter))
	}
}
