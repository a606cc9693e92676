package checkoutControllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janjabro30/Nornex-as-sub000/checkout"
	"github.com/janjabro30/Nornex-as-sub000/middleware"
	"github.com/janjabro30/Nornex-as-sub000/models"
	"gorm.io/gorm"
)

type ShippingInput struct {
	MethodID string `json:"method_id" binding:"required"`
}

type DiscountInput struct {
	Code string `json:"code" binding:"required"`
}

type SubmitInput struct {
	PaymentMethod string `json:"payment_method"`
	AcceptTerms   bool   `json:"accept_terms"`
}

func sessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

func cartItems(c *gin.Context, db *gorm.DB, sid string) ([]models.CartItem, bool) {
	var cart models.Cart
	if err := db.Preload("Items").Where("session_id = ?", sid).First(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return nil, false
	}
	return cart.Items, true
}

func getSession(c *gin.Context, store *checkout.SessionStore, sid string) (*checkout.Session, bool) {
	sess, err := store.Get(c.Param("checkoutID"), sid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return nil, false
	}
	return sess, true
}

func view(sess *checkout.Session, items []models.CartItem) gin.H {
	w := sess.Wizard
	return gin.H{
		"checkout_id":     sess.ID,
		"step":            w.Step,
		"delivery":        w.Delivery,
		"delivery_method": w.DeliveryMethod,
		"payment_method":  w.PaymentMethod,
		"discount":        w.Discount,
		"pricing":         checkout.Quote(models.Subtotal(items), w.DeliveryMethod, w.Discount),
	}
}

// GET /checkout/delivery-methods
func ListDeliveryMethods() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, checkout.DeliveryMethods)
	}
}

// POST /checkout/start
// Opens a checkout session over the current cart; rejects an empty cart.
func StartCheckout(db *gorm.DB, store *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		sess := store.Start(sid)
		sess.Lock()
		defer sess.Unlock()
		c.JSON(http.StatusCreated, view(sess, items))
	}
}

// GET /checkout/:checkoutID
func GetCheckout(db *gorm.DB, store *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		sess, ok := getSession(c, store, sid)
		if !ok {
			return
		}
		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()
		c.JSON(http.StatusOK, view(sess, items))
	}
}

// PUT /checkout/:checkoutID/delivery
// Step 1: delivery info. Field errors come back inline, keyed per field.
func SubmitDelivery(db *gorm.DB, store *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		sess, ok := getSession(c, store, sid)
		if !ok {
			return
		}

		var info models.DeliveryInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.Lock()
		defer sess.Unlock()
		if errs := sess.Wizard.SubmitDelivery(info, middleware.Lang(c)); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"field_errors": errs})
			return
		}

		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, view(sess, items))
	}
}

// PUT /checkout/:checkoutID/shipping
// Step 2: shipping method. Advancing is unconditional once a method exists.
func SubmitShipping(db *gorm.DB, store *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		sess, ok := getSession(c, store, sid)
		if !ok {
			return
		}

		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.Lock()
		defer sess.Unlock()
		if err := sess.Wizard.SubmitShipping(input.MethodID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, view(sess, items))
	}
}

// POST /checkout/:checkoutID/discount
// Validates a code against the table and attaches it to the session.
func ApplyDiscount(db *gorm.DB, store *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		sess, ok := getSession(c, store, sid)
		if !ok {
			return
		}

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}
		subtotal := models.Subtotal(items)

		var dc models.DiscountCode
		code := strings.ToUpper(strings.TrimSpace(input.Code))
		if err := db.Where("code = ?", code).First(&dc).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": checkout.ErrCodeInvalid.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up code"})
			return
		}

		applied, err := checkout.ValidateDiscount(dc, subtotal, time.Now())
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		sess.Lock()
		defer sess.Unlock()
		sess.Wizard.Discount = applied
		c.JSON(http.StatusOK, gin.H{
			"message": checkout.SavingsMessage(*applied, subtotal, middleware.Lang(c)),
			"pricing": checkout.Quote(subtotal, sess.Wizard.DeliveryMethod, applied),
		})
	}
}

// DELETE /checkout/:checkoutID/discount
func RemoveDiscount(db *gorm.DB, store *checkout.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		sess, ok := getSession(c, store, sid)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()
		sess.Wizard.Discount = nil

		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, view(sess, items))
	}
}

// POST /checkout/:checkoutID/submit
// Step 3: terms gate, then the order finalizer. The checkout session ends
// and the cart is cleared by the submitter on success.
func Submit(db *gorm.DB, store *checkout.SessionStore, submitter checkout.OrderSubmitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		sess, ok := getSession(c, store, sid)
		if !ok {
			return
		}

		var input SubmitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.Lock()
		defer sess.Unlock()
		if errs := sess.Wizard.Complete(input.PaymentMethod, input.AcceptTerms, middleware.Lang(c)); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"field_errors": errs})
			return
		}

		items, ok := cartItems(c, db, sid)
		if !ok {
			return
		}

		order, err := submitter.Submit(c.Request.Context(), sess, items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess.Wizard.MarkCompleted()
		store.End(sess.ID)

		c.JSON(http.StatusCreated, gin.H{
			"message":      "Order placed successfully",
			"order_number": order.OrderNumber,
			"order":        order,
		})
	}
}
