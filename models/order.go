package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by staff
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

// DeliveryInfo is embedded in Order; collected by checkout step 1.
type DeliveryInfo struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	PostalCode          string `json:"postal_code"`
	City                string `json:"city"`
	UseDifferentBilling bool   `json:"use_different_billing"`
	SaveAddress         bool   `json:"save_address"`
}

type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrderNumber    string        `gorm:"uniqueIndex;not null" json:"order_number"`
	SessionID      string        `gorm:"index" json:"session_id"`
	Delivery       DeliveryInfo  `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal       float64       `json:"subtotal"`
	DiscountCode   string        `json:"discount_code"`
	DiscountAmount float64       `json:"discount_amount"`
	Tax            float64       `json:"tax"`
	ShippingCost   float64       `json:"shipping_cost"`
	TotalAmount    float64       `json:"total_amount"`
	DeliveryMethod string        `json:"delivery_method"`
	PaymentMethod  string        `json:"payment_method"` // e.g. "card", "vipps", "invoice"
	Status         OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"-"`
	ProductID     uint    `json:"product_id"`
	ProductSKU    string  `json:"product_sku"`
	ProductNameNO string  `json:"product_name_no"`
	ProductNameEN string  `json:"product_name_en"`
	ProductImage  string  `json:"product_image"`
	ProductGrade  Grade   `json:"product_grade"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
}
