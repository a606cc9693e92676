package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	SessionID string     `gorm:"uniqueIndex" json:"session_id"`                              // Enforces ONE cart per session
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CartID        uint      `gorm:"index" json:"-"` // Faster queries
	ProductID     uint      `json:"product_id"`
	ProductSKU    string    `json:"product_sku"`
	ProductNameNO string    `json:"product_name_no"`
	ProductNameEN string    `json:"product_name_en"`
	ProductImage  string    `json:"product_image"`
	ProductGrade  Grade     `json:"product_grade"`
	UnitPrice     float64   `json:"unit_price"` // snapshot, ex. VAT
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

// LineTotal is the pre-tax total for this line.
func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Subtotal sums pre-tax line totals over items.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}
