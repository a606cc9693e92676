package models

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage" // value is a percent of subtotal
	DiscountFixed      DiscountType = "fixed"      // value is a flat kr amount
)

type DiscountCode struct {
	ID             uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string       `gorm:"uniqueIndex;not null" json:"code"` // stored uppercase
	Type           DiscountType `gorm:"type:VARCHAR(12);not null" json:"type"`
	Value          float64      `gorm:"not null" json:"value"`
	ValidFrom      time.Time    `json:"valid_from"`
	ValidUntil     time.Time    `json:"valid_until"`
	MinOrderAmount float64      `json:"min_order_amount"` // 0 means no minimum
	MaxUses        int          `json:"max_uses"`         // 0 means unlimited
	CurrentUses    int          `json:"current_uses"`
	IsActive       bool         `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
