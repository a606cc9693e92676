package models

import "time"

type SellbackStatus string

const (
	SellbackStatusQuoteRequested SellbackStatus = "quote_requested" // Customer submitted the form
	SellbackStatusInspected      SellbackStatus = "inspected"       // Device received and graded
	SellbackStatusPaymentSent    SellbackStatus = "payment_sent"    // Offer accepted, payout made
	SellbackStatusCompleted      SellbackStatus = "completed"       // Device entered refurb stock
	SellbackStatusRejected       SellbackStatus = "rejected"        // Offer declined or device unusable
)

// Sellback is a customer offer to sell a used device to the company
// (buyback), tracked through the inspection/payout pipeline.
type Sellback struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	RefNo            string         `gorm:"uniqueIndex;not null" json:"ref_no"`
	CustomerName     string         `gorm:"not null" json:"customer_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Device           string         `gorm:"not null" json:"device"`
	ClaimedCondition Grade          `gorm:"type:VARCHAR(4)" json:"claimed_condition"` // what the customer says
	GradedCondition  Grade          `gorm:"type:VARCHAR(4)" json:"graded_condition"`  // set at inspection
	OfferedPrice     float64        `json:"offered_price"`
	Status           SellbackStatus `gorm:"type:VARCHAR(20);default:'quote_requested'" json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
