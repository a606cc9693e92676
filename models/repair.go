package models

import "time"

type RepairStatus string

const (
	RepairStatusReceived      RepairStatus = "received"       // Device checked in
	RepairStatusDiagnosing    RepairStatus = "diagnosing"     // Fault being identified
	RepairStatusAwaitingParts RepairStatus = "awaiting_parts" // Parts on order
	RepairStatusRepairing     RepairStatus = "repairing"      // Work in progress
	RepairStatusCompleted     RepairStatus = "completed"      // Repair done, ready for pickup
	RepairStatusDelivered     RepairStatus = "delivered"      // Returned to customer
)

// Repair is a workshop job, created by the public intake form and moved
// through the pipeline by staff.
type Repair struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	RefNo        string       `gorm:"uniqueIndex;not null" json:"ref_no"`
	CustomerName string       `gorm:"not null" json:"customer_name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Device       string       `gorm:"not null" json:"device"`
	Issue        string       `gorm:"type:text" json:"issue"`
	Estimate     float64      `json:"estimate"` // quoted price, 0 until diagnosed
	Status       RepairStatus `gorm:"type:VARCHAR(20);default:'received'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
