package models

import "time"

type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpiring   ContractStatus = "expiring" // inside the renewal window
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract is a recurring service agreement tracked in the back-office.
type Contract struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string         `gorm:"not null" json:"customer_name"`
	Company      string         `json:"company"`
	Email        string         `json:"email"`
	Type         string         `gorm:"not null" json:"type"` // e.g. "support", "hosting", "backup"
	MonthlyPrice float64        `json:"monthly_price"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Status       ContractStatus `gorm:"type:VARCHAR(20);default:'active'" json:"status"`
	Notes        string         `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
