package models

import "time"

// Session identifies an anonymous browsing session; the cart and checkout
// are keyed on it.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Admin struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"unique"`
	Name     string
	Approved bool
}
