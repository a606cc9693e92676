package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Icon is the closed set of icon identifiers the frontend can render.
// Unknown names are rejected when content is written, not when it is shown.
type Icon string

const (
	IconLaptop   Icon = "laptop"
	IconServer   Icon = "server"
	IconShield   Icon = "shield"
	IconWrench   Icon = "wrench"
	IconCloud    Icon = "cloud"
	IconNetwork  Icon = "network"
	IconPhone    Icon = "phone"
	IconRecycle  Icon = "recycle"
	IconHeadset  Icon = "headset"
	IconDatabase Icon = "database"
)

func ParseIcon(s string) (Icon, error) {
	switch Icon(strings.ToLower(s)) {
	case IconLaptop, IconServer, IconShield, IconWrench, IconCloud,
		IconNetwork, IconPhone, IconRecycle, IconHeadset, IconDatabase:
		return Icon(strings.ToLower(s)), nil
	default:
		return "", errors.New("invalid icon: " + s)
	}
}

// Service is a marketing service page (managed by the admin content editor).
type Service struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	NameNO        string  `gorm:"not null" json:"name_no"`
	NameEN        string  `json:"name_en"`
	DescriptionNO string  `json:"description_no"`
	DescriptionEN string  `json:"description_en"`
	BodyNO        string  `gorm:"type:text" json:"body_no"`
	BodyEN        string  `gorm:"type:text" json:"body_en"`
	Icon          Icon    `gorm:"type:VARCHAR(20)" json:"icon"`
	Category      string  `json:"category"` // e.g. "support", "repair", "cloud"
	PriceFrom     float64 `json:"price_from"`
	SortOrder     int     `json:"sort_order"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// ServicePackage is a recurring support bundle (monthly price + feature list).
type ServicePackage struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	NameNO       string  `gorm:"not null" json:"name_no"`
	NameEN       string  `json:"name_en"`
	MonthlyPrice float64 `gorm:"not null" json:"monthly_price"`
	FeaturesNO   string  `gorm:"type:text" json:"features_no"` // newline-separated
	FeaturesEN   string  `gorm:"type:text" json:"features_en"`
	Highlighted  bool    `json:"highlighted"`
	SortOrder    int     `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Author    string `gorm:"not null" json:"author"`
	Company   string `json:"company"`
	QuoteNO   string `gorm:"type:text" json:"quote_no"`
	QuoteEN   string `gorm:"type:text" json:"quote_en"`
	Rating    int    `json:"rating"` // 1..5
	CreatedAt time.Time `json:"created_at"`
}

type BlogPost struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	TitleNO     string `gorm:"not null" json:"title_no"`
	TitleEN     string `json:"title_en"`
	ExcerptNO   string `json:"excerpt_no"`
	ExcerptEN   string `json:"excerpt_en"`
	BodyNO      string `gorm:"type:text" json:"body_no"`
	BodyEN      string `gorm:"type:text" json:"body_en"`
	Image       string `json:"image"`
	Published   bool   `gorm:"default:false" json:"published"`
	PublishedAt time.Time      `json:"published_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
