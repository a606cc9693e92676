package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Grade string

const (
	GradeA   Grade = "A"   // Like new, minimal wear
	GradeB   Grade = "B"   // Light cosmetic wear
	GradeC   Grade = "C"   // Visible wear, fully functional
	GradeNew Grade = "NEW" // Unopened stock
)

func ParseGrade(s string) (Grade, error) {
	switch strings.ToUpper(s) {
	case string(GradeA):
		return GradeA, nil
	case string(GradeB):
		return GradeB, nil
	case string(GradeC):
		return GradeC, nil
	case string(GradeNew):
		return GradeNew, nil
	default:
		return "", errors.New("invalid grade")
	}
}

type Product struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU           string `gorm:"uniqueIndex;not null" json:"sku"`
	NameNO        string `gorm:"not null" json:"name_no"` // Norwegian name
	NameEN        string `json:"name_en"`                 // English name
	DescriptionNO string `json:"description_no"`
	DescriptionEN string `json:"description_en"`
	Price         float64 `gorm:"not null" json:"price"` // unit price, ex. VAT
	ComparePrice  float64 `json:"compare_price"`         // original/new price for refurb context
	Grade         Grade   `gorm:"type:VARCHAR(4);default:'A'" json:"grade"`
	Image         string  `json:"image"`
	Categories    []Category `gorm:"many2many:product_categories;" json:"categories"`
	Stock         int        `json:"stock"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Name returns the localized product name.
func (p Product) Name(lang Lang) string {
	return Pick(lang, p.NameNO, p.NameEN)
}

type Category struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	NameNO   string `gorm:"unique;not null" json:"name_no"`
	NameEN   string `gorm:"unique;not null" json:"name_en"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	Products []Product `gorm:"many2many:product_categories" json:"-"`
}
