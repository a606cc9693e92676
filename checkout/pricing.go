package checkout

import (
	"errors"

	"github.com/janjabro30/Nornex-as-sub000/models"
)

const (
	// FreeShippingThreshold is the pre-tax subtotal above which standard
	// shipping is waived. Express is never waived.
	FreeShippingThreshold = 500.0

	// VATRate is Norwegian MVA, applied to the discounted subtotal.
	VATRate = 0.25
)

// DeliveryMethod is one row of the shipping options shown in checkout step 2.
type DeliveryMethod struct {
	ID            string  `json:"id"`
	NameNO        string  `json:"name_no"`
	NameEN        string  `json:"name_en"`
	Price         float64 `json:"price"`
	EstimatedDays string  `json:"estimated_days"`
	Express       bool    `json:"express"` // excluded from the free-shipping threshold
}

// DeliveryMethods is the fixed option table, in display order.
var DeliveryMethods = []DeliveryMethod{
	{ID: "home", NameNO: "Hjemlevering", NameEN: "Home delivery", Price: 99, EstimatedDays: "2-4"},
	{ID: "pickup", NameNO: "Hentested", NameEN: "Pickup point", Price: 49, EstimatedDays: "2-5"},
	{ID: "express", NameNO: "Ekspresslevering", NameEN: "Express delivery", Price: 199, EstimatedDays: "1", Express: true},
	{ID: "store", NameNO: "Hent i butikk", NameEN: "Store pickup", Price: 0, EstimatedDays: "0-1"},
}

var ErrUnknownDeliveryMethod = errors.New("unknown delivery method")

func DeliveryMethodByID(id string) (DeliveryMethod, error) {
	for _, m := range DeliveryMethods {
		if m.ID == id {
			return m, nil
		}
	}
	return DeliveryMethod{}, ErrUnknownDeliveryMethod
}

// AppliedDiscount is the transient projection of a resolved discount code.
type AppliedDiscount struct {
	Code  string              `json:"code"`
	Type  models.DiscountType `json:"type"`
	Value float64             `json:"value"`
}

// Breakdown is the full pricing result for a cart.
type Breakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Shipping       float64 `json:"shipping"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// Quote prices a cart: discount is clamped to the subtotal, VAT applies to
// the discounted subtotal, and standard shipping is free at or above the
// threshold.
func Quote(subtotal float64, method DeliveryMethod, discount *AppliedDiscount) Breakdown {
	b := Breakdown{Subtotal: subtotal}

	if discount != nil {
		switch discount.Type {
		case models.DiscountPercentage:
			b.DiscountAmount = subtotal * discount.Value / 100
		case models.DiscountFixed:
			b.DiscountAmount = discount.Value
		}
		if b.DiscountAmount > subtotal {
			b.DiscountAmount = subtotal
		}
	}

	b.Shipping = method.Price
	if subtotal >= FreeShippingThreshold && !method.Express {
		b.Shipping = 0
	}

	b.Tax = (subtotal - b.DiscountAmount) * VATRate
	b.Total = subtotal - b.DiscountAmount + b.Tax + b.Shipping
	return b
}
