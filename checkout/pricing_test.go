package checkout

import (
	"testing"

	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func method(t *testing.T, id string) DeliveryMethod {
	t.Helper()
	m, err := DeliveryMethodByID(id)
	require.NoError(t, err)
	return m
}

func TestQuote_FreeShippingThreshold(t *testing.T) {
	home := method(t, "home")

	tests := []struct {
		name         string
		subtotal     float64
		wantShipping float64
	}{
		{"below threshold pays flat fee", 499, 99},
		{"at threshold ships free", 500, 0},
		{"above threshold ships free", 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Quote(tt.subtotal, home, nil)
			assert.Equal(t, tt.wantShipping, b.Shipping)
		})
	}
}

func TestQuote_ExpressNeverFree(t *testing.T) {
	express := method(t, "express")

	b := Quote(10000, express, nil)
	assert.Equal(t, 199.0, b.Shipping)
}

func TestQuote_HomeDeliveryExample(t *testing.T) {
	// 1000 kr subtotal, home delivery waived at the threshold:
	// tax 250, total 1250.
	b := Quote(1000, method(t, "home"), nil)

	assert.Equal(t, 0.0, b.Shipping)
	assert.Equal(t, 250.0, b.Tax)
	assert.Equal(t, 1250.0, b.Total)
}

func TestQuote_ExpressExample(t *testing.T) {
	// 300 kr subtotal with express: 300 + 199 + 75 = 574.
	b := Quote(300, method(t, "express"), nil)

	assert.Equal(t, 199.0, b.Shipping)
	assert.Equal(t, 75.0, b.Tax)
	assert.Equal(t, 574.0, b.Total)
}

func TestQuote_PercentageDiscountExample(t *testing.T) {
	// SAVE10 on 1000 kr: discount 100, tax on 900 = 225, free shipping.
	d := &AppliedDiscount{Code: "SAVE10", Type: models.DiscountPercentage, Value: 10}
	b := Quote(1000, method(t, "home"), d)

	assert.Equal(t, 100.0, b.DiscountAmount)
	assert.Equal(t, 225.0, b.Tax)
	assert.Equal(t, 0.0, b.Shipping)
	assert.Equal(t, 1125.0, b.Total)
}

func TestQuote_FixedDiscount(t *testing.T) {
	d := &AppliedDiscount{Code: "VELKOMMEN50", Type: models.DiscountFixed, Value: 50}
	b := Quote(400, method(t, "pickup"), d)

	assert.Equal(t, 50.0, b.DiscountAmount)
	assert.Equal(t, 87.5, b.Tax)      // (400-50) * 0.25
	assert.Equal(t, 49.0, b.Shipping) // below threshold
	assert.Equal(t, 486.5, b.Total)
}

func TestQuote_DiscountClampedToSubtotal(t *testing.T) {
	// A fixed discount larger than the subtotal must not produce a
	// negative total.
	d := &AppliedDiscount{Code: "BIG", Type: models.DiscountFixed, Value: 500}
	b := Quote(100, method(t, "store"), d)

	assert.Equal(t, 100.0, b.DiscountAmount)
	assert.Equal(t, 0.0, b.Tax)
	assert.Equal(t, 0.0, b.Total)
}

func TestQuote_TaxIsQuarterOfDiscountedSubtotal(t *testing.T) {
	d := &AppliedDiscount{Type: models.DiscountPercentage, Value: 20}

	for _, subtotal := range []float64{40, 160, 640, 2560} {
		b := Quote(subtotal, method(t, "store"), d)
		assert.InDelta(t, (subtotal-b.DiscountAmount)*0.25, b.Tax, 1e-9)
	}
}

func TestDeliveryMethodByID_Unknown(t *testing.T) {
	_, err := DeliveryMethodByID("drone")
	assert.ErrorIs(t, err, ErrUnknownDeliveryMethod)
}
