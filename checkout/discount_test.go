package checkout

import (
	"testing"
	"time"

	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCode() models.DiscountCode {
	return models.DiscountCode{
		Code:           "SAVE10",
		Type:           models.DiscountPercentage,
		Value:          10,
		ValidFrom:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		MinOrderAmount: 200,
		MaxUses:        100,
		CurrentUses:    5,
		IsActive:       true,
	}
}

var checkTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestValidateDiscount_Valid(t *testing.T) {
	applied, err := ValidateDiscount(validCode(), 1000, checkTime)
	require.NoError(t, err)

	assert.Equal(t, "SAVE10", applied.Code)
	assert.Equal(t, models.DiscountPercentage, applied.Type)
	assert.Equal(t, 10.0, applied.Value)
}

func TestValidateDiscount_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.DiscountCode)
		subtotal float64
		wantErr  error
	}{
		{
			name:     "inactive",
			mutate:   func(dc *models.DiscountCode) { dc.IsActive = false },
			subtotal: 1000,
			wantErr:  ErrCodeInvalid,
		},
		{
			name:     "not yet valid",
			mutate:   func(dc *models.DiscountCode) { dc.ValidFrom = checkTime.Add(24 * time.Hour) },
			subtotal: 1000,
			wantErr:  ErrCodeNotYet,
		},
		{
			name:     "expired",
			mutate:   func(dc *models.DiscountCode) { dc.ValidUntil = checkTime.Add(-24 * time.Hour) },
			subtotal: 1000,
			wantErr:  ErrCodeExpired,
		},
		{
			name:     "below minimum order",
			mutate:   func(dc *models.DiscountCode) {},
			subtotal: 150,
			wantErr:  ErrBelowMinimum,
		},
		{
			name:     "usage exhausted",
			mutate:   func(dc *models.DiscountCode) { dc.CurrentUses = dc.MaxUses },
			subtotal: 1000,
			wantErr:  ErrCodeExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := validCode()
			tt.mutate(&dc)

			applied, err := ValidateDiscount(dc, tt.subtotal, checkTime)
			assert.ErrorIs(t, err, tt.wantErr)
			// A rejected code never yields a partial discount.
			assert.Nil(t, applied)
		})
	}
}

func TestValidateDiscount_NoLimitsMeansNoChecks(t *testing.T) {
	dc := validCode()
	dc.MinOrderAmount = 0
	dc.MaxUses = 0
	dc.CurrentUses = 100000

	_, err := ValidateDiscount(dc, 1, checkTime)
	assert.NoError(t, err)
}

func TestSavingsMessage(t *testing.T) {
	d := AppliedDiscount{Code: "SAVE10", Type: models.DiscountPercentage, Value: 10}

	assert.Equal(t, "Koden SAVE10 er aktivert, du sparer 100 kr", SavingsMessage(d, 1000, models.LangNO))
	assert.Equal(t, "Code SAVE10 applied, you save 100 kr", SavingsMessage(d, 1000, models.LangEN))
}
