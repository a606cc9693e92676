package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/janjabro30/Nornex-as-sub000/models"
)

// Discount rejection reasons; each maps to a distinct user-facing message.
var (
	ErrCodeInvalid   = errors.New("ugyldig rabattkode")              // unknown or inactive
	ErrCodeNotYet    = errors.New("rabattkoden er ikke gyldig ennå") // before validFrom
	ErrCodeExpired   = errors.New("rabattkoden er utløpt")
	ErrBelowMinimum  = errors.New("ordren er under minstebeløpet for koden")
	ErrCodeExhausted = errors.New("rabattkoden er brukt opp")
)

// ValidateDiscount checks one code row against the current subtotal and
// time. A rejected code never yields a partial discount.
func ValidateDiscount(dc models.DiscountCode, subtotal float64, now time.Time) (*AppliedDiscount, error) {
	if !dc.IsActive {
		return nil, ErrCodeInvalid
	}
	if !dc.ValidFrom.IsZero() && now.Before(dc.ValidFrom) {
		return nil, ErrCodeNotYet
	}
	if !dc.ValidUntil.IsZero() && now.After(dc.ValidUntil) {
		return nil, ErrCodeExpired
	}
	if dc.MinOrderAmount > 0 && subtotal < dc.MinOrderAmount {
		return nil, fmt.Errorf("%w (min %.0f kr)", ErrBelowMinimum, dc.MinOrderAmount)
	}
	if dc.MaxUses > 0 && dc.CurrentUses >= dc.MaxUses {
		return nil, ErrCodeExhausted
	}

	return &AppliedDiscount{Code: dc.Code, Type: dc.Type, Value: dc.Value}, nil
}

// SavingsMessage is the confirmation text shown when a code is applied.
func SavingsMessage(d AppliedDiscount, subtotal float64, lang models.Lang) string {
	amount := d.Value
	if d.Type == models.DiscountPercentage {
		amount = subtotal * d.Value / 100
	}
	if amount > subtotal {
		amount = subtotal
	}
	if lang == models.LangEN {
		return fmt.Sprintf("Code %s applied, you save %.0f kr", d.Code, amount)
	}
	return fmt.Sprintf("Koden %s er aktivert, du sparer %.0f kr", d.Code, amount)
}
