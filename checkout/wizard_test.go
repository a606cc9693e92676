package checkout

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/janjabro30/Nornex-as-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDelivery() models.DeliveryInfo {
	return models.DeliveryInfo{
		Name:       "Ola Nordmann",
		Email:      "ola@example.com",
		Phone:      "99887766",
		Address:    "Storgata 1",
		PostalCode: "0155",
		City:       "Oslo",
	}
}

func TestWizard_InitialState(t *testing.T) {
	w := NewWizard()

	assert.Equal(t, StepDelivery, w.Step)
	assert.Equal(t, "home", w.DeliveryMethod.ID)
	assert.Equal(t, "card", w.PaymentMethod)
	assert.Nil(t, w.Discount)
}

func TestWizard_DeliveryValidationGatesStepOne(t *testing.T) {
	w := NewWizard()

	errs := w.SubmitDelivery(models.DeliveryInfo{}, models.LangNO)
	assert.Len(t, errs, 6)
	assert.Equal(t, StepDelivery, w.Step)

	errs = w.SubmitDelivery(completeDelivery(), models.LangNO)
	assert.Empty(t, errs)
	assert.Equal(t, StepShipping, w.Step)
}

func TestWizard_EmailValidation(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ola@example.com", true},
		{"ola.nordmann@sub.example.no", true},
		{"", false},
		{"ola", false},
		{"ola@", false},
		{"ola@example", false},
		{"ola nordmann@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			info := completeDelivery()
			info.Email = tt.email
			errs := ValidateDeliveryInfo(info, models.LangEN)
			if tt.valid {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Contains(t, errs, "email")
			}
		})
	}
}

func TestWizard_ShippingRequiresDeliveryFirst(t *testing.T) {
	w := NewWizard()

	err := w.SubmitShipping("express")
	assert.Error(t, err)
	assert.Equal(t, StepDelivery, w.Step)
}

func TestWizard_ShippingIsUnconditional(t *testing.T) {
	w := NewWizard()
	require.Empty(t, w.SubmitDelivery(completeDelivery(), models.LangNO))

	require.NoError(t, w.SubmitShipping("express"))
	assert.Equal(t, StepPayment, w.Step)
	assert.Equal(t, "express", w.DeliveryMethod.ID)
	assert.True(t, w.DeliveryMethod.Express)
}

func TestWizard_ShippingRejectsUnknownMethod(t *testing.T) {
	w := NewWizard()
	require.Empty(t, w.SubmitDelivery(completeDelivery(), models.LangNO))

	err := w.SubmitShipping("teleport")
	assert.ErrorIs(t, err, ErrUnknownDeliveryMethod)
	assert.Equal(t, StepShipping, w.Step)
}

func TestWizard_TermsGateBlocksCompletion(t *testing.T) {
	w := NewWizard()
	require.Empty(t, w.SubmitDelivery(completeDelivery(), models.LangNO))
	require.NoError(t, w.SubmitShipping("home"))

	// Without accepted terms the wizard stays on the payment step.
	errs := w.Complete("vipps", false, models.LangEN)
	assert.Contains(t, errs, "accept_terms")
	assert.Equal(t, StepPayment, w.Step)

	// Checking the box and resubmitting proceeds.
	errs = w.Complete("vipps", true, models.LangEN)
	assert.Empty(t, errs)
	assert.Equal(t, "vipps", w.PaymentMethod)

	w.MarkCompleted()
	assert.Equal(t, StepCompleted, w.Step)
}

func TestWizard_CompletionFromEarlyStepBlocked(t *testing.T) {
	w := NewWizard()

	errs := w.Complete("card", true, models.LangNO)
	assert.Contains(t, errs, "step")
}

func TestWizard_CompletedIsTerminal(t *testing.T) {
	w := NewWizard()
	require.Empty(t, w.SubmitDelivery(completeDelivery(), models.LangNO))
	require.NoError(t, w.SubmitShipping("home"))
	require.Empty(t, w.Complete("card", true, models.LangNO))
	w.MarkCompleted()

	errs := w.Complete("card", true, models.LangNO)
	assert.Contains(t, errs, "step")

	// Resubmitting earlier steps never moves the wizard backwards.
	assert.Empty(t, w.SubmitDelivery(completeDelivery(), models.LangNO))
	assert.Equal(t, StepCompleted, w.Step)
}

func TestOrderNumberFormat(t *testing.T) {
	at := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	n := OrderNumber(at)

	assert.True(t, strings.HasPrefix(n, "NOR-"))
	suffix := strings.TrimPrefix(n, "NOR-")
	assert.Equal(t, strings.ToUpper(suffix), suffix)

	// The suffix is base36 millis, never earlier than the clock that
	// produced it.
	ms, err := strconv.ParseInt(strings.ToLower(suffix), 36, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, at.UnixMilli())
}

func TestOrderNumberUniqueWithinMillisecond(t *testing.T) {
	at := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := OrderNumber(at)
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
}
