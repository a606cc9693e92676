package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/janjabro30/Nornex-as-sub000/models"
)

var errStepOrder = errors.New("earlier checkout steps are not completed")

type Step int

const (
	StepDelivery Step = iota + 1
	StepShipping
	StepPayment
	StepCompleted
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps field name to a message; empty map means valid.
type FieldErrors map[string]string

// ValidateDeliveryInfo gates the transition out of step 1.
func ValidateDeliveryInfo(info models.DeliveryInfo, lang models.Lang) FieldErrors {
	errs := FieldErrors{}
	req := func(field, value, no, en string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = models.Pick(lang, no, en)
		}
	}
	req("name", info.Name, "Navn er påkrevd", "Name is required")
	req("email", info.Email, "E-post er påkrevd", "Email is required")
	req("phone", info.Phone, "Telefon er påkrevd", "Phone is required")
	req("address", info.Address, "Adresse er påkrevd", "Address is required")
	req("postal_code", info.PostalCode, "Postnummer er påkrevd", "Postal code is required")
	req("city", info.City, "Sted er påkrevd", "City is required")

	if _, ok := errs["email"]; !ok && !emailPattern.MatchString(info.Email) {
		errs["email"] = models.Pick(lang, "Ugyldig e-postadresse", "Invalid email address")
	}
	return errs
}

// Wizard is the 3-step checkout state machine. It is transport-free; the
// HTTP layer owns one per checkout session.
type Wizard struct {
	Step           Step
	Delivery       models.DeliveryInfo
	DeliveryMethod DeliveryMethod
	PaymentMethod  string
	Discount       *AppliedDiscount
}

// NewWizard starts at step 1 with the default method selections.
func NewWizard() *Wizard {
	return &Wizard{
		Step:           StepDelivery,
		DeliveryMethod: DeliveryMethods[0],
		PaymentMethod:  "card",
	}
}

// SubmitDelivery validates step 1 and advances to step 2 on success.
// Resubmitting from a later step re-validates but never moves backwards.
func (w *Wizard) SubmitDelivery(info models.DeliveryInfo, lang models.Lang) FieldErrors {
	if errs := ValidateDeliveryInfo(info, lang); len(errs) > 0 {
		return errs
	}
	w.Delivery = info
	if w.Step == StepDelivery {
		w.Step = StepShipping
	}
	return nil
}

// SubmitShipping records the method; the transition out of step 2 is
// unconditional.
func (w *Wizard) SubmitShipping(methodID string) error {
	if w.Step < StepShipping {
		return errStepOrder
	}
	m, err := DeliveryMethodByID(methodID)
	if err != nil {
		return err
	}
	w.DeliveryMethod = m
	if w.Step == StepShipping {
		w.Step = StepPayment
	}
	return nil
}

// Complete gates the terminal transition on accepted terms. The caller runs
// the order finalizer before marking the wizard completed.
func (w *Wizard) Complete(paymentMethod string, acceptTerms bool, lang models.Lang) FieldErrors {
	if w.Step < StepPayment {
		return FieldErrors{"step": models.Pick(lang, "Fullfør tidligere steg først", "Complete the earlier steps first")}
	}
	if w.Step == StepCompleted {
		return FieldErrors{"step": models.Pick(lang, "Ordren er allerede fullført", "The order is already completed")}
	}
	if !acceptTerms {
		return FieldErrors{"accept_terms": models.Pick(lang, "Du må godta vilkårene", "You must accept the terms")}
	}
	if paymentMethod != "" {
		w.PaymentMethod = paymentMethod
	}
	return nil
}

// MarkCompleted transitions to the terminal state.
func (w *Wizard) MarkCompleted() { w.Step = StepCompleted }
