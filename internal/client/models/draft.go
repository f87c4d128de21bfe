package models

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("amount must be a positive number")

// AmountInput keeps the amount exactly as typed. Partial entries such as "9."
// are tolerated until Parse is called at submit time.
type AmountInput struct {
	Raw string `form:"amount" validate:"required"`
}

// AmountFrom renders a parsed amount back into its raw form.
func AmountFrom(v float64) AmountInput {
	return AmountInput{Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// Parse converts the raw input to a positive amount. A decimal comma is
// accepted as well as a dot.
func (a AmountInput) Parse() (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(a.Raw), ",", ".")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Draft is the editable state of one subscription inside the form.
type Draft struct {
	Name            string       `form:"name" validate:"required"`
	Amount          AmountInput  `form:"amount"`
	BillingCycle    BillingCycle `form:"billingCycle"`
	NextBillingDate string       `form:"nextBillingDate" validate:"required"`
	Category        Category     `form:"category" validate:"required"`
}

// EmptyDraft is the baseline the form starts from and returns to.
func EmptyDraft() Draft {
	return Draft{BillingCycle: BillingMonthly}
}

// DraftFrom seeds a draft from an existing subscription.
func DraftFrom(s Subscription) Draft {
	return Draft{
		Name:            s.Name,
		Amount:          AmountFrom(s.Amount),
		BillingCycle:    s.BillingCycle,
		NextBillingDate: s.NextBillingDate.String(),
		Category:        s.Category,
	}
}

// Fields parses the draft into a record body.
func (d Draft) Fields() (Fields, error) {
	amount, err := d.Amount.Parse()
	if err != nil {
		return Fields{}, err
	}
	date, err := ParseDate(d.NextBillingDate)
	if err != nil {
		return Fields{}, err
	}
	return Fields{
		Name:            d.Name,
		Amount:          amount,
		BillingCycle:    d.BillingCycle,
		NextBillingDate: date,
		Category:        d.Category,
	}, nil
}
