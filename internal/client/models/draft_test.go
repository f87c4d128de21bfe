package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountInput_Parse(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: " 9.99 ", want: 9.99},
		{raw: "4,5", want: 4.5},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := AmountInput{Raw: tt.raw}.Parse()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraftFrom_RoundTripsToFields(t *testing.T) {
	s := Subscription{
		ID: "42",
		Fields: Fields{
			Name:            "Gym",
			Amount:          25.5,
			BillingCycle:    BillingWeekly,
			NextBillingDate: NewDate(2026, time.December, 3),
			Category:        CategoryFitness,
		},
	}

	d := DraftFrom(s)
	assert.Equal(t, "25.5", d.Amount.Raw)
	assert.Equal(t, "2026-12-03", d.NextBillingDate)

	f, err := d.Fields()
	require.NoError(t, err)
	assert.Equal(t, s.Fields, f)
}

func TestEmptyDraft_DefaultsToMonthly(t *testing.T) {
	d := EmptyDraft()
	assert.Equal(t, BillingMonthly, d.BillingCycle)
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Amount.Raw)
}
