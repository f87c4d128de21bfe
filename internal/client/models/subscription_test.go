package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_UnmarshalNumericAndStringIDs(t *testing.T) {
	payload := `[
	  {"id": 7, "name": "Netflix", "amount": 649, "billingCycle": "Monthly", "nextBillingDate": "2026-11-01", "category": "Entertainment"},
	  {"id": "b1f0", "name": "Drive", "amount": 1300.5, "billingCycle": "Yearly", "nextBillingDate": "2027-01-15", "category": "Cloud Storage"}
	]`

	var got []Subscription
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	require.Len(t, got, 2)

	assert.Equal(t, ID("7"), got[0].ID)
	assert.Equal(t, "Netflix", got[0].Name)
	assert.Equal(t, 649.0, got[0].Amount)
	assert.Equal(t, NewDate(2026, time.November, 1), got[0].NextBillingDate)

	assert.Equal(t, ID("b1f0"), got[1].ID)
	assert.Equal(t, CategoryCloudStorage, got[1].Category)
	assert.Equal(t, BillingYearly, got[1].BillingCycle)
}

func TestSubscription_UnmarshalRejectsBadDate(t *testing.T) {
	var s Subscription
	err := json.Unmarshal([]byte(`{"id":1,"nextBillingDate":"01/11/2026"}`), &s)
	require.Error(t, err)
}

func TestFields_MarshalOmitsID(t *testing.T) {
	f := Fields{
		Name:            "Spotify",
		Amount:          119,
		BillingCycle:    BillingMonthly,
		NextBillingDate: NewDate(2026, time.October, 20),
		Category:        CategoryMusic,
	}

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Spotify","amount":119,"billingCycle":"Monthly","nextBillingDate":"2026-10-20","category":"Music"}`, string(b))
}

func TestBillingCycle_Valid(t *testing.T) {
	assert.True(t, BillingWeekly.Valid())
	assert.False(t, BillingCycle("Biannual").Valid())
	assert.False(t, BillingCycle("").Valid())
}
