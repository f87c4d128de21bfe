// Package models defines the subscription record, its enumerations, and the
// transient form draft used by the client.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// BillingCycle is the cadence a subscription is charged at.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "Monthly"
	BillingYearly  BillingCycle = "Yearly"
	BillingWeekly  BillingCycle = "Weekly"
)

// BillingCycles lists the cycles offered by the form, in display order.
var BillingCycles = []BillingCycle{BillingMonthly, BillingYearly, BillingWeekly}

// Valid reports whether c is one of the known cycles.
func (c BillingCycle) Valid() bool {
	for _, v := range BillingCycles {
		if v == c {
			return true
		}
	}
	return false
}

// Category is a closed set of labels a subscription can be filed under.
type Category string

const (
	CategoryEntertainment Category = "Entertainment"
	CategoryMusic         Category = "Music"
	CategorySoftware      Category = "Software"
	CategoryFitness       Category = "Fitness"
	CategoryEducation     Category = "Education"
	CategoryCloudStorage  Category = "Cloud Storage"
	CategoryOther         Category = "Other"
)

// Categories lists the categories offered by the form, in display order.
var Categories = []Category{
	CategoryEntertainment,
	CategoryMusic,
	CategorySoftware,
	CategoryFitness,
	CategoryEducation,
	CategoryCloudStorage,
	CategoryOther,
}

// ID is the server-assigned identity of a subscription. It is opaque to the
// client: the wire value may be a JSON number or a JSON string, and both decode
// to the same textual form.
type ID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// DateLayout is the ISO-8601 calendar date layout used on the wire.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// ParseDate parses s as YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate builds a Date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Fields is the body of a subscription record without its identity. It is
// what the client sends on create and update: every update carries the full
// set of fields.
type Fields struct {
	Name            string       `json:"name"`
	Amount          float64      `json:"amount"`
	BillingCycle    BillingCycle `json:"billingCycle"`
	NextBillingDate Date         `json:"nextBillingDate"`
	Category        Category     `json:"category"`
}

// Subscription is a record as returned by the remote store.
type Subscription struct {
	ID ID `json:"id"`
	Fields
}
