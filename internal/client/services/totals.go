package services

import (
	"math"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

// WeeksPerMonth is the average-weeks approximation used for weekly cycles.
const WeeksPerMonth = 4.33

// Totals are spend aggregates over a list of subscriptions, rounded to cents.
type Totals struct {
	Monthly    float64
	Annual     float64
	Count      int
	ByCategory map[models.Category]float64
}

// MonthlyEquivalent is what s contributes to a normalized monthly figure.
// Unknown cycles contribute zero.
func MonthlyEquivalent(s models.Subscription) float64 {
	switch s.BillingCycle {
	case models.BillingMonthly:
		return s.Amount
	case models.BillingYearly:
		return s.Amount / 12
	case models.BillingWeekly:
		return s.Amount * WeeksPerMonth
	default:
		return 0
	}
}

// Calculate derives the totals for items. It is pure.
func Calculate(items []models.Subscription) Totals {
	var monthly float64
	byCategory := make(map[models.Category]float64)
	for _, s := range items {
		v := MonthlyEquivalent(s)
		monthly += v
		byCategory[s.Category] += v
	}
	for c, v := range byCategory {
		byCategory[c] = round2(v)
	}

	return Totals{
		Monthly:    round2(monthly),
		Annual:     round2(monthly * 12),
		Count:      len(items),
		ByCategory: byCategory,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
