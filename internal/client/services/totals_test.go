package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

func sub(amount float64, cycle models.BillingCycle, cat models.Category) models.Subscription {
	return models.Subscription{Fields: models.Fields{Amount: amount, BillingCycle: cycle, Category: cat}}
}

func TestCalculate_Proration(t *testing.T) {
	items := []models.Subscription{
		sub(12, models.BillingYearly, models.CategorySoftware),
		sub(100, models.BillingMonthly, models.CategoryEntertainment),
		sub(10, models.BillingWeekly, models.CategoryFitness),
	}

	got := Calculate(items)

	assert.InDelta(t, 144.30, got.Monthly, 1e-9)
	assert.InDelta(t, 1731.60, got.Annual, 1e-9)
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 43.3, got.ByCategory[models.CategoryFitness], 1e-9)
	assert.InDelta(t, 1.0, got.ByCategory[models.CategorySoftware], 1e-9)
}

func TestCalculate_UnknownCycleContributesZero(t *testing.T) {
	items := []models.Subscription{
		sub(5000, "Biannual", models.CategoryOther),
		sub(20, models.BillingMonthly, models.CategoryOther),
	}

	got := Calculate(items)

	assert.InDelta(t, 20.0, got.Monthly, 1e-9)
	assert.InDelta(t, 240.0, got.Annual, 1e-9)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 0.0, MonthlyEquivalent(items[0]))
}

func TestCalculate_IsIdempotent(t *testing.T) {
	items := []models.Subscription{
		sub(9.99, models.BillingMonthly, models.CategoryMusic),
		sub(99, models.BillingYearly, models.CategoryCloudStorage),
	}

	assert.Equal(t, Calculate(items), Calculate(items))
}

func TestCalculate_Empty(t *testing.T) {
	got := Calculate(nil)

	assert.Equal(t, 0.0, got.Monthly)
	assert.Equal(t, 0.0, got.Annual)
	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.ByCategory)
}

func TestCalculate_RoundsToCents(t *testing.T) {
	got := Calculate([]models.Subscription{sub(100, models.BillingYearly, models.CategoryOther)})

	assert.Equal(t, 8.33, got.Monthly)
	assert.Equal(t, 100.0, got.Annual)
}
