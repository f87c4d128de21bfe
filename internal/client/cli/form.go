package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/client/services"
)

var (
	billingCycleOptions = func() []string {
		out := make([]string, len(models.BillingCycles))
		for i, c := range models.BillingCycles {
			out[i] = string(c)
		}
		return out
	}()
	categoryOptions = func() []string {
		out := make([]string, len(models.Categories))
		for i, c := range models.Categories {
			out[i] = string(c)
		}
		return out
	}()
)

func (a *App) Add(ctx context.Context) error {
	a.form.OpenForCreate()
	fmt.Fprintln(a.out, "New subscription (empty answer keeps the value in brackets)")
	return a.fillAndSubmit(ctx)
}

func (a *App) Edit(ctx context.Context, id string) error {
	s, ok := a.store.Find(models.ID(id))
	if !ok {
		fmt.Fprintf(a.out, "No subscription with id %s\n", id)
		return fmt.Errorf("subscription %s not found", id)
	}
	a.form.OpenForEdit(s)
	fmt.Fprintf(a.out, "Editing %s (empty answer keeps the current value)\n", s.Name)
	return a.fillAndSubmit(ctx)
}

// fillAndSubmit prompts for every field and submits. A validation failure
// offers another round; declining cancels the form.
func (a *App) fillAndSubmit(ctx context.Context) error {
	for {
		if err := a.promptFields(); err != nil {
			a.form.Cancel()
			return err
		}

		err := a.form.Submit(ctx)

		var verr *services.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(a.out, "Error:", verr.Error())
			again, cerr := Confirm(a.reader, "Fix the form?", true, a.out)
			if cerr != nil || !again {
				a.form.Cancel()
				fmt.Fprintln(a.out, "Cancelled.")
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if msg := a.store.LastError(); msg != "" {
			fmt.Fprintln(a.out, "Error:", msg)
			return nil
		}
		fmt.Fprintln(a.out, "Saved.")
		return nil
	}
}

func (a *App) promptFields() error {
	d := a.form.Draft()

	name, err := GetWithDefault(a.reader, "Name", d.Name, a.out)
	if err != nil {
		return err
	}
	amount, err := GetWithDefault(a.reader, "Amount", d.Amount.Raw, a.out)
	if err != nil {
		return err
	}
	cycle, err := Choose(a.reader, "Billing cycle", billingCycleOptions, string(d.BillingCycle), a.out)
	if err != nil {
		return err
	}
	date, err := GetWithDefault(a.reader, "Next billing date (YYYY-MM-DD)", d.NextBillingDate, a.out)
	if err != nil {
		return err
	}
	category, err := Choose(a.reader, "Category", categoryOptions, string(d.Category), a.out)
	if err != nil {
		return err
	}

	for _, u := range []struct {
		field services.Field
		value string
	}{
		{services.FieldName, name},
		{services.FieldAmount, amount},
		{services.FieldBillingCycle, cycle},
		{services.FieldNextBillingDate, date},
		{services.FieldCategory, category},
	} {
		if err := a.form.UpdateField(u.field, u.value); err != nil {
			return err
		}
	}
	return nil
}
