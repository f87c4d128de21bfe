package cli

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/client/services"
)

// compactWidth is the terminal width below which the list drops the
// category column.
const compactWidth = 80

func (a *App) money(v float64) string {
	return fmt.Sprintf("%s%.2f", a.config.Currency, v)
}

func (a *App) List(ctx context.Context) error {
	items := a.store.Items()
	if len(items) == 0 {
		if a.store.Loading() {
			fmt.Fprintln(a.out, "Loading...")
		} else {
			fmt.Fprintln(a.out, "No subscriptions yet. Type 'add' to create one.")
		}
		return nil
	}

	compact := false
	if w := terminalWidth(); w > 0 && w < compactWidth {
		compact = true
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if compact {
		fmt.Fprintln(tw, "ID\tName\tAmount\tNext billing")
	} else {
		fmt.Fprintln(tw, "ID\tName\tAmount\tCycle\tNext billing\tCategory")
	}
	for _, s := range items {
		if compact {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, a.money(s.Amount), s.NextBillingDate)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, a.money(s.Amount), s.BillingCycle, s.NextBillingDate, s.Category)
	}
	return tw.Flush()
}

func (a *App) Totals(ctx context.Context) error {
	t := services.Calculate(a.store.Items())

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Monthly Total\t%s\n", a.money(t.Monthly))
	fmt.Fprintf(tw, "Annual Total\t%s\n", a.money(t.Annual))
	fmt.Fprintf(tw, "Active Services\t%d\n", t.Count)

	if len(t.ByCategory) > 0 {
		cats := make([]string, 0, len(t.ByCategory))
		for c := range t.ByCategory {
			cats = append(cats, string(c))
		}
		sort.Strings(cats)

		fmt.Fprintln(tw, "\t")
		fmt.Fprintln(tw, "By category (monthly)\t")
		for _, c := range cats {
			fmt.Fprintf(tw, "  %s\t%s\n", c, a.money(t.ByCategory[models.Category(c)]))
		}
	}
	return tw.Flush()
}
