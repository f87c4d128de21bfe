package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/subtracker/internal/client/export"
	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

func (a *App) Delete(ctx context.Context, id string) error {
	if s, ok := a.store.Find(models.ID(id)); ok {
		fmt.Fprintf(a.out, "%s, %s %s\n", s.Name, a.money(s.Amount), s.BillingCycle)
	}

	confirm := func(prompt string) bool {
		ok, err := Confirm(a.reader, prompt, false, a.out)
		return err == nil && ok
	}

	if !a.form.RequestDelete(ctx, models.ID(id), confirm) {
		fmt.Fprintln(a.out, "Not deleted.")
		return nil
	}

	if msg := a.store.LastError(); msg != "" {
		fmt.Fprintln(a.out, "Error:", msg)
		return nil
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading...")
	a.store.Refresh(ctx)
	if msg := a.store.LastError(); msg != "" {
		fmt.Fprintln(a.out, "Error:", msg)
		return nil
	}
	fmt.Fprintf(a.out, "%d subscriptions loaded.\n", len(a.store.Items()))
	return nil
}

func (a *App) Dismiss(ctx context.Context) error {
	a.store.DismissError()
	return nil
}

func (a *App) Export(ctx context.Context, path string) error {
	items := a.store.Items()
	if err := export.Save(path, items); err != nil {
		a.logger.Error(ctx, "export failed", "path", path, "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Exported %d subscriptions to %s\n", len(items), path)
	return nil
}
