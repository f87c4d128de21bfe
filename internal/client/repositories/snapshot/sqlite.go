package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/dbx"
)

const savedAtKey = "saved_at"

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// Save replaces the stored list with items and stamps the save time.
// It is all-or-nothing.
func (r *SQLiteRepository) Save(ctx context.Context, items []models.Subscription) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_items`); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO snapshot_items (position, id, name, amount, billing_cycle, next_billing_date, category)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare snapshot insert: %w", err)
		}
		defer stmt.Close()

		for i, s := range items {
			_, err := stmt.ExecContext(ctx, i, s.ID.String(), s.Name, s.Amount,
				string(s.BillingCycle), s.NextBillingDate.String(), string(s.Category))
			if err != nil {
				return fmt.Errorf("failed to insert snapshot item %s: %w", s.ID, err)
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			savedAtKey, r.now().UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to stamp snapshot: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]models.Subscription, time.Time, error) {
	var savedAt time.Time
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = ?`, savedAtKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, time.Time{}, nil
	case err != nil:
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot time: %w", err)
	}
	if savedAt, err = time.Parse(time.RFC3339, raw); err != nil {
		return nil, time.Time{}, fmt.Errorf("corrupt snapshot time %q: %w", raw, err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, amount, billing_cycle, next_billing_date, category
		FROM snapshot_items ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to select snapshot: %w", err)
	}
	defer rows.Close()

	items := []models.Subscription{}
	for rows.Next() {
		var (
			s              models.Subscription
			id, cycle, cat string
			date           string
		)
		if err := rows.Scan(&id, &s.Name, &s.Amount, &cycle, &date, &cat); err != nil {
			return nil, time.Time{}, err
		}
		s.ID = models.ID(id)
		s.BillingCycle = models.BillingCycle(cycle)
		s.Category = models.Category(cat)
		if date != "" {
			if s.NextBillingDate, err = models.ParseDate(date); err != nil {
				return nil, time.Time{}, fmt.Errorf("corrupt snapshot item %s: %w", id, err)
			}
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	return items, savedAt, nil
}
