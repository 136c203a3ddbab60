package postgres

import (
	"context"
	"database/sql"
	"fmt"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
)

// ReceivablesAdapter implements storage.ReceivablesStore for PostgreSQL.
type ReceivablesAdapter struct {
	db *sql.DB
}

// NewReceivablesAdapter creates a receivables adapter sharing the given pool.
func NewReceivablesAdapter(db *sql.DB) *ReceivablesAdapter {
	return &ReceivablesAdapter{db: db}
}

// AgingSummary buckets every receivable by due-date distance into six counts.
func (a *ReceivablesAdapter) AgingSummary(ctx context.Context) (v1.AgingSummary, error) {
	var s v1.AgingSummary
	err := a.db.QueryRowContext(ctx, queryAgingSummary).Scan(
		&s.DueToday,
		&s.DueWithin30,
		&s.OverdueUpTo30,
		&s.Overdue30To60,
		&s.DueBeyond30,
		&s.OverdueOver60,
	)
	if err != nil {
		return v1.AgingSummary{}, fmt.Errorf("failed to query aging summary: %w", err)
	}
	return s, nil
}

// OverdueTitles fetches every overdue title ordered by due date ascending.
func (a *ReceivablesAdapter) OverdueTitles(ctx context.Context) ([]v1.ReceivableTitle, error) {
	rows, err := a.db.QueryContext(ctx, queryOverdueTitles)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue titles: %w", err)
	}
	defer rows.Close()

	titles := []v1.ReceivableTitle{}
	for rows.Next() {
		var t v1.ReceivableTitle
		if err := rows.Scan(&t.Document, &t.Title, &t.Installment, &t.TradeName, &t.Balance, &t.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan receivable title: %w", err)
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receivable titles: %w", err)
	}
	return titles, nil
}
