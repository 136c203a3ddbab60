package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
)

// SalesAdapter implements storage.SalesStore for PostgreSQL.
// The reporting queries are the hot path, so every statement is prepared
// during initialization.
type SalesAdapter struct {
	db                *sql.DB
	stmtListSales     *sql.Stmt
	stmtTopByQuantity *sql.Stmt
	stmtTopByValue    *sql.Stmt
	stmtVariation     *sql.Stmt
	stmtGrandTotalQty *sql.Stmt
	stmtShareByQty    *sql.Stmt
	stmtGrandTotalVal *sql.Stmt
	stmtShareByVal    *sql.Stmt
}

// NewSalesAdapter prepares the sales reporting statements on the shared pool.
func NewSalesAdapter(db *sql.DB) (*SalesAdapter, error) {
	a := &SalesAdapter{db: db}

	for _, p := range []struct {
		name  string
		query string
		dst   **sql.Stmt
	}{
		{"listSales", queryListSales, &a.stmtListSales},
		{"topProductsByQuantity", queryTopProductsByQuantity, &a.stmtTopByQuantity},
		{"topProductsByValue", queryTopProductsByValue, &a.stmtTopByValue},
		{"priceVariationByProduct", queryPriceVariationByProduct, &a.stmtVariation},
		{"grandTotalQuantity", queryGrandTotalQuantity, &a.stmtGrandTotalQty},
		{"companyShareByQuantity", queryCompanyShareByQuantity, &a.stmtShareByQty},
		{"grandTotalValue", queryGrandTotalValue, &a.stmtGrandTotalVal},
		{"companyShareByValue", queryCompanyShareByValue, &a.stmtShareByVal},
	} {
		stmt, err := db.Prepare(p.query)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to prepare %s statement: %w", p.name, err)
		}
		*p.dst = stmt
	}

	slog.Info("[Postgres] Sales adapter initialized with prepared statements")
	return a, nil
}

// Sales fetches raw sales rows, oldest first.
func (a *SalesAdapter) Sales(ctx context.Context, limit, offset int) ([]v1.SaleRecord, error) {
	rows, err := a.stmtListSales.QueryContext(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []v1.SaleRecord{}
	for rows.Next() {
		var s v1.SaleRecord
		if err := rows.Scan(
			&s.ID, &s.IssueDate, &s.TypeCode, &s.TypeName,
			&s.CustomerID, &s.LegalName, &s.TradeName,
			&s.ProductCode, &s.ProductName, &s.Quantity, &s.UnitValue, &s.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	return sales, nil
}

// TopProductsByQuantity returns the top products by summed normalized quantity.
func (a *SalesAdapter) TopProductsByQuantity(ctx context.Context, limit int) ([]v1.ProductQuantityRank, error) {
	rows, err := a.stmtTopByQuantity.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products by quantity: %w", err)
	}
	defer rows.Close()

	ranks := []v1.ProductQuantityRank{}
	for rows.Next() {
		var r v1.ProductQuantityRank
		if err := rows.Scan(&r.ProductCode, &r.ProductName, &r.TotalQuantity, &r.GrandTotal, &r.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan product quantity rank: %w", err)
		}
		ranks = append(ranks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product quantity ranks: %w", err)
	}
	return ranks, nil
}

// TopProductsByValue returns the top products by summed normalized total value.
func (a *SalesAdapter) TopProductsByValue(ctx context.Context, limit int) ([]v1.ProductValueRank, error) {
	rows, err := a.stmtTopByValue.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products by value: %w", err)
	}
	defer rows.Close()

	ranks := []v1.ProductValueRank{}
	for rows.Next() {
		var r v1.ProductValueRank
		if err := rows.Scan(&r.ProductCode, &r.ProductName, &r.TotalValue, &r.GrandTotal, &r.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan product value rank: %w", err)
		}
		ranks = append(ranks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product value ranks: %w", err)
	}
	return ranks, nil
}

// PriceVariationByProduct returns per-product min/max normalized unit values
// and the percentage swing between them, largest swing first.
func (a *SalesAdapter) PriceVariationByProduct(ctx context.Context, limit int) ([]v1.PriceVariation, error) {
	rows, err := a.stmtVariation.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query price variation: %w", err)
	}
	defer rows.Close()

	variations := []v1.PriceVariation{}
	for rows.Next() {
		var p v1.PriceVariation
		if err := rows.Scan(&p.ProductCode, &p.ProductName, &p.MinValue, &p.MaxValue, &p.VariationPct); err != nil {
			return nil, fmt.Errorf("failed to scan price variation: %w", err)
		}
		variations = append(variations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price variations: %w", err)
	}
	return variations, nil
}

// CompanyShareByQuantity computes each company's share of total sold quantity.
// Phase one fetches the grand total; a zero total short-circuits to an empty
// result because a participation percentage cannot be computed.
func (a *SalesAdapter) CompanyShareByQuantity(ctx context.Context, limit int) ([]v1.CompanyQuantityShare, error) {
	var grandTotal decimal.Decimal
	if err := a.stmtGrandTotalQty.QueryRowContext(ctx).Scan(&grandTotal); err != nil {
		return nil, fmt.Errorf("failed to query quantity grand total: %w", err)
	}

	if grandTotal.IsZero() {
		slog.Warn("Total sales quantity is zero, cannot calculate participation")
		return []v1.CompanyQuantityShare{}, nil
	}

	rows, err := a.stmtShareByQty.QueryContext(ctx, grandTotal, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query company share by quantity: %w", err)
	}
	defer rows.Close()

	shares := []v1.CompanyQuantityShare{}
	for rows.Next() {
		var s v1.CompanyQuantityShare
		if err := rows.Scan(&s.TradeName, &s.TotalQuantity, &s.SharePct); err != nil {
			return nil, fmt.Errorf("failed to scan company quantity share: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company quantity shares: %w", err)
	}
	return shares, nil
}

// CompanyShareByValue computes each company's share of total sold value.
// Same two-phase shape and zero-total short-circuit as the quantity variant.
func (a *SalesAdapter) CompanyShareByValue(ctx context.Context, limit int) ([]v1.CompanyValueShare, error) {
	var grandTotal decimal.Decimal
	if err := a.stmtGrandTotalVal.QueryRowContext(ctx).Scan(&grandTotal); err != nil {
		return nil, fmt.Errorf("failed to query value grand total: %w", err)
	}

	if grandTotal.IsZero() {
		slog.Warn("Total sales value is zero, cannot calculate participation")
		return []v1.CompanyValueShare{}, nil
	}

	rows, err := a.stmtShareByVal.QueryContext(ctx, grandTotal, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query company share by value: %w", err)
	}
	defer rows.Close()

	shares := []v1.CompanyValueShare{}
	for rows.Next() {
		var s v1.CompanyValueShare
		if err := rows.Scan(&s.TradeName, &s.TotalValue, &s.SharePct); err != nil {
			return nil, fmt.Errorf("failed to scan company value share: %w", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company value shares: %w", err)
	}
	return shares, nil
}

// Close closes all prepared statements. Safe to call on a partially
// initialized adapter.
func (a *SalesAdapter) Close() error {
	var firstErr error
	for _, stmt := range []*sql.Stmt{
		a.stmtListSales, a.stmtTopByQuantity, a.stmtTopByValue, a.stmtVariation,
		a.stmtGrandTotalQty, a.stmtShareByQty, a.stmtGrandTotalVal, a.stmtShareByVal,
	} {
		if stmt == nil {
			continue
		}
		if err := stmt.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close sales statement: %w", err)
		}
	}
	return firstErr
}
