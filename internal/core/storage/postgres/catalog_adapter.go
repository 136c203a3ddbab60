package postgres

import (
	"context"
	"database/sql"
	"fmt"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
	"github.com/techfinance-lab/techfinance/internal/core/storage"
)

// CatalogAdapter implements storage.CatalogStore for PostgreSQL.
type CatalogAdapter struct {
	db *sql.DB
}

// NewCatalogAdapter creates a catalog adapter sharing the given connection pool.
func NewCatalogAdapter(db *sql.DB) *CatalogAdapter {
	return &CatalogAdapter{db: db}
}

// Products lists products matching the case-insensitive substring filters.
func (a *CatalogAdapter) Products(ctx context.Context, filter storage.CatalogFilter) ([]v1.Product, error) {
	rows, err := a.db.QueryContext(ctx, queryListProducts,
		likePattern(filter.Name), likePattern(filter.Group), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []v1.Product{}
	for rows.Next() {
		var p v1.Product
		if err := rows.Scan(&p.Code, &p.Description, &p.GroupID, &p.GroupName); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// Customers lists customers matching the case-insensitive substring filters.
func (a *CatalogAdapter) Customers(ctx context.Context, filter storage.CatalogFilter) ([]v1.Customer, error) {
	rows, err := a.db.QueryContext(ctx, queryListCustomers,
		likePattern(filter.Name), likePattern(filter.Group), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []v1.Customer{}
	for rows.Next() {
		var c v1.Customer
		if err := rows.Scan(&c.ID, &c.LegalName, &c.TradeName, &c.City, &c.State, &c.GroupID, &c.GroupName); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}
	return customers, nil
}

func likePattern(term string) string {
	return "%" + term + "%"
}
