// Package storage defines the repository ports implemented by the postgres
// adapters. Services depend on these interfaces, never on database/sql.
package storage

import (
	"context"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
)

// CatalogFilter is the normalized parameter set for catalog listings.
// Name and Group are case-insensitive substring filters; Limit and Offset
// arrive already clamped by the service layer.
type CatalogFilter struct {
	Name   string `json:"nome"`
	Group  string `json:"grupo"`
	Limit  int    `json:"limite"`
	Offset int    `json:"offset"`
}

// CatalogStore reads products and customers.
type CatalogStore interface {
	Products(ctx context.Context, filter CatalogFilter) ([]v1.Product, error)
	Customers(ctx context.Context, filter CatalogFilter) ([]v1.Customer, error)
}

// SalesStore reads raw sales rows and the sales reports. Every aggregate
// normalizes locale-formatted decimals before summing or comparing.
type SalesStore interface {
	Sales(ctx context.Context, limit, offset int) ([]v1.SaleRecord, error)
	TopProductsByQuantity(ctx context.Context, limit int) ([]v1.ProductQuantityRank, error)
	TopProductsByValue(ctx context.Context, limit int) ([]v1.ProductValueRank, error)
	PriceVariationByProduct(ctx context.Context, limit int) ([]v1.PriceVariation, error)
	CompanyShareByQuantity(ctx context.Context, limit int) ([]v1.CompanyQuantityShare, error)
	CompanyShareByValue(ctx context.Context, limit int) ([]v1.CompanyValueShare, error)
}

// ReceivablesStore reads the accounts-receivable projections.
type ReceivablesStore interface {
	AgingSummary(ctx context.Context) (v1.AgingSummary, error)
	OverdueTitles(ctx context.Context) ([]v1.ReceivableTitle, error)
}
