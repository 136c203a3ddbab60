// Package sales serves the raw sales listing and the sales reports.
// Report results are cached under keys derived from the operation tag plus
// the normalized parameters; participation queries are served straight from
// the repository because their grand total must stay current.
package sales

import (
	"context"
	"log/slog"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
	"github.com/techfinance-lab/techfinance/internal/core/cache"
	"github.com/techfinance-lab/techfinance/internal/core/pagination"
	"github.com/techfinance-lab/techfinance/internal/core/storage"
)

// Cache operation tags. Changing one invalidates all entries for that report.
const (
	opTopProductsQuantity = "top_products_quantity"
	opTopProductsValue    = "top_products_value"
	opPriceVariation      = "price_variation"
)

// reportParams is the normalized parameter set serialized into cache keys.
type reportParams struct {
	Limite int `json:"limite"`
}

type Service struct {
	store storage.SalesStore
	cache *cache.Cache
}

func NewService(store storage.SalesStore, c *cache.Cache) *Service {
	return &Service{store: store, cache: c}
}

// Sales lists raw sales rows. Fail-soft: database errors degrade to an
// empty list.
func (s *Service) Sales(ctx context.Context, limite, pagina int) []v1.SaleRecord {
	limit, offset := pagination.Normalize(limite, pagina)
	rows, err := s.store.Sales(ctx, limit, offset)
	if err != nil {
		slog.Error("Failed to fetch sales, returning empty result", "error", err)
		return []v1.SaleRecord{}
	}
	return rows
}

// TopProductsByQuantity returns the cached top-N products by summed
// normalized quantity.
func (s *Service) TopProductsByQuantity(ctx context.Context, limite int) []v1.ProductQuantityRank {
	limit := pagination.ClampLimit(limite)
	key := cache.Key(opTopProductsQuantity, reportParams{Limite: limit})

	if cached, ok := s.cache.Get(key); ok {
		if ranks, ok := cached.([]v1.ProductQuantityRank); ok {
			return ranks
		}
	}

	ranks, err := s.store.TopProductsByQuantity(ctx, limit)
	if err != nil {
		slog.Error("Failed to fetch top products by quantity, returning empty result", "error", err)
		return []v1.ProductQuantityRank{}
	}

	s.cache.Set(key, ranks)
	return ranks
}

// TopProductsByValue returns the cached top-N products by summed normalized
// total value.
func (s *Service) TopProductsByValue(ctx context.Context, limite int) []v1.ProductValueRank {
	limit := pagination.ClampLimit(limite)
	key := cache.Key(opTopProductsValue, reportParams{Limite: limit})

	if cached, ok := s.cache.Get(key); ok {
		if ranks, ok := cached.([]v1.ProductValueRank); ok {
			return ranks
		}
	}

	ranks, err := s.store.TopProductsByValue(ctx, limit)
	if err != nil {
		slog.Error("Failed to fetch top products by value, returning empty result", "error", err)
		return []v1.ProductValueRank{}
	}

	s.cache.Set(key, ranks)
	return ranks
}

// PriceVariationByProduct returns the cached per-product price swing report.
func (s *Service) PriceVariationByProduct(ctx context.Context, limite int) []v1.PriceVariation {
	limit := pagination.ClampLimit(limite)
	key := cache.Key(opPriceVariation, reportParams{Limite: limit})

	if cached, ok := s.cache.Get(key); ok {
		if variations, ok := cached.([]v1.PriceVariation); ok {
			return variations
		}
	}

	variations, err := s.store.PriceVariationByProduct(ctx, limit)
	if err != nil {
		slog.Error("Failed to fetch price variation, returning empty result", "error", err)
		return []v1.PriceVariation{}
	}

	s.cache.Set(key, variations)
	return variations
}

// CompanyShareByQuantity returns each company's share of total sold quantity.
func (s *Service) CompanyShareByQuantity(ctx context.Context, limite int) []v1.CompanyQuantityShare {
	limit := pagination.ClampLimit(limite)
	shares, err := s.store.CompanyShareByQuantity(ctx, limit)
	if err != nil {
		slog.Error("Failed to fetch company share by quantity, returning empty result", "error", err)
		return []v1.CompanyQuantityShare{}
	}
	return shares
}

// CompanyShareByValue returns each company's share of total sold value.
func (s *Service) CompanyShareByValue(ctx context.Context, limite int) []v1.CompanyValueShare {
	limit := pagination.ClampLimit(limite)
	shares, err := s.store.CompanyShareByValue(ctx, limit)
	if err != nil {
		slog.Error("Failed to fetch company share by value, returning empty result", "error", err)
		return []v1.CompanyValueShare{}
	}
	return shares
}
