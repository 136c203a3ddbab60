package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
	"github.com/techfinance-lab/techfinance/internal/core/storage"
)

type fakeCatalogStore struct {
	lastFilter storage.CatalogFilter
	err        error
}

func (f *fakeCatalogStore) Products(_ context.Context, filter storage.CatalogFilter) ([]v1.Product, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return []v1.Product{{Code: "P-001", Description: "Parafuso", GroupID: "1", GroupName: "Fixação"}}, nil
}

func (f *fakeCatalogStore) Customers(_ context.Context, filter storage.CatalogFilter) ([]v1.Customer, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return []v1.Customer{{ID: 7, TradeName: "ACME", City: "São Paulo", State: "SP"}}, nil
}

func TestProductsTranslatesPagination(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := NewService(store)

	products := svc.Products(context.Background(), Query{Name: "para", Group: "fix", Limit: 25, Page: 3})
	require.Len(t, products, 1)
	require.Equal(t, storage.CatalogFilter{Name: "para", Group: "fix", Limit: 25, Offset: 50}, store.lastFilter)
}

func TestProductsFailSoft(t *testing.T) {
	store := &fakeCatalogStore{err: errors.New("connection refused")}
	svc := NewService(store)

	products := svc.Products(context.Background(), Query{Limit: 10, Page: 1})
	require.NotNil(t, products)
	require.Empty(t, products)
}

func TestCustomersFailSoft(t *testing.T) {
	store := &fakeCatalogStore{err: errors.New("connection refused")}
	svc := NewService(store)

	customers := svc.Customers(context.Background(), Query{Limit: 10, Page: 1})
	require.NotNil(t, customers)
	require.Empty(t, customers)
}

func TestCustomersClampsLimit(t *testing.T) {
	store := &fakeCatalogStore{}
	svc := NewService(store)

	svc.Customers(context.Background(), Query{Limit: 100000, Page: 1})
	require.Equal(t, 1000, store.lastFilter.Limit)
	require.Equal(t, 0, store.lastFilter.Offset)
}
