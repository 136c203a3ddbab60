package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/techfinance-lab/techfinance/internal/core/storage"
)

func TestCatalogAdapter_Products(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewCatalogAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).
		WithArgs("%parafuso%", "%%", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"codigo", "descricao_produto", "id_grupo", "descricao_grupo"}).
			AddRow("P001", "Parafuso Sextavado", "G1", "Fixadores"))

	products, err := adapter.Products(context.Background(), storage.CatalogFilter{
		Name: "parafuso", Limit: 10, Offset: 0,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Parafuso Sextavado", products[0].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_Customers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewCatalogAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryListCustomers)).
		WithArgs("%alfa%", "%varejo%", 25, 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_cliente", "razao_cliente", "nome_fantasia", "cidade", "uf", "id_grupo", "descricao_grupo",
		}).AddRow(int64(7), "Empresa Alfa LTDA", "Alfa", "Campinas", "SP", "G2", "Varejo"))

	customers, err := adapter.Customers(context.Background(), storage.CatalogFilter{
		Name: "alfa", Group: "varejo", Limit: 25, Offset: 50,
	})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, int64(7), customers[0].ID)
	require.Equal(t, "SP", customers[0].State)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogAdapter_ProductsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewCatalogAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryListProducts)).
		WillReturnError(context.DeadlineExceeded)

	_, err = adapter.Products(context.Background(), storage.CatalogFilter{Limit: 10})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
