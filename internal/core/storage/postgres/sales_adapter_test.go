package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// salesPrepares registers the prepare expectations issued by NewSalesAdapter,
// in construction order, and returns the handles keyed by query.
func salesPrepares(mock sqlmock.Sqlmock) map[string]*sqlmock.ExpectedPrepare {
	queries := []string{
		queryListSales,
		queryTopProductsByQuantity,
		queryTopProductsByValue,
		queryPriceVariationByProduct,
		queryGrandTotalQuantity,
		queryCompanyShareByQuantity,
		queryGrandTotalValue,
		queryCompanyShareByValue,
	}
	prepares := make(map[string]*sqlmock.ExpectedPrepare, len(queries))
	for _, q := range queries {
		prepares[q] = mock.ExpectPrepare(regexp.QuoteMeta(q))
	}
	return prepares
}

func newSalesAdapterForTest(t *testing.T) (*SalesAdapter, *sql.DB, sqlmock.Sqlmock, map[string]*sqlmock.ExpectedPrepare) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	prepares := salesPrepares(mock)
	adapter, err := NewSalesAdapter(db)
	require.NoError(t, err)

	return adapter, db, mock, prepares
}

func TestSalesAdapter_Sales(t *testing.T) {
	adapter, db, mock, prepares := newSalesAdapterForTest(t)
	defer db.Close()

	prepares[queryListSales].ExpectQuery().
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_venda", "data_emissao", "tipo", "descricao_tipo",
			"id_cliente", "razao_cliente", "nome_fantasia",
			"codigo_produto", "descricao_produto", "qtde", "valor_unitario", "total",
		}).AddRow(
			int64(1), "2024-01-15", 1, "Venda",
			int64(7), "Empresa Alfa LTDA", "Alfa",
			"P001", "Parafuso", "1.000,5", "2,50", "2.501,25",
		))

	sales, err := adapter.Sales(context.Background(), 10, 20)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, "P001", sales[0].ProductCode)
	require.Equal(t, "1.000,5", sales[0].Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesAdapter_TopProductsByQuantity(t *testing.T) {
	adapter, db, mock, prepares := newSalesAdapterForTest(t)
	defer db.Close()

	prepares[queryTopProductsByQuantity].ExpectQuery().
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{
			"codigo_produto", "descricao_produto", "quantidade_total", "total_geral", "qtde_registros",
		}).
			AddRow("P001", "Parafuso", "1500.5", "2000.5", int64(340)).
			AddRow("P002", "Porca", "500", "2000.5", int64(340)))

	ranks, err := adapter.TopProductsByQuantity(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, ranks, 2)
	require.True(t, decimal.RequireFromString("1500.5").Equal(ranks[0].TotalQuantity))
	require.True(t, decimal.RequireFromString("2000.5").Equal(ranks[0].GrandTotal))
	require.Equal(t, int64(340), ranks[1].RowCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesAdapter_PriceVariationByProduct(t *testing.T) {
	adapter, db, mock, prepares := newSalesAdapterForTest(t)
	defer db.Close()

	prepares[queryPriceVariationByProduct].ExpectQuery().
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"codigo_produto", "descricao_produto", "valor_minimo", "valor_maximo", "percentual_diferenca",
		}).AddRow("P001", "Parafuso", "2", "3", "50.0000"))

	variations, err := adapter.PriceVariationByProduct(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, variations, 1)
	require.True(t, decimal.RequireFromString("50").Equal(variations[0].VariationPct))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesAdapter_CompanyShareByQuantity(t *testing.T) {
	adapter, db, mock, prepares := newSalesAdapterForTest(t)
	defer db.Close()

	prepares[queryGrandTotalQuantity].ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"total_geral"}).AddRow("200"))

	prepares[queryCompanyShareByQuantity].ExpectQuery().
		WithArgs(decimal.RequireFromString("200"), 3).
		WillReturnRows(sqlmock.NewRows([]string{"nome_fantasia", "quantidade_total", "percentual"}).
			AddRow("Alfa", "150", "75.00").
			AddRow("Beta", "50", "25.00"))

	shares, err := adapter.CompanyShareByQuantity(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	require.True(t, decimal.RequireFromString("75").Equal(shares[0].SharePct))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesAdapter_CompanyShareByQuantity_ZeroGrandTotal(t *testing.T) {
	adapter, db, mock, prepares := newSalesAdapterForTest(t)
	defer db.Close()

	// Zero grand total short-circuits: the detail query must never run.
	prepares[queryGrandTotalQuantity].ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"total_geral"}).AddRow("0"))

	shares, err := adapter.CompanyShareByQuantity(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, shares)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesAdapter_CompanyShareByValue_ZeroGrandTotal(t *testing.T) {
	adapter, db, mock, prepares := newSalesAdapterForTest(t)
	defer db.Close()

	prepares[queryGrandTotalValue].ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"total_geral"}).AddRow("0"))

	shares, err := adapter.CompanyShareByValue(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, shares)
	require.NoError(t, mock.ExpectationsWereMet())
}
