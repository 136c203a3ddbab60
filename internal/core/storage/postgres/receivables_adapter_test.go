package postgres

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestReceivablesAdapter_AgingSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewReceivablesAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryAgingSummary)).
		WillReturnRows(sqlmock.NewRows([]string{
			"vencimento_hoje", "vence_ate_30", "atraso_ate_30",
			"atraso_30_60", "vencimento_superior_30", "outro",
		}).AddRow(int64(1), int64(2), int64(3), int64(4), int64(5), int64(6)))

	summary, err := adapter.AgingSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.DueToday)
	require.Equal(t, int64(2), summary.DueWithin30)
	require.Equal(t, int64(3), summary.OverdueUpTo30)
	require.Equal(t, int64(4), summary.Overdue30To60)
	require.Equal(t, int64(5), summary.DueBeyond30)
	require.Equal(t, int64(6), summary.OverdueOver60)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReceivablesAdapter_AgingSummaryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewReceivablesAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryAgingSummary)).
		WillReturnError(fmt.Errorf("connection refused"))

	_, err = adapter.AgingSummary(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReceivablesAdapter_OverdueTitles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewReceivablesAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryOverdueTitles)).
		WillReturnRows(sqlmock.NewRows([]string{
			"documento", "titulo", "parcela", "nome_fantasia", "valor_saldo", "data_vencimento",
		}).
			AddRow("NF-1001", int64(555), 1, "Alfa", "1.200,00", "2024-02-01").
			AddRow("NF-1002", int64(556), 2, "Beta", "300,50", "2024-03-15"))

	titles, err := adapter.OverdueTitles(context.Background())
	require.NoError(t, err)
	require.Len(t, titles, 2)
	require.Equal(t, "NF-1001", titles[0].Document)
	require.Equal(t, "1.200,00", titles[0].Balance)
	require.Equal(t, "2024-03-15", titles[1].DueDate)
	require.NoError(t, mock.ExpectationsWereMet())
}
