// Package v1 defines the JSON read projections served by the reporting API.
// Field names follow the upstream fatec_* tables; monetary and quantity
// columns arrive as Brazilian-locale text and are normalized before any
// aggregation (see internal/core/money and the SQL in core/storage/postgres).
package v1

import "github.com/shopspring/decimal"

// Product is a row of the product catalog.
type Product struct {
	Code        string `json:"codigo"`
	Description string `json:"descricao_produto"`
	GroupID     string `json:"id_grupo"`
	GroupName   string `json:"descricao_grupo"`
}

// Customer is a row of the customer base.
type Customer struct {
	ID        int64  `json:"id_cliente"`
	LegalName string `json:"razao_cliente"`
	TradeName string `json:"nome_fantasia"`
	City      string `json:"cidade"`
	State     string `json:"uf"`
	GroupID   string `json:"id_grupo"`
	GroupName string `json:"descricao_grupo"`
}

// SaleRecord is a raw sales row. Quantity and values are locale-formatted
// text exactly as stored upstream.
type SaleRecord struct {
	ID          int64  `json:"id_venda"`
	IssueDate   string `json:"data_emissao"`
	TypeCode    int    `json:"tipo"`
	TypeName    string `json:"descricao_tipo"`
	CustomerID  int64  `json:"id_cliente"`
	LegalName   string `json:"razao_cliente"`
	TradeName   string `json:"nome_fantasia"`
	ProductCode string `json:"codigo_produto"`
	ProductName string `json:"descricao_produto"`
	Quantity    string `json:"qtde"`
	UnitValue   string `json:"valor_unitario"`
	Total       string `json:"total"`
}

// ReceivableTitle is the overdue-title projection serialized verbatim into
// the AI renegotiation prompt.
type ReceivableTitle struct {
	Document    string `json:"documento"`
	Title       int64  `json:"titulo"`
	Installment int    `json:"parcela"`
	TradeName   string `json:"nome_fantasia"`
	Balance     string `json:"valor_saldo"`
	DueDate     string `json:"data_vencimento"`
}

// ProductQuantityRank is one row of the top-products-by-quantity report.
// GrandTotal and RowCount repeat on every row: the query attaches them as
// scalar subqueries so the caller gets page and normalization context in a
// single round trip.
type ProductQuantityRank struct {
	ProductCode   string          `json:"codigo_produto"`
	ProductName   string          `json:"descricao_produto"`
	TotalQuantity decimal.Decimal `json:"quantidade_total"`
	GrandTotal    decimal.Decimal `json:"total_geral"`
	RowCount      int64           `json:"qtde_registros"`
}

// ProductValueRank is one row of the top-products-by-value report.
type ProductValueRank struct {
	ProductCode string          `json:"codigo_produto"`
	ProductName string          `json:"descricao_produto"`
	TotalValue  decimal.Decimal `json:"valor_total"`
	GrandTotal  decimal.Decimal `json:"total_geral"`
	RowCount    int64           `json:"qtde_registros"`
}

// PriceVariation reports the percentage swing of a product's unit value,
// (max/min - 1) * 100 rounded to 4 decimal places.
type PriceVariation struct {
	ProductCode  string          `json:"codigo_produto"`
	ProductName  string          `json:"descricao_produto"`
	MinValue     decimal.Decimal `json:"valor_minimo"`
	MaxValue     decimal.Decimal `json:"valor_maximo"`
	VariationPct decimal.Decimal `json:"percentual_diferenca"`
}

// CompanyQuantityShare is a company's share of total sold quantity,
// rounded to 2 decimal places.
type CompanyQuantityShare struct {
	TradeName     string          `json:"nome_fantasia"`
	TotalQuantity decimal.Decimal `json:"quantidade_total"`
	SharePct      decimal.Decimal `json:"percentual"`
}

// CompanyValueShare is a company's share of total sold value,
// rounded to 2 decimal places.
type CompanyValueShare struct {
	TradeName  string          `json:"nome_fantasia"`
	TotalValue decimal.Decimal `json:"valor_total"`
	SharePct   decimal.Decimal `json:"percentual"`
}

// AgingSummary is the six-bucket receivables aging report, one row total.
// Buckets are mutually exclusive under first-match-wins CASE semantics;
// "outro" catches everything overdue more than 60 days.
type AgingSummary struct {
	DueToday      int64 `json:"vencimento_hoje"`
	DueWithin30   int64 `json:"vence_ate_30"`
	OverdueUpTo30 int64 `json:"atraso_ate_30"`
	Overdue30To60 int64 `json:"atraso_30_60"`
	DueBeyond30   int64 `json:"vencimento_superior_30"`
	OverdueOver60 int64 `json:"outro"`
}

// RenegotiationReport is the structured AI renegotiation analysis. When the
// model returns non-conforming output the raw text lands in Notes and both
// arrays stay empty.
type RenegotiationReport struct {
	RenegotiatedTitles []RenegotiatedTitle `json:"renegotiated_titles"`
	CashFlowSummary    []CashFlowEntry     `json:"cash_flow_summary"`
	Notes              string              `json:"notes"`
}

type RenegotiatedTitle struct {
	Title             string `json:"title"`
	Value             string `json:"value"`
	RenegotiationDate string `json:"renegotiation_date"`
	OriginalDueDate   string `json:"original_due_date"`
	NewDueDate        string `json:"new_due_date"`
}

type CashFlowEntry struct {
	MonthYear         string `json:"month_year"`
	TotalRenegotiated string `json:"total_renegotiated"`
}
