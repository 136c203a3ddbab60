package postgres

// SQL for the reporting queries. Monetary and quantity columns are stored as
// Brazilian-locale text: '.' thousands separator, ',' decimal separator.
// Every aggregate strips '.' and swaps ',' for '.' before CAST, and a regex
// guard excludes rows whose value does not normalize to a plain decimal so a
// single malformed row cannot fail the whole query.

// Normalization expressions, one per measured column.
const (
	normQuantity  = `CAST(REPLACE(REPLACE(qtde, '.', ''), ',', '.') AS NUMERIC)`
	normTotal     = `CAST(REPLACE(REPLACE(total, '.', ''), ',', '.') AS NUMERIC)`
	normUnitValue = `CAST(REPLACE(REPLACE(valor_unitario, '.', ''), ',', '.') AS NUMERIC)`

	guardQuantity  = `REPLACE(REPLACE(qtde, '.', ''), ',', '.') ~ '^[0-9]+(\.[0-9]+)?$'`
	guardTotal     = `REPLACE(REPLACE(total, '.', ''), ',', '.') ~ '^[0-9]+(\.[0-9]+)?$'`
	guardUnitValue = `REPLACE(REPLACE(valor_unitario, '.', ''), ',', '.') ~ '^[0-9]+(\.[0-9]+)?$'`
)

// Catalog listings: case-insensitive substring filters, stable ordering for
// deterministic pagination.
const (
	queryListProducts = `
		SELECT codigo, descricao_produto, id_grupo, descricao_grupo
		FROM fatec_produtos
		WHERE descricao_produto ILIKE $1
		  AND descricao_grupo ILIKE $2
		ORDER BY descricao_produto, codigo
		LIMIT $3 OFFSET $4
	`

	queryListCustomers = `
		SELECT id_cliente, razao_cliente, nome_fantasia, cidade, uf, id_grupo, descricao_grupo
		FROM fatec_clientes
		WHERE razao_cliente ILIKE $1
		  AND descricao_grupo ILIKE $2
		ORDER BY razao_cliente, id_cliente
		LIMIT $3 OFFSET $4
	`
)

const (
	queryListSales = `
		SELECT id_venda, data_emissao, tipo, descricao_tipo,
		       id_cliente, razao_cliente, nome_fantasia,
		       codigo_produto, descricao_produto, qtde, valor_unitario, total
		FROM fatec_vendas
		ORDER BY id_venda
		LIMIT $1 OFFSET $2
	`

	// queryTopProductsByQuantity groups by product identity and sums the
	// normalized quantity. Grand total and overall row count ride along as
	// scalar subqueries so the caller gets page and normalization context in
	// one round trip.
	queryTopProductsByQuantity = `
		WITH product_totals AS (
			SELECT codigo_produto, descricao_produto,
			       SUM(` + normQuantity + `) AS quantidade_total
			FROM fatec_vendas
			WHERE ` + guardQuantity + `
			GROUP BY codigo_produto, descricao_produto
		)
		SELECT codigo_produto, descricao_produto, quantidade_total,
		       (SELECT SUM(quantidade_total) FROM product_totals) AS total_geral,
		       (SELECT COUNT(1) FROM fatec_vendas) AS qtde_registros
		FROM product_totals
		ORDER BY quantidade_total DESC
		LIMIT $1
	`

	queryTopProductsByValue = `
		WITH product_totals AS (
			SELECT codigo_produto, descricao_produto,
			       SUM(` + normTotal + `) AS valor_total
			FROM fatec_vendas
			WHERE ` + guardTotal + `
			GROUP BY codigo_produto, descricao_produto
		)
		SELECT codigo_produto, descricao_produto, valor_total,
		       (SELECT SUM(valor_total) FROM product_totals) AS total_geral,
		       (SELECT COUNT(1) FROM fatec_vendas) AS qtde_registros
		FROM product_totals
		ORDER BY valor_total DESC
		LIMIT $1
	`

	// queryPriceVariationByProduct derives the percentage swing between the
	// cheapest and most expensive normalized unit value per product.
	// Non-positive values are excluded up front: a zero minimum would divide
	// by zero and negative prices produce nonsensical ratios.
	queryPriceVariationByProduct = `
		SELECT codigo_produto, descricao_produto,
		       MIN(` + normUnitValue + `) AS valor_minimo,
		       MAX(` + normUnitValue + `) AS valor_maximo,
		       ROUND(((MAX(` + normUnitValue + `) / MIN(` + normUnitValue + `)) - 1) * 100, 4) AS percentual_diferenca
		FROM fatec_vendas
		WHERE ` + guardUnitValue + `
		  AND ` + normUnitValue + ` > 0
		GROUP BY codigo_produto, descricao_produto
		ORDER BY percentual_diferenca DESC
		LIMIT $1
	`

	// Participation runs in two phases: grand total first, then the grouped
	// detail with the total bound as $1. A zero grand total short-circuits to
	// an empty result before phase two.
	queryGrandTotalQuantity = `
		SELECT COALESCE(SUM(` + normQuantity + `), 0) AS total_geral
		FROM fatec_vendas
		WHERE ` + guardQuantity + `
	`

	queryCompanyShareByQuantity = `
		SELECT nome_fantasia,
		       SUM(` + normQuantity + `) AS quantidade_total,
		       ROUND((SUM(` + normQuantity + `) / $1) * 100, 2) AS percentual
		FROM fatec_vendas
		WHERE ` + guardQuantity + `
		GROUP BY nome_fantasia
		ORDER BY quantidade_total DESC
		LIMIT $2
	`

	queryGrandTotalValue = `
		SELECT COALESCE(SUM(` + normTotal + `), 0) AS total_geral
		FROM fatec_vendas
		WHERE ` + guardTotal + `
	`

	queryCompanyShareByValue = `
		SELECT nome_fantasia,
		       SUM(` + normTotal + `) AS valor_total,
		       ROUND((SUM(` + normTotal + `) / $1) * 100, 2) AS percentual
		FROM fatec_vendas
		WHERE ` + guardTotal + `
		GROUP BY nome_fantasia
		ORDER BY valor_total DESC
		LIMIT $2
	`
)

const (
	// queryAgingSummary buckets every receivable by due_date - current_date.
	// CASE is first-match-wins: diff = 31 falls through "Vence em até 30 dias"
	// (which stops at 30) into "Vencimento superior a 30 dias"; anything not
	// matched lands in the over-60-days catch-all.
	queryAgingSummary = `
		WITH contas AS (
			SELECT
				CASE
					WHEN CAST(data_vencimento AS DATE) - CURRENT_DATE = 0 THEN 'Vencimento hoje'
					WHEN CAST(data_vencimento AS DATE) - CURRENT_DATE > 0 AND CAST(data_vencimento AS DATE) - CURRENT_DATE < 31 THEN 'Vence em até 30 dias'
					WHEN CAST(data_vencimento AS DATE) - CURRENT_DATE < 0 AND CAST(data_vencimento AS DATE) - CURRENT_DATE >= -30 THEN 'Atraso de até 30 dias'
					WHEN CAST(data_vencimento AS DATE) - CURRENT_DATE < -30 AND CAST(data_vencimento AS DATE) - CURRENT_DATE >= -60 THEN 'Atraso de 30 a 60 dias'
					WHEN CAST(data_vencimento AS DATE) - CURRENT_DATE > 30 THEN 'Vencimento superior a 30 dias'
					ELSE 'Vencido há mais de 60 dias'
				END AS status_vencimento
			FROM fatec_contas_receber
		)
		SELECT
			COUNT(CASE WHEN status_vencimento = 'Vencimento hoje' THEN 1 END) AS vencimento_hoje,
			COUNT(CASE WHEN status_vencimento = 'Vence em até 30 dias' THEN 1 END) AS vence_ate_30,
			COUNT(CASE WHEN status_vencimento = 'Atraso de até 30 dias' THEN 1 END) AS atraso_ate_30,
			COUNT(CASE WHEN status_vencimento = 'Atraso de 30 a 60 dias' THEN 1 END) AS atraso_30_60,
			COUNT(CASE WHEN status_vencimento = 'Vencimento superior a 30 dias' THEN 1 END) AS vencimento_superior_30,
			COUNT(CASE WHEN status_vencimento = 'Vencido há mais de 60 dias' THEN 1 END) AS outro
		FROM contas
	`

	// queryOverdueTitles is the dataset serialized into the AI prompt:
	// every overdue title ordered by due date ascending.
	queryOverdueTitles = `
		SELECT documento, titulo, parcela, nome_fantasia, valor_saldo,
		       TO_CHAR(CAST(data_vencimento AS DATE), 'YYYY-MM-DD') AS data_vencimento
		FROM fatec_contas_receber
		WHERE CAST(data_vencimento AS DATE) < CURRENT_DATE
		ORDER BY CAST(data_vencimento AS DATE) ASC
	`
)
