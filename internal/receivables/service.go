// Package receivables serves the accounts-receivable aging summary and the
// AI renegotiation analysis.
package receivables

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techfinance-lab/techfinance/internal/ai"
	v1 "github.com/techfinance-lab/techfinance/internal/api/v1"
	httperr "github.com/techfinance-lab/techfinance/internal/core/errors"
	"github.com/techfinance-lab/techfinance/internal/core/money"
	"github.com/techfinance-lab/techfinance/internal/core/storage"
)

// ErrPromptRequired is returned when the caller asks for an AI analysis
// without a usable prompt.
var ErrPromptRequired = errors.New("prompt is required")

// promptPreamble pins the output language and ordering so the model does not
// drift into English or shuffle titles between runs.
const promptPreamble = "Escreva em português do Brasil, formate datas e valores " +
	"no padrão brasileiro e ordene os títulos por data de vencimento crescente."

type Service struct {
	store storage.ReceivablesStore
	ai    ai.Client
	now   func() time.Time
}

func NewService(store storage.ReceivablesStore, client ai.Client) *Service {
	return &Service{store: store, ai: client, now: time.Now}
}

// Summary returns the six-bucket aging report. Fail-soft: a database error
// degrades to a zero-filled summary.
func (s *Service) Summary(ctx context.Context) v1.AgingSummary {
	summary, err := s.store.AgingSummary(ctx)
	if err != nil {
		slog.Error("Failed to fetch aging summary, returning zeroed result", "error", err)
		return v1.AgingSummary{}
	}
	return summary
}

// RenegotiationAnalysis feeds the overdue titles and the caller's prompt to
// the configured model and parses the reply into a structured report. A reply
// that does not parse is not an error: the raw text lands in Notes so the
// caller still sees what the model said.
func (s *Service) RenegotiationAnalysis(ctx context.Context, prompt string) (v1.RenegotiationReport, error) {
	if strings.TrimSpace(prompt) == "" {
		return v1.RenegotiationReport{}, ErrPromptRequired
	}

	titles, err := s.store.OverdueTitles(ctx)
	if err != nil {
		return v1.RenegotiationReport{}, fmt.Errorf("fetching overdue titles: %w", err)
	}

	payload, err := json.Marshal(titles)
	if err != nil {
		return v1.RenegotiationReport{}, fmt.Errorf("encoding overdue titles: %w", err)
	}

	full := fmt.Sprintf("Data de Hoje = %s\nSaldo Total Vencido = %s\n\n%s\n\n%s\n\n%s",
		s.now().Format(time.RFC3339), totalBalance(titles), promptPreamble, prompt, payload)

	raw, err := s.ai.GenerateResponse(ctx, full)
	if err != nil {
		return v1.RenegotiationReport{}, fmt.Errorf("generating renegotiation analysis: %w", err)
	}

	return parseReport(raw), nil
}

// totalBalance sums the locale-formatted balances. Malformed values
// contribute zero, matching the SQL-side normalization guard.
func totalBalance(titles []v1.ReceivableTitle) decimal.Decimal {
	total := decimal.Zero
	for _, t := range titles {
		total = total.Add(money.ParseBROrZero(t.Balance))
	}
	return total
}

// parseReport decodes the model output, degrading gracefully when the reply
// is not the expected JSON (Gemini replies are free text by design).
func parseReport(raw string) v1.RenegotiationReport {
	var report v1.RenegotiationReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		slog.Warn("AI reply is not structured JSON, returning raw text as notes", "error", err)
		notes := strings.TrimSpace(raw)
		if notes == "" {
			notes = httperr.MsgAIResponseFallback
		}
		return v1.RenegotiationReport{
			RenegotiatedTitles: []v1.RenegotiatedTitle{},
			CashFlowSummary:    []v1.CashFlowEntry{},
			Notes:              notes,
		}
	}

	if report.RenegotiatedTitles == nil {
		report.RenegotiatedTitles = []v1.RenegotiatedTitle{}
	}
	if report.CashFlowSummary == nil {
		report.CashFlowSummary = []v1.CashFlowEntry{}
	}
	return report
}
