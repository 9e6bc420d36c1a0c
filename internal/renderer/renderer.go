package renderer

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdocs/orderdocs/internal/domain/company"
	"github.com/orderdocs/orderdocs/internal/domain/document"
	"github.com/orderdocs/orderdocs/internal/types"
)

// Renderer produces a document body (HTML for PDF kinds, XML for UBL) from
// a normalized order snapshot and the company profile. Renderers are pure
// over their inputs plus the current server date; they perform no I/O.
type Renderer interface {
	Render(ctx context.Context, snap *document.Snapshot, profile *company.Profile) (string, error)
}

// NewRegistry builds the static dispatch table over the three document
// kinds. No other kinds exist.
func NewRegistry() map[types.DocumentKind]Renderer {
	return map[types.DocumentKind]Renderer{
		types.DocumentKindPDFInvoice:  NewInvoiceRenderer(),
		types.DocumentKindUBLInvoice:  NewUBLRenderer(),
		types.DocumentKindPackingSlip: NewPackingSlipRenderer(),
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
		"nl2br":       nl2br,
	}
}

func formatMoney(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02")
}

// nl2br renders a multi-line settings value (the company address) as
// escaped HTML with explicit line breaks.
func nl2br(value string) template.HTML {
	lines := strings.Split(value, "\n")
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = template.HTMLEscapeString(strings.TrimRight(line, "\r"))
	}
	return template.HTML(strings.Join(escaped, "<br>"))
}
