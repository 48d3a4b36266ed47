package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	strictPolicy = bluemonday.StrictPolicy()
	reportTmpl   = template.Must(template.New("base").Funcs(template.FuncMap{
		"currency":  Currency,
		"dash":      amountOrDash,
		"date":      formatDate,
		"sanitize":  sanitize,
		"signClass": signClass,
	}).ParseFS(templateFS, "templates/*.html"))
)

// HTML writes the report as a standalone HTML page.
func HTML(w io.Writer, s Summary) error {
	if err := reportTmpl.ExecuteTemplate(w, "report", s); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}
	return nil
}

// sanitize strips markup from bank-supplied text. The policy's output is
// already escaped.
func sanitize(s string) template.HTML {
	return template.HTML(strictPolicy.Sanitize(s))
}

func signClass(d decimal.Decimal) string {
	if d.IsNegative() {
		return "text-danger"
	}
	return "text-success"
}
