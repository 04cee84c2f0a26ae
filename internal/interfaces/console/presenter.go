// Package console presenta los resultados del cálculo de ROI como texto
// plano por consola. El formato es locale en-US ($1,234); quedó fuera del
// contrato del núcleo a propósito.
package console

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/daylit/roi-engine/internal/application/dto"
	domroi "github.com/daylit/roi-engine/internal/domain/roi"
)

// Presenter escribe el resumen de ROI en el writer dado.
type Presenter struct {
	out io.Writer
	p   *message.Printer
}

// NewPresenter construye el presenter sobre el writer (normalmente os.Stdout).
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out, p: message.NewPrinter(language.English)}
}

// FormatCurrency "$85,479" / "-$1,234": signo fuera del símbolo, sin decimales.
func (pr *Presenter) FormatCurrency(d decimal.Decimal) string {
	f := d.InexactFloat64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + "$" + pr.p.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))
}

// FormatNumber "2,400": separador de miles, sin decimales.
func (pr *Presenter) FormatNumber(d decimal.Decimal) string {
	return pr.p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(0)))
}

// FormatPct "735.6%"; +Inf se muestra como "∞".
func (pr *Presenter) FormatPct(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return pr.p.Sprintf("%.1f%%", v)
}

// RenderAvailableIndustries lista las industrias con benchmark y su DSO.
func (pr *Presenter) RenderAvailableIndustries() {
	fmt.Fprintln(pr.out, "Available industries with benchmark data:")
	for _, name := range domroi.AvailableIndustries() {
		days, _ := domroi.IndustryBenchmarkDSO(name)
		fmt.Fprintf(pr.out, "  - %s: %d days DSO\n", name, days)
	}
	fmt.Fprintln(pr.out)
}

// RenderBenchmarkComparison compara el DSO del cliente contra el benchmark
// de su industria. Si la industria no tiene benchmark no imprime nada:
// la ausencia es un resultado normal.
func (pr *Presenter) RenderBenchmarkComparison(industry string, clientDSO decimal.Decimal) {
	benchmark, ok := domroi.IndustryBenchmarkDSO(industry)
	if !ok {
		return
	}
	client := clientDSO.InexactFloat64()
	diff := client - float64(benchmark)
	switch {
	case diff > 0:
		fmt.Fprintf(pr.out, "Your DSO (%.0f days) is %.0f days ABOVE industry benchmark (%d days)\n", client, diff, benchmark)
	case diff < 0:
		fmt.Fprintf(pr.out, "Your DSO (%.0f days) is %.0f days BELOW industry benchmark (%d days)\n", client, -diff, benchmark)
	default:
		fmt.Fprintf(pr.out, "Your DSO (%.0f days) matches industry benchmark (%d days)\n", client, benchmark)
	}
}

// RenderSummary imprime el resumen completo de ROI.
func (pr *Presenter) RenderSummary(s dto.ROISummaryDTO) {
	fmt.Fprintln(pr.out, "Daylit X ROI Summary")
	fmt.Fprintln(pr.out, "---------------------")
	fmt.Fprintf(pr.out, "Industry: %s\n", s.Industry)
	fmt.Fprintf(pr.out, "Tier: %s\n", s.Tier)
	fmt.Fprintf(pr.out, "Price (annual): %s\n", pr.FormatCurrency(s.AnnualPriceUSD))
	fmt.Fprintf(pr.out, "ROI: %s\n", pr.FormatPct(s.ROIPct))
	fmt.Fprintf(pr.out, "Cash flow improvement (freed cash): %s\n", pr.FormatCurrency(s.CashFlowImprovementUSD))
	fmt.Fprintf(pr.out, "Employee savings (annualized): %s\n", pr.FormatCurrency(s.AnnualizedEmployeeSavingsUSD))
	fmt.Fprintf(pr.out, "Productivity hours saved (annual): %s hours\n", pr.FormatNumber(s.ProductivityHoursSaved))
	fmt.Fprintf(pr.out, "Bad debt savings (annual): %s\n", pr.FormatCurrency(s.BadDebtSavingsUSD))
	fmt.Fprintf(pr.out, "Opportunity cost (annual): %s\n", pr.FormatCurrency(s.OpportunityCostUSD))
}
