package dto

import (
	"github.com/shopspring/decimal"

	"github.com/daylit/roi-engine/internal/domain/entity"
)

// ── Request ───────────────────────────────────────────────────────────────────

// CalculationRequest payload externo para solicitar un cálculo de ROI.
type CalculationRequest struct {
	Industry        string          `json:"industry"`         // debe coincidir exacto con la tabla de benchmarks para mostrar comparación
	AnnualRevenue   decimal.Decimal `json:"annual_revenue"`   // USD/año (ARR)
	ARHeadcount     int             `json:"ar_headcount"`     // FTEs en cartera
	CurrentDSODays  decimal.Decimal `json:"current_dso_days"` // días
	MonthlyInvoices int             `json:"monthly_invoices"` // informativo
	FTESalaryBase   decimal.Decimal `json:"fte_salary_base"`  // USD/año por FTE
	BadDebtPct      decimal.Decimal `json:"bad_debt_pct"`     // fracción anual del saldo A/R
}

// ToInputs convierte el request en el registro de dominio.
func (r CalculationRequest) ToInputs() entity.Inputs {
	return entity.Inputs{
		Industry:        r.Industry,
		AnnualRevenue:   r.AnnualRevenue,
		ARHeadcount:     r.ARHeadcount,
		CurrentDSODays:  r.CurrentDSODays,
		MonthlyInvoices: r.MonthlyInvoices,
		FTESalaryBase:   r.FTESalaryBase,
		BadDebtPct:      r.BadDebtPct,
	}
}

// ── Summary ───────────────────────────────────────────────────────────────────

// ROISummaryDTO resultados del cálculo con la industria del request,
// listos para presentación.
//
// Ojo con ROIPct: puede ser +Inf (precio <= 0 con beneficio positivo) y
// encoding/json no serializa infinitos. Quien exponga este DTO como JSON
// debe renderizarlo antes como texto (el presenter de consola usa "∞").
type ROISummaryDTO struct {
	Industry                     string          `json:"industry"`
	Tier                         string          `json:"tier"`
	AnnualPriceUSD               decimal.Decimal `json:"annual_price_usd"`
	ROIPct                       float64         `json:"roi_pct"` // ver nota del tipo: puede ser +Inf
	CashFlowImprovementUSD       decimal.Decimal `json:"cash_flow_improvement_usd"`
	AnnualizedEmployeeSavingsUSD decimal.Decimal `json:"annualized_employee_savings_usd"`
	ProductivityHoursSaved       decimal.Decimal `json:"productivity_hours_saved"`
	BadDebtSavingsUSD            decimal.Decimal `json:"bad_debt_savings_usd"`
	OpportunityCostUSD           decimal.Decimal `json:"opportunity_cost_usd"`
}

// NewROISummaryDTO arma el DTO de resumen desde el registro de dominio.
func NewROISummaryDTO(industry string, r entity.Results) ROISummaryDTO {
	return ROISummaryDTO{
		Industry:                     industry,
		Tier:                         r.Tier,
		AnnualPriceUSD:               r.AnnualPriceUSD,
		ROIPct:                       r.ROIPct,
		CashFlowImprovementUSD:       r.CashFlowImprovementUSD,
		AnnualizedEmployeeSavingsUSD: r.AnnualizedEmployeeSavingsUSD,
		ProductivityHoursSaved:       r.ProductivityHoursSaved,
		BadDebtSavingsUSD:            r.BadDebtSavingsUSD,
		OpportunityCostUSD:           r.OpportunityCostUSD,
	}
}
