package entity

import "github.com/shopspring/decimal"

// Assumptions supuestos del modelo de impacto de Daylit X.
// Todos tienen valor por defecto y todos pueden sobrescribirse vía
// configuración (ver pkg/config). Precondición para dividir con seguridad:
// WorkingDaysPerYear > 0 y HoursPerFTEPerYear > 0 (tags gt=0).
type Assumptions struct {
	CostOfCapitalAnnualPct      decimal.Decimal // valoriza anualmente el beneficio no capturado
	DSOReductionRelativePct     decimal.Decimal // reducción relativa aplicada al DSO actual
	BadDebtReductionRelativePct decimal.Decimal // reducción relativa vs. cartera castigada base
	ProductivityTimeSavedPct    decimal.Decimal // % del tiempo de A/R que se ahorra
	HoursPerFTEPerYear          int             `validate:"gt=0"` // horas laborales por FTE al año
	WorkingDaysPerYear          int             `validate:"gt=0"` // días para revenue diario promedio
	PercentageOfTimeOnInvoices  decimal.Decimal // fracción del tiempo de un FTE dedicada a facturas
}

// DefaultAssumptions devuelve los supuestos por defecto del modelo.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		CostOfCapitalAnnualPct:      decimal.NewFromFloat(0.045),
		DSOReductionRelativePct:     decimal.NewFromFloat(0.40),
		BadDebtReductionRelativePct: decimal.NewFromFloat(0.40),
		ProductivityTimeSavedPct:    decimal.NewFromFloat(0.50),
		HoursPerFTEPerYear:          2000,
		WorkingDaysPerYear:          365,
		PercentageOfTimeOnInvoices:  decimal.NewFromFloat(0.80),
	}
}
