package entity

import "github.com/shopspring/decimal"

// Results métricas calculadas para un par Inputs × Assumptions.
// Registro de valor inmutable: sin identidad propia, nunca se muta.
//
// ROIPct es float64 (no decimal) porque el contrato admite +Inf cuando el
// precio anual es <= 0 y el beneficio es positivo; los montos en USD y las
// horas se mantienen en decimal para aritmética exacta y reproducible.
type Results struct {
	ROIPct                       float64 // 150.0 significa 150%; puede ser +Inf
	CashFlowImprovementUSD       decimal.Decimal
	AnnualizedEmployeeSavingsUSD decimal.Decimal
	ProductivityHoursSaved       decimal.Decimal
	BadDebtSavingsUSD            decimal.Decimal
	OpportunityCostUSD           decimal.Decimal // lo que el cliente deja de ganar si no captura el beneficio
	Tier                         string
	AnnualPriceUSD               decimal.Decimal
}
