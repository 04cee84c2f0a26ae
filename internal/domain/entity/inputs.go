package entity

import "github.com/shopspring/decimal"

// Inputs datos financieros y operativos del cliente para un cálculo de ROI.
// Registro inmutable: se construye una vez por cálculo y no se modifica.
//
// Los tags validate los aplica la capa de aplicación antes de calcular;
// las funciones de dominio no validan (contrato total, piso en cero).
type Inputs struct {
	// Industry etiqueta de industria; informativa si no hay benchmark.
	Industry string

	AnnualRevenue   decimal.Decimal `validate:"gte=0"` // USD/año (ARR)
	ARHeadcount     int             `validate:"gte=0"` // FTEs dedicados a cartera (A/R)
	CurrentDSODays  decimal.Decimal `validate:"gte=0"` // DSO actual del cliente, en días
	MonthlyInvoices int             `validate:"gte=0"` // facturas/mes; informativo, no entra en fórmulas
	FTESalaryBase   decimal.Decimal `validate:"gte=0"` // USD/año por FTE (salario base)
	BadDebtPct      decimal.Decimal `validate:"gte=0"` // fracción del saldo A/R perdida al año (0.01 = 1%)
}
