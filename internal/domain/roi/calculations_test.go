package roi_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/daylit/roi-engine/internal/domain/entity"
	"github.com/daylit/roi-engine/internal/domain/roi"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia (el mismo del demo por consola):
//
//	ARR 1,200,000 · 3 FTEs en cartera · DSO 65 días · salario base 80,000 ·
//	bad debt 5% · supuestos por defecto.
//
// Valores esperados, calculados a mano con las fórmulas:
//	cash flow   = (1,200,000/365) × (65 × 0.40)          = 85,479.452…
//	empleados   = 3 × (2000 × 0.80) × 0.50 × (80,000/2000) = 96,000
//	horas       = 3 × 2000 × 0.50 × 0.80                  = 2,400
//	bad debt    = 1,200,000 × (65/365) × 0.05 × 0.40      = 4,273.9726…
// ──────────────────────────────────────────────────────────────────────────────

func referenceInputs() entity.Inputs {
	return entity.Inputs{
		Industry:        "Hospitals/Healthcare Facilities",
		AnnualRevenue:   decimal.NewFromInt(1_200_000),
		ARHeadcount:     3,
		CurrentDSODays:  decimal.NewFromInt(65),
		MonthlyInvoices: 5000,
		FTESalaryBase:   decimal.NewFromInt(80_000),
		BadDebtPct:      decimal.NewFromFloat(0.05),
	}
}

func TestCashFlowImprovement_EscenarioReferencia(t *testing.T) {
	got := roi.CashFlowImprovement(referenceInputs(), entity.DefaultAssumptions())
	assert.InDelta(t, 85_479.45, got.InexactFloat64(), 0.01,
		"capital liberado = revenue diario × días de DSO reducidos")
}

func TestAnnualizedEmployeeSavings_EscenarioReferencia(t *testing.T) {
	got := roi.AnnualizedEmployeeSavings(referenceInputs(), entity.DefaultAssumptions())
	assert.True(t, decimal.NewFromInt(96_000).Equal(got),
		"3 FTE × 1600 h en facturas × 50%% ahorrado × $40/h = $96,000; obtenido %s", got)
}

func TestProductivityHoursSaved_EscenarioReferencia(t *testing.T) {
	got := roi.ProductivityHoursSaved(referenceInputs(), entity.DefaultAssumptions())
	assert.True(t, decimal.NewFromInt(2_400).Equal(got),
		"3 × 2000 × 0.50 × 0.80 = 2,400 horas; obtenido %s", got)
}

func TestBadDebtSavings_EscenarioReferencia(t *testing.T) {
	got := roi.BadDebtSavings(referenceInputs(), entity.DefaultAssumptions())
	assert.InDelta(t, 4_273.97, got.InexactFloat64(), 0.01,
		"cartera castigada base × 40%% de reducción")
}

// TestCalculos_PisoEnCero ninguna métrica se reporta negativa aunque la
// entrada produzca un intermedio negativo. El dominio no valida: aplica
// piso. Se niega UN factor a la vez: dos factores negativos simultáneos se
// cancelarían y el producto volvería a ser positivo.
func TestCalculos_PisoEnCero(t *testing.T) {
	assumptions := entity.DefaultAssumptions()

	t.Run("DSO negativo", func(t *testing.T) {
		inputs := referenceInputs()
		inputs.CurrentDSODays = decimal.NewFromInt(-20)

		assert.True(t, roi.CashFlowImprovement(inputs, assumptions).IsZero(),
			"DSO negativo no debe producir cash flow negativo")
		assert.True(t, roi.BadDebtSavings(inputs, assumptions).IsZero(),
			"DSO negativo no debe producir ahorro de cartera negativo")
	})

	t.Run("salario negativo", func(t *testing.T) {
		inputs := referenceInputs()
		inputs.FTESalaryBase = decimal.NewFromInt(-80_000)

		assert.True(t, roi.AnnualizedEmployeeSavings(inputs, assumptions).IsZero(),
			"salario negativo no debe producir ahorro negativo")
	})

	t.Run("headcount negativo", func(t *testing.T) {
		inputs := referenceInputs()
		inputs.ARHeadcount = -3

		assert.True(t, roi.AnnualizedEmployeeSavings(inputs, assumptions).IsZero(),
			"headcount negativo no debe producir ahorro negativo")
		assert.True(t, roi.ProductivityHoursSaved(inputs, assumptions).IsZero(),
			"headcount negativo no debe producir horas negativas")
	})

	t.Run("bad debt pct negativo", func(t *testing.T) {
		inputs := referenceInputs()
		inputs.BadDebtPct = decimal.NewFromFloat(-0.05)

		assert.True(t, roi.BadDebtSavings(inputs, assumptions).IsZero())
	})
}

func TestCalculos_EntradasEnCeroProducenCero(t *testing.T) {
	inputs := entity.Inputs{} // todo en cero
	assumptions := entity.DefaultAssumptions()

	assert.True(t, roi.CashFlowImprovement(inputs, assumptions).IsZero())
	assert.True(t, roi.AnnualizedEmployeeSavings(inputs, assumptions).IsZero())
	assert.True(t, roi.ProductivityHoursSaved(inputs, assumptions).IsZero())
	assert.True(t, roi.BadDebtSavings(inputs, assumptions).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ROIPct: tricotomía de signo y ramas de precio cero.
// ──────────────────────────────────────────────────────────────────────────────

func TestROIPct_Tricotomia(t *testing.T) {
	price := decimal.NewFromInt(12_000)

	assert.Positive(t, roi.ROIPct(decimal.NewFromInt(20_000), price),
		"beneficio > precio implica ROI positivo")
	assert.Zero(t, roi.ROIPct(decimal.NewFromInt(12_000), price),
		"beneficio == precio implica ROI 0")
	assert.Negative(t, roi.ROIPct(decimal.NewFromInt(5_000), price),
		"beneficio < precio implica ROI negativo")
}

func TestROIPct_ValorExacto(t *testing.T) {
	// ((24,000 − 12,000) / 12,000) × 100 = 100%
	got := roi.ROIPct(decimal.NewFromInt(24_000), decimal.NewFromInt(12_000))
	assert.Equal(t, 100.0, got)
}

// Con precio <= 0 no hay división: +Inf si hay beneficio, 0 si no.
func TestROIPct_PrecioCero(t *testing.T) {
	assert.True(t, math.IsInf(roi.ROIPct(decimal.NewFromInt(1), decimal.Zero), 1),
		"precio 0 con beneficio positivo debe señalar +Inf")
	assert.Zero(t, roi.ROIPct(decimal.Zero, decimal.Zero))
	assert.Zero(t, roi.ROIPct(decimal.Zero, decimal.NewFromInt(-5)))
	assert.True(t, math.IsInf(roi.ROIPct(decimal.NewFromInt(1), decimal.NewFromInt(-5)), 1))
}
