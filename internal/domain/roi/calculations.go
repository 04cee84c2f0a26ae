package roi

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/daylit/roi-engine/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// floorAtZero las métricas de beneficio nunca se reportan negativas.
func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CashFlowImprovement capital de trabajo liberado por reducir el DSO
// (sin multiplicador de costo de capital):
//
//	días_reducidos = DSO_actual × dso_reduction_relative_pct
//	revenue_diario = ARR / working_days_per_year
//	resultado      = revenue_diario × días_reducidos
//
// Se reporta por transparencia pero NO entra en el total de beneficio del
// ROI: es un efecto de balance, no una reducción realizada de costo/pérdida.
// Precondición del caller: WorkingDaysPerYear > 0.
func CashFlowImprovement(inputs entity.Inputs, assumptions entity.Assumptions) decimal.Decimal {
	daysReduced := inputs.CurrentDSODays.Mul(assumptions.DSOReductionRelativePct)
	averageDailyRevenue := inputs.AnnualRevenue.Div(decimal.NewFromInt(int64(assumptions.WorkingDaysPerYear)))
	return floorAtZero(averageDailyRevenue.Mul(daysReduced))
}

// AnnualizedEmployeeSavings costo laboral anualizado ahorrado por reducir el
// esfuerzo manual del equipo de A/R sobre facturas:
//
//	salario_hora      = fte_salary_base / hours_per_fte_per_year
//	horas_en_facturas = hours_per_fte_per_year × percentage_of_time_on_invoices
//	resultado         = ar_headcount × horas_en_facturas × productivity_time_saved_pct × salario_hora
//
// Precondición del caller: HoursPerFTEPerYear > 0.
func AnnualizedEmployeeSavings(inputs entity.Inputs, assumptions entity.Assumptions) decimal.Decimal {
	hoursPerFTE := decimal.NewFromInt(int64(assumptions.HoursPerFTEPerYear))
	hourlyWage := inputs.FTESalaryBase.Div(hoursPerFTE)
	timeOnInvoices := hoursPerFTE.Mul(assumptions.PercentageOfTimeOnInvoices)
	savings := decimal.NewFromInt(int64(inputs.ARHeadcount)).
		Mul(timeOnInvoices).
		Mul(assumptions.ProductivityTimeSavedPct).
		Mul(hourlyWage)
	return floorAtZero(savings)
}

// ProductivityHoursSaved horas anuales ahorradas por eficiencia de flujo:
//
//	resultado = ar_headcount × hours_per_fte_per_year ×
//	            productivity_time_saved_pct × percentage_of_time_on_invoices
//
// Misma aritmética que la parte de horas de AnnualizedEmployeeSavings, pero
// es una métrica independiente (horas, no USD) y se calcula por separado.
func ProductivityHoursSaved(inputs entity.Inputs, assumptions entity.Assumptions) decimal.Decimal {
	hours := decimal.NewFromInt(int64(inputs.ARHeadcount)).
		Mul(decimal.NewFromInt(int64(assumptions.HoursPerFTEPerYear))).
		Mul(assumptions.ProductivityTimeSavedPct).
		Mul(assumptions.PercentageOfTimeOnInvoices)
	return floorAtZero(hours)
}

// BadDebtSavings reducción de cartera castigada. La cartera base se modela
// proporcional al saldo de A/R implícito en el DSO actual:
//
//	saldo_AR_estimado = ARR × (DSO_actual / working_days_per_year)
//	castigo_base      = saldo_AR_estimado × bad_debt_pct
//	resultado         = castigo_base × bad_debt_reduction_relative_pct
//
// Precondición del caller: WorkingDaysPerYear > 0.
func BadDebtSavings(inputs entity.Inputs, assumptions entity.Assumptions) decimal.Decimal {
	workingDays := decimal.NewFromInt(int64(assumptions.WorkingDaysPerYear))
	estimatedARBalance := inputs.AnnualRevenue.Mul(inputs.CurrentDSODays.Div(workingDays))
	baselineBadDebt := estimatedARBalance.Mul(inputs.BadDebtPct)
	return floorAtZero(baselineBadDebt.Mul(assumptions.BadDebtReductionRelativePct))
}

// ROIPct porcentaje de ROI: ((beneficio − costo) / costo) × 100.
// Si el precio anual es <= 0 devuelve +Inf cuando hay beneficio positivo y
// 0 en caso contrario: evita la división por cero preservando la señal.
func ROIPct(totalBenefit, annualPrice decimal.Decimal) float64 {
	if annualPrice.LessThanOrEqual(decimal.Zero) {
		if totalBenefit.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}
	return totalBenefit.Sub(annualPrice).Div(annualPrice).Mul(hundred).InexactFloat64()
}
