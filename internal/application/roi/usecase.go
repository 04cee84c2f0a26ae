// Package roi contiene el caso de uso de cálculo de ROI: valida los
// registros de entrada, resuelve tier/precio y compone las cuatro métricas
// de beneficio en un Results.
package roi

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/daylit/roi-engine/internal/domain"
	"github.com/daylit/roi-engine/internal/domain/entity"
	domroi "github.com/daylit/roi-engine/internal/domain/roi"
	"github.com/daylit/roi-engine/pkg/logger"
)

// CalculateUseCase orquesta un cálculo completo de ROI.
//
// La validación vive aquí y no en el dominio: las funciones de dominio son
// totales (piso en cero, fallback de tier, rama ±Inf) pero sus divisiones
// exigen WorkingDaysPerYear > 0 y HoursPerFTEPerYear > 0, y ese contrato se
// rechaza en esta capa antes de tocar la aritmética.
type CalculateUseCase struct {
	validate *validator.Validate
	log      *logger.Logger
}

// NewCalculateUseCase construye el caso de uso. Registra decimal.Decimal en
// el validador para que los tags numéricos (gte=0) apliquen sobre su valor.
func NewCalculateUseCase(log *logger.Logger) *CalculateUseCase {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return &CalculateUseCase{validate: v, log: log}
}

// CalculateAll calcula todas las métricas de ROI de Daylit X para el par
// Inputs × Assumptions, determinando tier y precio a partir del ARR.
// Función determinista y sin efectos: misma entrada, mismo Results.
func (uc *CalculateUseCase) CalculateAll(inputs entity.Inputs, assumptions entity.Assumptions) (entity.Results, error) {
	if err := uc.validate.Struct(inputs); err != nil {
		uc.log.Warn().Err(err).Msg("inputs rechazados por validación")
		return entity.Results{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := uc.validate.Struct(assumptions); err != nil {
		uc.log.Warn().Err(err).Msg("supuestos rechazados por validación")
		return entity.Results{}, fmt.Errorf("%w: %v", domain.ErrInvalidAssumptions, err)
	}

	tier, annualPrice := domroi.DetermineTierAndPrice(inputs.AnnualRevenue)

	cashFlow := domroi.CashFlowImprovement(inputs, assumptions)
	employeeSavings := domroi.AnnualizedEmployeeSavings(inputs, assumptions)
	hoursSaved := domroi.ProductivityHoursSaved(inputs, assumptions)
	badDebtSavings := domroi.BadDebtSavings(inputs, assumptions)

	// El ROI excluye el cash liberado y las horas: solo suma reducciones
	// realizadas de costo/pérdida; lo demás se reporta por transparencia.
	totalBenefit := employeeSavings.Add(badDebtSavings)
	roiPct := domroi.ROIPct(totalBenefit, annualPrice)

	// Costo de oportunidad: lo que el cliente pierde al no capturar el beneficio.
	opportunityCost := totalBenefit.Mul(assumptions.CostOfCapitalAnnualPct)

	results := entity.Results{
		ROIPct:                       roiPct,
		CashFlowImprovementUSD:       cashFlow,
		AnnualizedEmployeeSavingsUSD: employeeSavings,
		ProductivityHoursSaved:       hoursSaved,
		BadDebtSavingsUSD:            badDebtSavings,
		OpportunityCostUSD:           opportunityCost,
		Tier:                         tier,
		AnnualPriceUSD:               annualPrice,
	}

	uc.log.Info().
		Str("industry", inputs.Industry).
		Str("tier", tier).
		Float64("roi_pct", roiPct).
		Str("total_benefit_usd", totalBenefit.StringFixed(2)).
		Msg("cálculo ROI completado")

	return results, nil
}
