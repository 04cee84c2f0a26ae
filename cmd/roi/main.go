// roi calcula e imprime el resumen de ROI de Daylit X por consola: lista
// las industrias con benchmark, compara el DSO del cliente y muestra las
// métricas de beneficio con el tier de pricing resuelto por ARR.
//
// Uso: go run ./cmd/roi
// Los supuestos del modelo se sobrescriben vía env vars (ver pkg/config).
package main

import (
	"os"

	"github.com/shopspring/decimal"

	"github.com/daylit/roi-engine/internal/application/dto"
	approi "github.com/daylit/roi-engine/internal/application/roi"
	"github.com/daylit/roi-engine/internal/interfaces/console"
	"github.com/daylit/roi-engine/pkg/config"
	"github.com/daylit/roi-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando calculadora de ROI")

	calculateUC := approi.NewCalculateUseCase(log)
	presenter := console.NewPresenter(os.Stdout)

	presenter.RenderAvailableIndustries()

	// Escenario de demostración: industria con datos de benchmark.
	request := dto.CalculationRequest{
		Industry:        "Hospitals/Healthcare Facilities",
		AnnualRevenue:   decimal.NewFromInt(1_200_000), // ARR
		ARHeadcount:     3,
		CurrentDSODays:  decimal.NewFromInt(65),
		MonthlyInvoices: 5000,
		FTESalaryBase:   decimal.NewFromInt(80_000),
		BadDebtPct:      decimal.NewFromFloat(0.05),
	}

	results, err := calculateUC.CalculateAll(request.ToInputs(), cfg.ROI.Assumptions())
	if err != nil {
		log.Fatal().Err(err).Msg("cálculo ROI")
	}

	presenter.RenderBenchmarkComparison(request.Industry, request.CurrentDSODays)
	presenter.RenderSummary(dto.NewROISummaryDTO(request.Industry, results))
}
