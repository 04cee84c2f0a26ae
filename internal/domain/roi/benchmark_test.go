package roi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylit/roi-engine/internal/domain/roi"
)

// Días de DSO publicados (Damodaran, NYU Stern, enero 2025): la tabla se
// deriva de los ratios A/R-sobre-ventas × 365 redondeado; estos valores son
// el vector de referencia.
var expectedBenchmarks = map[string]int{
	"Retail Distributors":             44,
	"Chemical (Specialty)":            64,
	"Hospitals/Healthcare Facilities": 53,
	"Business & Consumer Services":    67,
}

func TestIndustryBenchmarkDSO_IndustriaConocida(t *testing.T) {
	days, ok := roi.IndustryBenchmarkDSO("Hospitals/Healthcare Facilities")
	require.True(t, ok)
	assert.Equal(t, 53, days)
}

// TestIndustryBenchmarkDSO_IndustriaDesconocida la ausencia es un resultado
// normal (ok=false), nunca un error ni un pánico.
func TestIndustryBenchmarkDSO_IndustriaDesconocida(t *testing.T) {
	days, ok := roi.IndustryBenchmarkDSO("Nonexistent")
	assert.False(t, ok)
	assert.Zero(t, days)
}

// El match es exacto: diferencias de mayúsculas o espacios no resuelven.
func TestIndustryBenchmarkDSO_MatchExacto(t *testing.T) {
	_, ok := roi.IndustryBenchmarkDSO("hospitals/healthcare facilities")
	assert.False(t, ok, "el lookup no debe ser case-insensitive")
}

func TestAvailableIndustries_OrdenYContenido(t *testing.T) {
	industries := roi.AvailableIndustries()
	require.Equal(t, []string{
		"Retail Distributors",
		"Chemical (Specialty)",
		"Hospitals/Healthcare Facilities",
		"Business & Consumer Services",
	}, industries, "la lista debe conservar el orden de la tabla")

	for _, name := range industries {
		days, ok := roi.IndustryBenchmarkDSO(name)
		require.True(t, ok, "toda industria listada debe resolver benchmark")
		assert.Equal(t, expectedBenchmarks[name], days, "DSO benchmark de %s", name)
	}
}

// TestLookupIndustry_RatioDisponible la entrada completa expone el ratio
// A/R-sobre-ventas del que se deriva el DSO.
func TestLookupIndustry_RatioDisponible(t *testing.T) {
	b, ok := roi.LookupIndustry("Retail Distributors")
	require.True(t, ok)
	assert.Equal(t, "0.1216", b.ARToSalesRatio.String())
	assert.Equal(t, 44, b.BenchmarkDSODays)
}
