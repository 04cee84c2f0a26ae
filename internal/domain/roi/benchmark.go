package roi

import "github.com/shopspring/decimal"

// IndustryBenchmark entrada estática de benchmark de DSO por industria.
// Fuente: Damodaran, NYU Stern, enero 2025 (working capital data).
// DSO benchmark = (Cuentas por cobrar / Ventas) × 365, redondeado al día.
type IndustryBenchmark struct {
	Industry         string
	ARToSalesRatio   decimal.Decimal
	BenchmarkDSODays int
}

var daysPerYear = decimal.NewFromInt(365)

func benchmarkEntry(industry, ratio string) IndustryBenchmark {
	r := decimal.RequireFromString(ratio)
	return IndustryBenchmark{
		Industry:         industry,
		ARToSalesRatio:   r,
		BenchmarkDSODays: int(r.Mul(daysPerYear).Round(0).IntPart()),
	}
}

// Tabla ordenada de industrias con benchmark disponible.
// Días derivados de los ratios: 44, 64, 53 y 67 respectivamente.
var industryBenchmarks = []IndustryBenchmark{
	benchmarkEntry("Retail Distributors", "0.1216"),
	benchmarkEntry("Chemical (Specialty)", "0.1764"),
	benchmarkEntry("Hospitals/Healthcare Facilities", "0.1447"),
	benchmarkEntry("Business & Consumer Services", "0.1829"),
}

// LookupIndustry busca la entrada de benchmark por nombre exacto.
// La ausencia (industria desconocida) es un resultado normal, no un error.
func LookupIndustry(name string) (IndustryBenchmark, bool) {
	for _, b := range industryBenchmarks {
		if b.Industry == name {
			return b, true
		}
	}
	return IndustryBenchmark{}, false
}

// IndustryBenchmarkDSO devuelve el DSO benchmark en días para la industria,
// u ok=false si no hay datos para ese nombre.
func IndustryBenchmarkDSO(name string) (int, bool) {
	b, ok := LookupIndustry(name)
	if !ok {
		return 0, false
	}
	return b.BenchmarkDSODays, true
}

// AvailableIndustries devuelve la lista ordenada de industrias con datos de
// benchmark, para descubrimiento y despliegue.
func AvailableIndustries() []string {
	names := make([]string, len(industryBenchmarks))
	for i, b := range industryBenchmarks {
		names[i] = b.Industry
	}
	return names
}
