// Package roi implementa la lógica de negocio del cálculo de ROI de
// Daylit X: tabla de tiers/precios por ARR, benchmarks de DSO por industria
// y las fórmulas de beneficio. Todas las funciones son puras y seguras para
// uso concurrente; las tablas son de solo lectura.
package roi

import "github.com/shopspring/decimal"

// Tier fila de la tabla de precios por ARR.
// Intervalos semiabiertos [Lower, Upper): un ARR igual al límite cae en el
// tier superior. La última fila es abierta (Unbounded), así todo ARR >= 0
// resuelve exactamente a una fila.
type Tier struct {
	Name        string
	Lower       decimal.Decimal // inclusivo
	Upper       decimal.Decimal // exclusivo; se ignora si Unbounded
	Unbounded   bool
	AnnualPrice decimal.Decimal // USD/año
}

// Tabla confirmada de pricing:
// - Small: ARR < $25M            -> $12,000/año
// - Middle market: $25M–$50M     -> $60,000/año
// - Enterprise: ARR >= $50M      -> $100,000/año
var tiers = []Tier{
	{Name: "Small", Lower: decimal.Zero, Upper: decimal.NewFromInt(25_000_000), AnnualPrice: decimal.NewFromInt(12_000)},
	{Name: "Middle market", Lower: decimal.NewFromInt(25_000_000), Upper: decimal.NewFromInt(50_000_000), AnnualPrice: decimal.NewFromInt(60_000)},
	{Name: "Enterprise", Lower: decimal.NewFromInt(50_000_000), Unbounded: true, AnnualPrice: decimal.NewFromInt(100_000)},
}

// DetermineTierAndPrice resuelve el tier de pricing y el precio anual a
// partir del ARR. Para entrada negativa o malformada (fuera de la partición
// [0, ∞)) se asume defensivamente la última fila (Enterprise).
func DetermineTierAndPrice(annualRevenue decimal.Decimal) (string, decimal.Decimal) {
	for _, t := range tiers {
		if annualRevenue.GreaterThanOrEqual(t.Lower) && (t.Unbounded || annualRevenue.LessThan(t.Upper)) {
			return t.Name, t.AnnualPrice
		}
	}
	last := tiers[len(tiers)-1]
	return last.Name, last.AnnualPrice
}

// Tiers devuelve una copia de la tabla de pricing, en orden ascendente.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}
