package config

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/daylit/roi-engine/internal/domain/entity"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env/config.env). Las env vars tienen prioridad.
type Config struct {
	App AppConfig
	Log LogConfig
	ROI ROIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// ROIConfig overrides de los supuestos del modelo de ROI. Cada campo tiene
// el default del modelo; cualquiera puede sobrescribirse por env var.
type ROIConfig struct {
	CostOfCapitalAnnualPct      decimal.Decimal // ROI_COST_OF_CAPITAL_PCT
	DSOReductionRelativePct     decimal.Decimal // ROI_DSO_REDUCTION_PCT
	BadDebtReductionRelativePct decimal.Decimal // ROI_BAD_DEBT_REDUCTION_PCT
	ProductivityTimeSavedPct    decimal.Decimal // ROI_TIME_SAVED_PCT
	HoursPerFTEPerYear          int             // ROI_HOURS_PER_FTE
	WorkingDaysPerYear          int             // ROI_WORKING_DAYS
	PercentageOfTimeOnInvoices  decimal.Decimal // ROI_TIME_ON_INVOICES_PCT
}

// Assumptions materializa el registro de supuestos del dominio.
func (c ROIConfig) Assumptions() entity.Assumptions {
	return entity.Assumptions{
		CostOfCapitalAnnualPct:      c.CostOfCapitalAnnualPct,
		DSOReductionRelativePct:     c.DSOReductionRelativePct,
		BadDebtReductionRelativePct: c.BadDebtReductionRelativePct,
		ProductivityTimeSavedPct:    c.ProductivityTimeSavedPct,
		HoursPerFTEPerYear:          c.HoursPerFTEPerYear,
		WorkingDaysPerYear:          c.WorkingDaysPerYear,
		PercentageOfTimeOnInvoices:  c.PercentageOfTimeOnInvoices,
	}
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// archivo). Nombres esperados: APP_ENV, LOG_LEVEL, ROI_WORKING_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := entity.DefaultAssumptions()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "daylit-roi"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		ROI: ROIConfig{
			CostOfCapitalAnnualPct:      getDecimal(v, "ROI_COST_OF_CAPITAL_PCT", defaults.CostOfCapitalAnnualPct),
			DSOReductionRelativePct:     getDecimal(v, "ROI_DSO_REDUCTION_PCT", defaults.DSOReductionRelativePct),
			BadDebtReductionRelativePct: getDecimal(v, "ROI_BAD_DEBT_REDUCTION_PCT", defaults.BadDebtReductionRelativePct),
			ProductivityTimeSavedPct:    getDecimal(v, "ROI_TIME_SAVED_PCT", defaults.ProductivityTimeSavedPct),
			HoursPerFTEPerYear:          getInt(v, "ROI_HOURS_PER_FTE", defaults.HoursPerFTEPerYear),
			WorkingDaysPerYear:          getInt(v, "ROI_WORKING_DAYS", defaults.WorkingDaysPerYear),
			PercentageOfTimeOnInvoices:  getDecimal(v, "ROI_TIME_ON_INVOICES_PCT", defaults.PercentageOfTimeOnInvoices),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDecimal parsea el valor como decimal exacto; ante valor ilegible
// conserva el default del modelo.
func getDecimal(v *viper.Viper, key string, def decimal.Decimal) decimal.Decimal {
	if v.IsSet(key) {
		if d, err := decimal.NewFromString(v.GetString(key)); err == nil {
			return d
		}
	}
	return def
}
