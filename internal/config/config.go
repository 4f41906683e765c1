package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	Cron       CronConfig       `mapstructure:"cron"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Stream     StreamConfig     `mapstructure:"stream"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type CronConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Recompute string `mapstructure:"recompute"`
}

// SimulationConfig holds the terminal parameters that are deployment
// concerns rather than per-scenario inputs. Everything here can also be
// overridden per run through the API.
type SimulationConfig struct {
	StartYear               int     `mapstructure:"start_year"`
	Lifecycle               int     `mapstructure:"lifecycle"`
	OperationalHours        float64 `mapstructure:"operational_hours"`
	AllowableBerthOccupancy float64 `mapstructure:"allowable_berth_occupancy"`
	TranshipmentRatio       float64 `mapstructure:"transhipment_ratio"`
	LadenPerc               float64 `mapstructure:"laden_perc"`
	ReeferPerc              float64 `mapstructure:"reefer_perc"`
	EmptyPerc               float64 `mapstructure:"empty_perc"`
	OOGPerc                 float64 `mapstructure:"oog_perc"`
	EnergyPrice             float64 `mapstructure:"energy_price"`
	FuelPrice               float64 `mapstructure:"fuel_price"`
	LandPrice               float64 `mapstructure:"land_price"`
	HandlingFee             float64 `mapstructure:"handling_fee"`
	StackEquipment          string  `mapstructure:"stack_equipment"`
	LadenStack              string  `mapstructure:"laden_stack"`

	Timeout time.Duration `mapstructure:"timeout"`

	Finance FinanceConfig `mapstructure:"finance"`
}

type FinanceConfig struct {
	GearingPerc  float64 `mapstructure:"gearing_perc"`
	ReturnEquity float64 `mapstructure:"return_equity"`
	ReturnDebt   float64 `mapstructure:"return_debt"`
	TaxRate      float64 `mapstructure:"tax_rate"`
	Inflation    float64 `mapstructure:"inflation"`
}

type StreamConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	BufferedEvents int           `mapstructure:"buffered_events"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.recompute", "@every 6h")

	v.SetDefault("simulation.start_year", 2020)
	v.SetDefault("simulation.lifecycle", 20)
	v.SetDefault("simulation.operational_hours", 7500)
	v.SetDefault("simulation.allowable_berth_occupancy", 0.6)
	v.SetDefault("simulation.transhipment_ratio", 0.3)
	v.SetDefault("simulation.laden_perc", 0.90)
	v.SetDefault("simulation.reefer_perc", 0.05)
	v.SetDefault("simulation.empty_perc", 0.025)
	v.SetDefault("simulation.oog_perc", 0.025)
	v.SetDefault("simulation.energy_price", 0.15)
	v.SetDefault("simulation.fuel_price", 1.0)
	v.SetDefault("simulation.land_price", 0.0)
	v.SetDefault("simulation.handling_fee", 500.0)
	v.SetDefault("simulation.stack_equipment", "rtg")
	v.SetDefault("simulation.laden_stack", "rtg")
	v.SetDefault("simulation.timeout", "60s")
	v.SetDefault("simulation.finance.gearing_perc", 60.0)
	v.SetDefault("simulation.finance.return_equity", 0.10)
	v.SetDefault("simulation.finance.return_debt", 0.30)
	v.SetDefault("simulation.finance.tax_rate", 0.28)
	v.SetDefault("simulation.finance.inflation", 0.02)

	v.SetDefault("stream.enabled", true)
	v.SetDefault("stream.write_timeout", "5s")
	v.SetDefault("stream.buffered_events", 64)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
