package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	LogLevel  string
	LogFormat string

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64

	DBType        string
	DBPath        string
	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSSLMode     string
	DBMaxIdleConn int
	DBMaxOpenConn int
	DBTimeZone    string

	Bill BillConfig
}

// BillConfig controls how bills are listed and rendered.
type BillConfig struct {
	RecentLimit    int
	NumberTemplate string
	IssuerName     string
	IssuerAddress  string
}

var defaults = map[string]any{
	"app_service":                 "stockroom",
	"app_version":                 "0.1.0",
	"environment":                 "development",
	"http_addr":                   ":8080",
	"log_level":                   "info",
	"log_format":                  "json",
	"otel_enabled":                false,
	"otel_exporter_otlp_endpoint": "localhost:4317",
	"otel_exporter_otlp_protocol": "grpc",
	"otel_sampling_ratio":         0.1,
	"database_type":               "sqlite",
	"database_path":               "inventory.db",
	"database_host":               "localhost",
	"database_port":               "5432",
	"database_name":               "stockroom",
	"database_user":               "stockroom",
	"database_password":           "",
	"database_sslmode":            "disable",
	"database_max_idle_conn":      2,
	"database_max_open_conn":      10,
	"database_time_zone":          "UTC",
	"bills_recent_limit":          10,
	"bill_number_template":        "BILL-{YYYY}{MM}{DD}-{SEQ6}",
	"issuer_name":                 "Stockroom",
	"issuer_address":              "",
}

// Load loads configuration from the environment, a .env file and an optional stockroom.yml.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("stockroom")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/stockroom")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("[config] ignoring unreadable config file: %v", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	return Config{
		AppName:              strings.TrimSpace(v.GetString("app_service")),
		AppVersion:           strings.TrimSpace(v.GetString("app_version")),
		Environment:          strings.ToLower(strings.TrimSpace(v.GetString("environment"))),
		HTTPAddr:             strings.TrimSpace(v.GetString("http_addr")),
		LogLevel:             strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		LogFormat:            strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		OtelEnabled:          v.GetBool("otel_enabled"),
		OtelExporterEndpoint: strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint")),
		OtelExporterProtocol: strings.ToLower(strings.TrimSpace(v.GetString("otel_exporter_otlp_protocol"))),
		OtelSamplingRatio:    v.GetFloat64("otel_sampling_ratio"),
		DBType:               strings.ToLower(strings.TrimSpace(v.GetString("database_type"))),
		DBPath:               strings.TrimSpace(v.GetString("database_path")),
		DBHost:               v.GetString("database_host"),
		DBPort:               v.GetString("database_port"),
		DBName:               v.GetString("database_name"),
		DBUser:               v.GetString("database_user"),
		DBPassword:           v.GetString("database_password"),
		DBSSLMode:            v.GetString("database_sslmode"),
		DBMaxIdleConn:        v.GetInt("database_max_idle_conn"),
		DBMaxOpenConn:        v.GetInt("database_max_open_conn"),
		DBTimeZone:           strings.TrimSpace(v.GetString("database_time_zone")),
		Bill: BillConfig{
			RecentLimit:    v.GetInt("bills_recent_limit"),
			NumberTemplate: strings.TrimSpace(v.GetString("bill_number_template")),
			IssuerName:     strings.TrimSpace(v.GetString("issuer_name")),
			IssuerAddress:  strings.TrimSpace(v.GetString("issuer_address")),
		},
	}
}

// IsProduction reports whether the service runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsSQLite reports whether the configured store is a local sqlite file.
func (c Config) IsSQLite() bool {
	return c.DBType == "sqlite"
}
