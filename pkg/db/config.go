package db

import "github.com/smallbiznis/stockroom/internal/config"

type Config struct {
	Type        string
	Path        string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	MaxIdleConn int
	MaxOpenConn int
	TimeZone    string

	LogQueries bool
	Metrics    bool
	Tracing    bool
}

func NewConfig(cfg config.Config) Config {
	return Config{
		Type:        cfg.DBType,
		Path:        cfg.DBPath,
		Host:        cfg.DBHost,
		Port:        cfg.DBPort,
		Name:        cfg.DBName,
		User:        cfg.DBUser,
		Password:    cfg.DBPassword,
		SSLMode:     cfg.DBSSLMode,
		MaxIdleConn: cfg.DBMaxIdleConn,
		MaxOpenConn: cfg.DBMaxOpenConn,
		TimeZone:    cfg.DBTimeZone,
		LogQueries:  cfg.LogLevel == "debug",
		Metrics:     true,
		Tracing:     cfg.OtelEnabled,
	}
}
