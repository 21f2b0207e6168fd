package db

import (
	"context"
	"fmt"

	obslogger "github.com/smallbiznis/stockroom/internal/observability/logger"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormprometheus "gorm.io/plugin/prometheus"
)

var Module = fx.Module("db",
	fx.Provide(NewConfig),
	fx.Provide(Open),
)

// Open connects to the configured database and closes it when the app stops.
func Open(lc fx.Lifecycle, cfg Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	loc, err := LoadStorageLocation(cfg.TimeZone)
	if err != nil {
		return nil, err
	}
	SetStorageLocation(loc)
	log.Info("database timestamps", zap.String("time_zone", loc.String()))

	conn, err := OpenWith(dialector, cfg, log)
	if err != nil {
		return nil, err
	}

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := conn.DB()
				if err != nil {
					return err
				}
				log.Info("closing database")
				return sqlDB.Close()
			},
		})
	}
	return conn, nil
}

// OpenWith opens a connection through the given dialector and applies pool settings and plugins.
func OpenWith(dialector gorm.Dialector, cfg Config, log *zap.Logger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: obslogger.NewGormLogger(log, obslogger.DefaultGormLoggerConfig(cfg.LogQueries)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.SingleConnection() {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		if cfg.MaxOpenConn > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
		}
		if cfg.MaxIdleConn > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
		}
	}

	if cfg.Metrics {
		name := cfg.Name
		if cfg.SingleConnection() {
			name = cfg.Path
		}
		if err := conn.Use(gormprometheus.New(gormprometheus.Config{
			DBName:          name,
			RefreshInterval: 15,
		})); err != nil {
			return nil, fmt.Errorf("register db metrics: %w", err)
		}
	}
	if cfg.Tracing {
		if err := conn.Use(otelgorm.NewPlugin(otelgorm.WithoutQueryVariables())); err != nil {
			return nil, fmt.Errorf("register db tracing: %w", err)
		}
	}

	log.Info("database connected",
		zap.String("dialect", dialector.Name()),
		zap.Bool("single_connection", cfg.SingleConnection()),
	)
	return conn, nil
}
