package main

import (
	_ "time/tzdata"

	"github.com/smallbiznis/stockroom/internal/bill"
	"github.com/smallbiznis/stockroom/internal/clock"
	"github.com/smallbiznis/stockroom/internal/config"
	"github.com/smallbiznis/stockroom/internal/inventory"
	"github.com/smallbiznis/stockroom/internal/migration"
	"github.com/smallbiznis/stockroom/internal/observability"
	"github.com/smallbiznis/stockroom/internal/providers"
	"github.com/smallbiznis/stockroom/internal/server"
	"github.com/smallbiznis/stockroom/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		clock.Module,
		db.Module,
		migration.Module,
		providers.Module,

		// Stores
		inventory.Module,
		bill.Module,

		server.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
	app.Run()
}
