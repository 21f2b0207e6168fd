package migration

import (
	"context"

	billdomain "github.com/smallbiznis/stockroom/internal/bill/domain"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&inventorydomain.Item{},
		&billdomain.Bill{},
		&billdomain.Line{},
	}
}

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, log *zap.Logger) error {
		return EnsureSchema(context.Background(), conn, log.Named("migration"), Models()...)
	}),
)
