package migration

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureSchema creates missing tables and adds any model column the persisted
// table lacks. Existing columns and rows are never altered or dropped.
func EnsureSchema(ctx context.Context, db *gorm.DB, log *zap.Logger, models ...any) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	conn := db.WithContext(ctx)
	migrator := conn.Migrator()

	for _, model := range models {
		stmt := &gorm.Statement{DB: conn}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				return fmt.Errorf("create table %s: %w", table, err)
			}
			log.Info("table created", zap.String("table", table))
			continue
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.PrimaryKey {
				continue
			}
			if migrator.HasColumn(model, field.DBName) {
				continue
			}
			if err := migrator.AddColumn(model, field.Name); err != nil {
				return fmt.Errorf("add column %s.%s: %w", table, field.DBName, err)
			}
			log.Info("column added",
				zap.String("table", table),
				zap.String("column", field.DBName),
			)
		}
	}
	return nil
}
