package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	// Update overwrites the mutable fields and reports how many rows matched.
	Update(ctx context.Context, db *gorm.DB, item *Item) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]Item, error)
	FindFirstByName(ctx context.Context, db *gorm.DB, name string) (*Item, error)
}
