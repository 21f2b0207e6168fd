package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Insert writes the bill row and its lines; callers run it inside a transaction.
	Insert(ctx context.Context, db *gorm.DB, bill *Bill, lines []Line) error
	ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]Bill, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Bill, error)
	// ListLines returns the stored lines grouped by bill id, ordered by position.
	ListLines(ctx context.Context, db *gorm.DB, billIDs []int64) (map[int64][]Line, error)
}
