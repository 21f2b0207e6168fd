package repository

import (
	"context"

	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, item *domain.Item) (int64, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE inventory
		 SET item = ?, description = ?, brand = ?, quantity = ?, rate = ?, total = ?, type = ?, added_by = ?
		 WHERE id = ?`,
		item.Item,
		item.Description,
		item.Brand,
		item.Quantity,
		item.Rate,
		item.Total,
		item.Type,
		item.AddedBy,
		item.ID,
	)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Exec(`DELETE FROM inventory WHERE id = ?`, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Item, error) {
	var items []domain.Item
	err := db.WithContext(ctx).
		Model(&domain.Item{}).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindFirstByName(ctx context.Context, db *gorm.DB, name string) (*domain.Item, error) {
	var items []domain.Item
	err := db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("item = ?", name).
		Order("id asc").
		Limit(1).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
