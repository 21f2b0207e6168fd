package repository

import (
	"context"

	"github.com/smallbiznis/stockroom/internal/bill/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, bill *domain.Bill, lines []domain.Line) error {
	if err := db.WithContext(ctx).Create(bill).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].BillID = bill.ID
	}
	return db.WithContext(ctx).Create(&lines).Error
}

func (r *repo) ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := db.WithContext(ctx).
		Model(&domain.Bill{}).
		Order("date_generated desc, bill_id desc").
		Limit(limit).
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Bill, error) {
	var bills []domain.Bill
	err := db.WithContext(ctx).
		Model(&domain.Bill{}).
		Where("bill_id = ?", id).
		Limit(1).
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, nil
	}
	return &bills[0], nil
}

func (r *repo) ListLines(ctx context.Context, db *gorm.DB, billIDs []int64) (map[int64][]domain.Line, error) {
	grouped := make(map[int64][]domain.Line, len(billIDs))
	if len(billIDs) == 0 {
		return grouped, nil
	}

	var lines []domain.Line
	err := db.WithContext(ctx).
		Model(&domain.Line{}).
		Where("bill_id IN ?", billIDs).
		Order("bill_id asc, position asc").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		grouped[line.BillID] = append(grouped[line.BillID], line)
	}
	return grouped, nil
}
