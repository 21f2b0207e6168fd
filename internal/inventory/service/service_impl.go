package service

import (
	"context"
	"fmt"
	"time"

	"github.com/smallbiznis/stockroom/internal/clock"
	"github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/observability/logger"
	"github.com/smallbiznis/stockroom/internal/observability/metrics"
	"github.com/smallbiznis/stockroom/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *metrics.StoreMetrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.StoreMetrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("inventory.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) AddItem(ctx context.Context, req domain.ItemRequest) (item domain.Item, err error) {
	defer s.observe(metrics.OpAddItem, time.Now(), &err)

	item = buildItem(req)
	item.DateAdded = db.NewDateTime(s.clock.Now())

	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return domain.Item{}, fmt.Errorf("insert inventory item: %w", err)
	}

	logger.WithContext(ctx, s.log).Info("inventory item added",
		zap.Int64("item_id", item.ID),
		zap.Int64("quantity", item.Quantity),
	)
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, req domain.UpdateItemRequest) (err error) {
	defer s.observe(metrics.OpUpdateItem, time.Now(), &err)

	if req.ID <= 0 {
		return domain.ErrInvalidID
	}

	item := buildItem(req.ItemRequest)
	item.ID = req.ID

	rows, err := s.repo.Update(ctx, s.db, &item)
	if err != nil {
		return fmt.Errorf("update inventory item %d: %w", req.ID, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	logger.WithContext(ctx, s.log).Info("inventory item updated", zap.Int64("item_id", req.ID))
	return nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) (err error) {
	defer s.observe(metrics.OpDeleteItem, time.Now(), &err)

	if id <= 0 {
		return domain.ErrInvalidID
	}

	rows, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("delete inventory item %d: %w", id, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	logger.WithContext(ctx, s.log).Info("inventory item deleted", zap.Int64("item_id", id))
	return nil
}

func (s *Service) ListAll(ctx context.Context) (items []domain.Item, err error) {
	defer s.observe(metrics.OpListAll, time.Now(), &err)

	items, err = s.repo.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *Service) FindByName(ctx context.Context, name string) (domain.Item, error) {
	item, err := s.repo.FindFirstByName(ctx, s.db, name)
	if err != nil {
		return domain.Item{}, fmt.Errorf("find inventory item %q: %w", name, err)
	}
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(metrics.StoreInventory, op, time.Since(start), *err)
}

func buildItem(req domain.ItemRequest) domain.Item {
	return domain.Item{
		Item:        req.Item,
		Description: req.Description,
		Brand:       req.Brand,
		Quantity:    req.Quantity,
		Rate:        req.Rate,
		Total:       float64(req.Quantity) * req.Rate,
		Type:        stringPtr(req.Type),
		AddedBy:     stringPtr(req.AddedBy),
	}
}

func stringPtr(value string) *string {
	return &value
}
