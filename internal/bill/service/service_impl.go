package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/stockroom/internal/bill/domain"
	"github.com/smallbiznis/stockroom/internal/bill/format"
	"github.com/smallbiznis/stockroom/internal/clock"
	"github.com/smallbiznis/stockroom/internal/config"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/observability/logger"
	"github.com/smallbiznis/stockroom/internal/observability/metrics"
	"github.com/smallbiznis/stockroom/internal/providers/pdf"
	"github.com/smallbiznis/stockroom/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultRecentLimit = 10

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Config    config.Config
	Repo      domain.Repository
	Inventory inventorydomain.Service
	PDF       pdf.Provider
	Numbers   *format.Template
	Metrics   *metrics.StoreMetrics `optional:"true"`
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	cfg       config.BillConfig
	repo      domain.Repository
	inventory inventorydomain.Service
	pdf       pdf.Provider
	numbers   *format.Template
	metrics   *metrics.StoreMetrics
}

// NewNumberTemplate parses the configured bill number layout at startup.
func NewNumberTemplate(cfg config.Config) (*format.Template, error) {
	source := cfg.Bill.NumberTemplate
	if source == "" {
		source = format.DefaultBillNumberTemplate
	}
	tpl, err := format.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("bill number template: %w", err)
	}
	return tpl, nil
}

func New(p Params) domain.Service {
	numbers := p.Numbers
	if numbers == nil {
		numbers = format.MustParse(format.DefaultBillNumberTemplate)
	}

	return &Service{
		db:        p.DB,
		log:       p.Log.Named("bill.service"),
		clock:     p.Clock,
		cfg:       p.Config.Bill,
		repo:      p.Repo,
		inventory: p.Inventory,
		pdf:       p.PDF,
		numbers:   numbers,
		metrics:   p.Metrics,
	}
}

func (s *Service) GenerateBill(ctx context.Context, req domain.GenerateBillRequest) (bill domain.Bill, err error) {
	defer s.observe(metrics.OpGenerateBill, time.Now(), &err)

	if len(req.Items) != len(req.Quantities) {
		return domain.Bill{}, fmt.Errorf("%w: %d items, %d quantities", domain.ErrInvalidLines, len(req.Items), len(req.Quantities))
	}
	if len(req.Rates) > 0 && len(req.Rates) != len(req.Items) {
		return domain.Bill{}, fmt.Errorf("%w: %d items, %d rates", domain.ErrInvalidRates, len(req.Items), len(req.Rates))
	}

	items := append([]string{}, req.Items...)
	quantities := append([]int64{}, req.Quantities...)

	bill = domain.Bill{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		ItemsText:       domain.JoinItems(items),
		QuantitiesText:  domain.JoinQuantities(quantities),
		TotalAmount:     req.TotalAmount,
		DateGenerated:   db.NewDateTime(s.clock.Now()),
	}

	lines := make([]domain.Line, len(items))
	for i := range items {
		lines[i] = domain.Line{Position: i, Item: items[i], Quantity: quantities[i]}
		if len(req.Rates) > 0 {
			rate := req.Rates[i]
			lines[i].Rate = &rate
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, &bill, lines)
	})
	if err != nil {
		return domain.Bill{}, fmt.Errorf("insert bill: %w", err)
	}

	bill.Items = items
	bill.Quantities = quantities
	bill.Lines = lines

	s.metrics.RecordBill(bill.TotalAmount, len(lines))
	logger.WithContext(ctx, s.log).Info("bill generated",
		zap.Int64("bill_id", bill.ID),
		zap.Int("lines", len(lines)),
		zap.Float64("total_amount", bill.TotalAmount),
	)
	return bill, nil
}

func (s *Service) ListRecent(ctx context.Context, limit int) (bills []domain.Bill, err error) {
	defer s.observe(metrics.OpListRecent, time.Now(), &err)

	limit = s.recentLimit(limit)
	bills, err = s.repo.ListRecent(ctx, s.db, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent bills: %w", err)
	}
	if bills == nil {
		bills = []domain.Bill{}
	}
	if err := s.attachLines(ctx, bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (s *Service) GetBill(ctx context.Context, id int64) (bill domain.Bill, err error) {
	defer s.observe(metrics.OpGetBill, time.Now(), &err)

	if id <= 0 {
		return domain.Bill{}, domain.ErrInvalidID
	}

	found, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("find bill %d: %w", id, err)
	}
	if found == nil {
		return domain.Bill{}, domain.ErrNotFound
	}

	bills := []domain.Bill{*found}
	if err := s.attachLines(ctx, bills); err != nil {
		return domain.Bill{}, err
	}
	return bills[0], nil
}

func (s *Service) Quote(ctx context.Context, req domain.QuoteRequest) (quote domain.Quote, err error) {
	defer s.observe(metrics.OpQuote, time.Now(), &err)

	rates := make(map[string]decimal.Decimal, len(req.Lines))
	total := decimal.Zero
	lines := make([]domain.QuotedLine, 0, len(req.Lines))

	for _, line := range req.Lines {
		rate, ok := rates[line.Item]
		if !ok {
			item, err := s.inventory.FindByName(ctx, line.Item)
			if errors.Is(err, inventorydomain.ErrNotFound) {
				return domain.Quote{}, fmt.Errorf("%w: %q", domain.ErrUnknownItem, line.Item)
			}
			if err != nil {
				return domain.Quote{}, err
			}
			rate = decimal.NewFromFloat(item.Rate)
			rates[line.Item] = rate
		}

		amount := rate.Mul(decimal.NewFromInt(line.Quantity))
		total = total.Add(amount)
		lines = append(lines, domain.QuotedLine{
			Item:     line.Item,
			Quantity: line.Quantity,
			Rate:     rate.InexactFloat64(),
			Amount:   amount.InexactFloat64(),
		})
	}

	return domain.Quote{Lines: lines, Total: total.InexactFloat64()}, nil
}

func (s *Service) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.Bill, error) {
	quote, err := s.Quote(ctx, domain.QuoteRequest{Lines: req.Lines})
	if err != nil {
		return domain.Bill{}, err
	}

	items := make([]string, len(quote.Lines))
	quantities := make([]int64, len(quote.Lines))
	rates := make([]float64, len(quote.Lines))
	for i, line := range quote.Lines {
		items[i] = line.Item
		quantities[i] = line.Quantity
		rates[i] = line.Rate
	}

	return s.GenerateBill(ctx, domain.GenerateBillRequest{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Quantities:      quantities,
		TotalAmount:     quote.Total,
		Rates:           rates,
	})
}

// attachLines fills Items, Quantities and Lines from bill_lines, falling back to the
// joined text columns for bills stored without lines.
func (s *Service) attachLines(ctx context.Context, bills []domain.Bill) error {
	if len(bills) == 0 {
		return nil
	}
	ids := make([]int64, len(bills))
	for i := range bills {
		ids[i] = bills[i].ID
	}

	grouped, err := s.repo.ListLines(ctx, s.db, ids)
	if err != nil {
		return fmt.Errorf("list bill lines: %w", err)
	}

	for i := range bills {
		bill := &bills[i]
		lines, ok := grouped[bill.ID]
		if !ok {
			lines, err = domain.LinesFromText(bill.ID, bill.ItemsText, bill.QuantitiesText)
			if err != nil {
				logger.WithContext(ctx, s.log).Warn("undecodable bill lines",
					zap.Int64("bill_id", bill.ID),
					zap.Error(err),
				)
				lines = []domain.Line{}
			}
		}

		bill.Lines = lines
		bill.Items = make([]string, len(lines))
		bill.Quantities = make([]int64, len(lines))
		for j, line := range lines {
			bill.Items[j] = line.Item
			bill.Quantities[j] = line.Quantity
		}
	}
	return nil
}

func (s *Service) recentLimit(limit int) int {
	if limit <= 0 {
		limit = s.cfg.RecentLimit
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return limit
}

func (s *Service) observe(op string, start time.Time, err *error) {
	s.metrics.Observe(metrics.StoreBill, op, time.Since(start), *err)
}
