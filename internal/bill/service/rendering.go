package service

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/stockroom/internal/bill/domain"
	"github.com/smallbiznis/stockroom/internal/observability/logger"
	"github.com/smallbiznis/stockroom/internal/providers/pdf"
	"go.uber.org/zap"
)

func (s *Service) RenderPDF(ctx context.Context, id int64) (domain.Document, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}

	number, err := s.numbers.Format(bill.DateGenerated.Time, bill.ID)
	if err != nil {
		return domain.Document{}, fmt.Errorf("format bill number: %w", err)
	}

	reader, err := s.pdf.GenerateBill(ctx, s.renderData(bill, number))
	if err != nil {
		return domain.Document{}, fmt.Errorf("render bill %d: %w", bill.ID, err)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read bill %d pdf: %w", bill.ID, err)
	}

	logger.WithContext(ctx, s.log).Info("bill rendered",
		zap.Int64("bill_id", bill.ID),
		zap.String("bill_number", number),
		zap.Int("bytes", len(content)),
	)
	return domain.Document{
		Number:   number,
		Filename: number + ".pdf",
		Content:  content,
	}, nil
}

func (s *Service) renderData(bill domain.Bill, number string) pdf.BillData {
	lines := make([]pdf.BillLine, len(bill.Lines))
	for i, line := range bill.Lines {
		lines[i] = pdf.BillLine{
			Description: line.Item,
			Qty:         line.Quantity,
			UnitPrice:   "-",
			Amount:      "-",
		}
		if line.Rate != nil {
			rate := decimal.NewFromFloat(*line.Rate)
			lines[i].UnitPrice = rate.StringFixed(2)
			lines[i].Amount = rate.Mul(decimal.NewFromInt(line.Quantity)).StringFixed(2)
		}
	}

	return pdf.BillData{
		IssuerName:      s.cfg.IssuerName,
		IssuerAddress:   s.cfg.IssuerAddress,
		BillNumber:      number,
		IssueDate:       bill.DateGenerated.String(),
		CustomerName:    bill.CustomerName,
		CustomerAddress: bill.CustomerAddress,
		Lines:           lines,
		Total:           decimal.NewFromFloat(bill.TotalAmount).StringFixed(2),
	}
}
