package domain

import (
	"context"

	"github.com/smallbiznis/stockroom/pkg/apperr"
)

type GenerateBillRequest struct {
	CustomerName    string
	CustomerAddress string
	Items           []string
	Quantities      []int64
	TotalAmount     float64
	// Rates is optional; when set it must line up with Items.
	Rates []float64
}

type QuoteLine struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

type QuoteRequest struct {
	Lines []QuoteLine
}

type QuotedLine struct {
	Item     string  `json:"item"`
	Quantity int64   `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

type Quote struct {
	Lines []QuotedLine `json:"lines"`
	Total float64      `json:"total"`
}

type CheckoutRequest struct {
	CustomerName    string
	CustomerAddress string
	Lines           []QuoteLine
}

// Document is a rendered bill.
type Document struct {
	Number   string
	Filename string
	Content  []byte
}

type Service interface {
	GenerateBill(context.Context, GenerateBillRequest) (Bill, error)
	ListRecent(ctx context.Context, limit int) ([]Bill, error)
	GetBill(ctx context.Context, id int64) (Bill, error)
	// Quote prices each line at the current inventory rate for its item name.
	Quote(context.Context, QuoteRequest) (Quote, error)
	// Checkout quotes the lines and generates a bill for the quoted total.
	Checkout(context.Context, CheckoutRequest) (Bill, error)
	RenderPDF(ctx context.Context, id int64) (Document, error)
}

var (
	ErrInvalidLines = apperr.Validation("invalid_lines")
	ErrInvalidRates = apperr.Validation("invalid_rates")
	ErrUnknownItem  = apperr.Validation("unknown_item")
	ErrInvalidID    = apperr.Validation("invalid_id")
	ErrNotFound     = apperr.NotFound("not_found")
)
