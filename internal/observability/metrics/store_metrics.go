package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const (
	StoreInventory = "inventory"
	StoreBill      = "bill"
)

const (
	OpAddItem      = "add_item"
	OpUpdateItem   = "update_item"
	OpDeleteItem   = "delete_item"
	OpListAll      = "list_all"
	OpGenerateBill = "generate_bill"
	OpListRecent   = "list_recent"
	OpGetBill      = "get_bill"
	OpQuote        = "quote"
)

const (
	ErrorReasonNotFound   = "not_found"
	ErrorReasonValidation = "validation"
	ErrorReasonCanceled   = "canceled"
	ErrorReasonStorage    = "storage"
)

// StoreMetrics tracks store operations, their failures and the value of generated bills.
type StoreMetrics struct {
	operations  *prometheus.CounterVec
	errors      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	billsAmount prometheus.Counter
	billLines   prometheus.Counter
}

func NewStoreMetrics(registerer prometheus.Registerer, cfg Config) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	labels := cfg.constLabels()

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "stockroom_store_operations_total",
		Help:        "Store operations by store and operation.",
		ConstLabels: labels,
	}, []string{"store", "operation"})
	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "stockroom_store_errors_total",
		Help:        "Store operation failures by low-cardinality reason.",
		ConstLabels: labels,
	}, []string{"store", "operation", "reason"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "stockroom_store_operation_duration_seconds",
		Help:        "Store operation latency.",
		Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		ConstLabels: labels,
	}, []string{"store", "operation"})
	billsAmount := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "stockroom_bills_amount_total",
		Help:        "Sum of total_amount over generated bills.",
		ConstLabels: labels,
	})
	billLines := prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "stockroom_bill_lines_total",
		Help:        "Line items written on generated bills.",
		ConstLabels: labels,
	})

	registerer.MustRegister(operations, errs, duration, billsAmount, billLines)

	return &StoreMetrics{
		operations:  operations,
		errors:      errs,
		duration:    duration,
		billsAmount: billsAmount,
		billLines:   billLines,
	}
}

// Observe records the outcome of one store operation.
func (m *StoreMetrics) Observe(store, operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(store, operation).Inc()
	m.duration.WithLabelValues(store, operation).Observe(elapsed.Seconds())
	if err != nil {
		m.errors.WithLabelValues(store, operation, ClassifyStoreError(err)).Inc()
	}
}

// RecordBill adds a generated bill to the running totals.
func (m *StoreMetrics) RecordBill(amount float64, lines int) {
	if m == nil {
		return
	}
	if amount > 0 {
		m.billsAmount.Add(amount)
	}
	if lines > 0 {
		m.billLines.Add(float64(lines))
	}
}

// ValidationError marks errors that describe bad input rather than a storage fault.
type ValidationError interface {
	error
	Validation() bool
}

// NotFoundError marks errors raised for missing records.
type NotFoundError interface {
	error
	NotFound() bool
}

// ClassifyStoreError maps an error to a bounded reason label.
func ClassifyStoreError(err error) string {
	if err == nil {
		return ""
	}
	var notFound NotFoundError
	if errors.Is(err, gorm.ErrRecordNotFound) || (errors.As(err, &notFound) && notFound.NotFound()) {
		return ErrorReasonNotFound
	}
	var validation ValidationError
	if errors.As(err, &validation) && validation.Validation() {
		return ErrorReasonValidation
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrorReasonCanceled
	}
	return ErrorReasonStorage
}
