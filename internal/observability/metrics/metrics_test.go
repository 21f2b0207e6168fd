package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smallbiznis/stockroom/pkg/apperr"
	"gorm.io/gorm"
)

func TestClassifyStoreError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "record_not_found", err: gorm.ErrRecordNotFound, want: ErrorReasonNotFound},
		{name: "domain_not_found", err: fmt.Errorf("update item: %w", apperr.NotFound("not_found")), want: ErrorReasonNotFound},
		{name: "validation", err: apperr.Validation("invalid_lines"), want: ErrorReasonValidation},
		{name: "canceled", err: context.Canceled, want: ErrorReasonCanceled},
		{name: "storage", err: errors.New("database is locked"), want: ErrorReasonStorage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyStoreError(tc.err); got != tc.want {
				t.Fatalf("expected reason %q, got %q", tc.want, got)
			}
		})
	}
}

func TestStoreMetricsObserve(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewStoreMetrics(registry, Config{ServiceName: "stockroom", Environment: "test"})

	m.Observe(StoreInventory, OpAddItem, time.Millisecond, nil)
	m.Observe(StoreInventory, OpAddItem, time.Millisecond, nil)
	m.Observe(StoreInventory, OpDeleteItem, time.Millisecond, apperr.NotFound("not_found"))
	m.RecordBill(6, 1)
	m.RecordBill(4.5, 2)

	if got := testutil.ToFloat64(m.operations.WithLabelValues(StoreInventory, OpAddItem)); got != 2 {
		t.Fatalf("expected 2 add operations, got %v", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues(StoreInventory, OpDeleteItem, ErrorReasonNotFound)); got != 1 {
		t.Fatalf("expected 1 not_found error, got %v", got)
	}
	if got := testutil.ToFloat64(m.billsAmount); got != 10.5 {
		t.Fatalf("expected bills amount 10.5, got %v", got)
	}
	if got := testutil.ToFloat64(m.billLines); got != 3 {
		t.Fatalf("expected 3 bill lines, got %v", got)
	}
}

func TestNilStoreMetricsIsSafe(t *testing.T) {
	var m *StoreMetrics
	m.Observe(StoreBill, OpGenerateBill, time.Millisecond, errors.New("boom"))
	m.RecordBill(1, 1)
}

func TestGinMiddlewareUsesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registry := prometheus.NewRegistry()
	m := NewHTTPMetrics(registry, Config{})

	r := gin.New()
	r.Use(GinMiddleware(m))
	r.GET("/api/bills/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/api/bills/1", "/api/bills/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("/api/bills/:id", http.MethodGet, "404")); got != 2 {
		t.Fatalf("expected 2 requests on the templated route, got %v", got)
	}
}
