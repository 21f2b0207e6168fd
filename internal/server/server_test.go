package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	billdomain "github.com/smallbiznis/stockroom/internal/bill/domain"
	"github.com/smallbiznis/stockroom/internal/config"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/smallbiznis/stockroom/internal/observability"
	obsmetrics "github.com/smallbiznis/stockroom/internal/observability/metrics"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) AddItem(ctx context.Context, req inventorydomain.ItemRequest) (inventorydomain.Item, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(inventorydomain.Item), args.Error(1)
}

func (m *mockInventoryService) UpdateItem(ctx context.Context, req inventorydomain.UpdateItemRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockInventoryService) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockInventoryService) ListAll(ctx context.Context) ([]inventorydomain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventorydomain.Item), args.Error(1)
}

func (m *mockInventoryService) FindByName(ctx context.Context, name string) (inventorydomain.Item, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(inventorydomain.Item), args.Error(1)
}

type mockBillService struct {
	mock.Mock
}

func (m *mockBillService) GenerateBill(ctx context.Context, req billdomain.GenerateBillRequest) (billdomain.Bill, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(billdomain.Bill), args.Error(1)
}

func (m *mockBillService) ListRecent(ctx context.Context, limit int) ([]billdomain.Bill, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billdomain.Bill), args.Error(1)
}

func (m *mockBillService) GetBill(ctx context.Context, id int64) (billdomain.Bill, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(billdomain.Bill), args.Error(1)
}

func (m *mockBillService) Quote(ctx context.Context, req billdomain.QuoteRequest) (billdomain.Quote, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(billdomain.Quote), args.Error(1)
}

func (m *mockBillService) Checkout(ctx context.Context, req billdomain.CheckoutRequest) (billdomain.Bill, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(billdomain.Bill), args.Error(1)
}

func (m *mockBillService) RenderPDF(ctx context.Context, id int64) (billdomain.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(billdomain.Document), args.Error(1)
}

func newTestServer(t *testing.T, inventory *mockInventoryService, bills *mockBillService) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zaptest.NewLogger(t)
	obsCfg := observability.Config{ServiceName: "stockroom", Environment: "test"}
	engine := NewEngine(obsCfg, log, obsmetrics.NewHTTPMetrics(prometheus.NewRegistry(), obsmetrics.Config{}))

	return NewServer(ServerParams{
		Gin:          engine,
		Cfg:          config.Config{Environment: "test"},
		Log:          log,
		InventorySvc: inventory,
		BillSvc:      bills,
	})
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
