package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	billdomain "github.com/smallbiznis/stockroom/internal/bill/domain"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{name: "inventory not found", err: inventorydomain.ErrNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "bill not found", err: billdomain.ErrNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "record not found", err: gorm.ErrRecordNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "wrapped lines mismatch", err: fmt.Errorf("%w: 2 items, 1 quantities", billdomain.ErrInvalidLines), status: http.StatusBadRequest, kind: "validation_error"},
		{name: "invalid id", err: inventorydomain.ErrInvalidID, status: http.StatusBadRequest, kind: "validation_error"},
		{name: "invalid request", err: ErrInvalidRequest, status: http.StatusBadRequest, kind: "validation_error"},
		{name: "unavailable", err: ErrServiceUnavailable, status: http.StatusServiceUnavailable, kind: "service_unavailable"},
		{name: "storage", err: errors.New("database is locked"), status: http.StatusInternalServerError, kind: "internal_error"},
		{name: "nil", err: nil, status: http.StatusInternalServerError, kind: "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := mapError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.kind, payload.Type)
		})
	}
}

func TestMapErrorKeepsValidationDetail(t *testing.T) {
	_, payload := mapError(fmt.Errorf("%w: 2 items, 1 quantities", billdomain.ErrInvalidLines))
	assert.Equal(t, []ValidationError{{Field: "lines", Code: "invalid_lines", Message: "2 items, 1 quantities"}}, payload.Errors)

	_, payload = mapError(inventorydomain.ErrInvalidID)
	assert.Equal(t, []ValidationError{{Field: "id", Code: "invalid_id", Message: "invalid value"}}, payload.Errors)
}

func TestClassifyErrorForLog(t *testing.T) {
	kind, code := classifyErrorForLog(billdomain.ErrInvalidLines)
	assert.Equal(t, "validation_error", kind)
	assert.Equal(t, "invalid_lines", code)

	kind, code = classifyErrorForLog(errors.New("boom"))
	assert.Equal(t, "internal_error", kind)
	assert.Equal(t, "internal_error", code)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	srv := newTestServer(t, &mockInventoryService{}, &mockBillService{})

	rec := doRequest(t, srv, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &mockInventoryService{}, &mockBillService{})

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
