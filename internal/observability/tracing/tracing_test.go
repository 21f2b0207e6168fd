package tracing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSafeAttributesDropsCustomerFields(t *testing.T) {
	attrs := SafeAttributes(
		attribute.String("http.route", "/api/bills"),
		attribute.String("customer_name", "Jane"),
		attribute.String("customer_address", "1 Main St"),
	)
	assert.Len(t, attrs, 1)
	assert.Equal(t, attribute.Key("http.route"), attrs[0].Key)
}

func TestSafeErrorKeepsPrefix(t *testing.T) {
	assert.Nil(t, SafeError(nil))
	assert.EqualError(t, SafeError(errors.New("insert bill: near \"Jane\": syntax error")), "insert bill")
	assert.EqualError(t, SafeError(errors.New("not_found")), "not_found")
}

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(nil, Config{ServiceName: "stockroom"}, nil)
	assert.NoError(t, err)
	assert.NotNil(t, provider)
}
