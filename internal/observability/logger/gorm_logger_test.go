package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestOperationFromSQL(t *testing.T) {
	cases := []struct {
		sql  string
		want string
	}{
		{sql: "SELECT * FROM inventory ORDER BY id ASC", want: "SELECT"},
		{sql: "  insert into bills (customer_name) values (?)", want: "INSERT"},
		{sql: "UPDATE inventory SET item = ? WHERE id = ?", want: "UPDATE"},
		{sql: "DELETE FROM inventory WHERE id = ?", want: "DELETE"},
		{sql: "ALTER TABLE inventory ADD `type` text", want: "ALTER"},
		{sql: "WITH recent AS (SELECT 1) SELECT * FROM recent", want: "SELECT"},
		{sql: "", want: "UNKNOWN"},
		{sql: "VACUUM", want: "UNKNOWN"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, operationFromSQL(tc.sql), tc.sql)
	}
}

func TestGormLoggerTraceLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewGormLogger(zap.New(core), GormLoggerConfig{
		Level:                gormlogger.Warn,
		SlowThreshold:        500 * time.Millisecond,
		IgnoreRecordNotFound: true,
	})
	query := func() (string, int64) { return "SELECT * FROM inventory", 3 }

	log.Trace(context.Background(), time.Now(), query, errors.New("disk I/O error"))
	log.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)
	log.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	log.Trace(context.Background(), time.Now(), query, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "SELECT", entries[0].ContextMap()["operation"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["rows_affected"])
}

func TestGormLoggerSilent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewGormLogger(zap.New(core), DefaultGormLoggerConfig(false)).LogMode(gormlogger.Silent)

	log.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	log.Error(context.Background(), "ignored")

	assert.Zero(t, logs.Len())
}

func TestGormLoggerParamsFilterDropsValues(t *testing.T) {
	log := NewGormLogger(nil, DefaultGormLoggerConfig(true))
	sql, params := log.ParamsFilter(context.Background(), "INSERT INTO bills VALUES (?)", "Jane Doe")
	assert.Equal(t, "INSERT INTO bills VALUES (?)", sql)
	assert.Nil(t, params)
}
