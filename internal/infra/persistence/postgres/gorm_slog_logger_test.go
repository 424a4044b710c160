package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"tracker/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T, cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 10 * time.Millisecond}}
	l, buf := newTestGormLogger(t, cfg)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "[Postgres] Slow query")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newTestGormLogger(t, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_QueryError(t *testing.T) {
	l, buf := newTestGormLogger(t, nil)

	l.Trace(context.Background(), time.Now(), sqlFn, assertErr("boom"))

	assert.Contains(t, buf.String(), "[Postgres] Query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newTestGormLogger(t, cfg)

	l.Trace(context.Background(), time.Now(), sqlFn, nil)

	assert.Contains(t, buf.String(), "[Postgres] Query")
}
