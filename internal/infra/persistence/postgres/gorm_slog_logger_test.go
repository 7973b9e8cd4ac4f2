package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"venuealert/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedLogger(debug bool) (*bytes.Buffer, *gormSlogLogger) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg).(*gormSlogLogger)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is not logged", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now(), query, assert.AnError)
		assert.Contains(t, buf.String(), "KV query failed")
		assert.Contains(t, buf.String(), "component=kvstore.postgres")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
		assert.Contains(t, buf.String(), "KV slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now(), query, nil)
		assert.Empty(t, buf.String())

		buf, l = newBufferedLogger(true)
		l.Trace(context.Background(), time.Now(), query, nil)
		assert.Contains(t, buf.String(), "KV query")
	})

	t.Run("long statements are truncated", func(t *testing.T) {
		buf, l := newBufferedLogger(true)
		long := func() (string, int64) { return strings.Repeat("x", 2*maxLoggedSQLLength), 1 }
		l.Trace(context.Background(), time.Now(), long, nil)
		assert.Contains(t, buf.String(), "...")
		assert.NotContains(t, buf.String(), strings.Repeat("x", maxLoggedSQLLength+1))
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `geofence\_cooldown:`, escapeLike("geofence_cooldown:"))
	assert.Equal(t, `100\%\\`, escapeLike(`100%\`))
}
