package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"venuealert/config"
	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/entity"
	"venuealert/internal/domain/repository"
	"venuealert/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// syncBuffer lets tests read log output written from other goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func bufferedLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Geofencing.CooldownWindow = 5 * time.Minute
	cfg.Geofencing.EventRetryInterval = 10 * time.Millisecond
	cfg.Geofencing.EventRetryTimeout = 60 * time.Millisecond

	return cfg
}

// brokenStore fails every write.
type brokenStore struct {
	*memory.Store
}

func (s brokenStore) Set(context.Context, string, string) error {
	return io.ErrUnexpectedEOF
}

// unreadableOnceStore fails the first read of the geofence key, then behaves normally.
type unreadableOnceStore struct {
	*memory.Store
	failed atomic.Bool
}

func (s *unreadableOnceStore) Get(ctx context.Context, key string) (string, error) {
	if key == constants.KeyGeofences && s.failed.CompareAndSwap(false, true) {
		return "", io.ErrUnexpectedEOF
	}

	return s.Store.Get(ctx, key)
}

func seedGeofence(t *testing.T, repo repository.GeofenceRepository, geofence *entity.Geofence) {
	t.Helper()

	_, err := repo.Upsert(context.Background(), geofence)
	require.NoError(t, err)
}

func cafeGeofence() *entity.Geofence {
	return &entity.Geofence{ID: "g1", Name: "Cafe", Latitude: 40.7128, Longitude: -74.0060, Radius: 150, VenueID: "v1"}
}

func bakeryGeofence() *entity.Geofence {
	return &entity.Geofence{ID: "g2", Name: "Bakery", Latitude: 40.7306, Longitude: -73.9866, Radius: 300, VenueID: "v2"}
}

func museumGeofence() *entity.Geofence {
	return &entity.Geofence{ID: "g3", Name: "Museum", Latitude: 40.7794, Longitude: -73.9632, Radius: 200, VenueID: "v3"}
}
