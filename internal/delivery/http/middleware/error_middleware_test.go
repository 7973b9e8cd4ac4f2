package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"venuealert/internal/delivery/http/response"
	domainerrors "venuealert/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/geofences", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		rec, body := handle(t, domainerrors.ErrGeofenceNotFound.WithDetails("g1"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, "GEOFENCE_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "g1", body.Error.Details)
	})

	t.Run("persistence error", func(t *testing.T) {
		rec, body := handle(t, domainerrors.NewPersistenceError(io.ErrUnexpectedEOF, "set geofences"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "PERSISTENCE_FAILED", body.Error.Code)
	})

	t.Run("echo error", func(t *testing.T) {
		rec, body := handle(t, echo.ErrTooManyRequests)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		rec, body := handle(t, io.EOF)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	})
}
