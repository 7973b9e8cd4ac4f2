// Package handler serves the geo worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"venuealert/config"
	deliverycontext "venuealert/internal/delivery/context"
	"venuealert/internal/domain/constants"
	"venuealert/internal/domain/entity"
	"venuealert/internal/infra/pubsub"
	"venuealert/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier validates a push request's OIDC token for the given audience
type tokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// RegionEventHandler decodes pushed region events and hands them to the region event usecase
type RegionEventHandler struct {
	verifyPushAuth bool
	verify         tokenVerifier
	logger         *slog.Logger
	regionEventUC  usecase.RegionEventUsecase
}

// RegionEventHandlerParams holds dependencies for the RegionEventHandler
type RegionEventHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	RegionEventUC usecase.RegionEventUsecase
}

// NewRegionEventHandler creates a new Pub/Sub push handler
func NewRegionEventHandler(params RegionEventHandlerParams) *RegionEventHandler {
	// Only Google push subscriptions carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &RegionEventHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         idtoken.Validate,
		logger:         params.Logger,
		regionEventUC:  params.RegionEventUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Every decoded event is acknowledged with 200. The usecase logs its own failures.
func (h *RegionEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeRegionEvent()
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to decode region event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &envelope, event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)

	reqLogger.InfoContext(ctx, "[Worker] Processing region event",
		slog.String("event_id", event.EventID),
		slog.String("region_id", event.RegionID),
		slog.String("type", string(event.Type)),
	)

	h.regionEventUC.HandleRegionEvent(ctx, event)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the X-Request-Id header
func (h *RegionEventHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *entity.RegionEvent) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *RegionEventHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.verify(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
