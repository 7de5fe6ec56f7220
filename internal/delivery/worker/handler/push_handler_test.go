package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *JobAlertHandler {
	return &JobAlertHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func pushBody(t *testing.T, event *service.JobAlertEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.JobID
	msg.Message.Attributes = map[string]string{"request_id": "req-123"}
	msg.Subscription = "projects/local/subscriptions/job-alert-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *JobAlertHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	return rec
}

func TestJobAlertHandler_HandlePush_Success(t *testing.T) {
	event := &service.JobAlertEvent{
		JobID:            "6b8f0c1e-0000-0000-0000-000000000000",
		Title:            "Senior Go Engineer",
		CompanyName:      "Acme",
		Location:         "Berlin",
		PostedBy:         "owner@example.com",
		SubscriberEmails: []string{"a@example.com", "b@example.com"},
	}

	rec := doPush(t, newTestHandler(), pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobAlertHandler_HandlePush_NoSubscribers(t *testing.T) {
	event := &service.JobAlertEvent{
		JobID:       "6b8f0c1e-0000-0000-0000-000000000001",
		Title:       "Backend Engineer",
		CompanyName: "Acme",
	}

	rec := doPush(t, newTestHandler(), pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobAlertHandler_HandlePush_BadBase64(t *testing.T) {
	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m1"},"subscription":"s"}`

	rec := doPush(t, newTestHandler(), body)

	// Malformed payloads are acknowledged as 400; redelivery cannot fix them.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobAlertHandler_HandlePush_BadEventJSON(t *testing.T) {
	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	body := `{"message":{"data":"` + notJSON + `","messageId":"m1"},"subscription":"s"}`

	rec := doPush(t, newTestHandler(), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFormatAlert(t *testing.T) {
	subject, body := formatAlert(&service.JobAlertEvent{
		Title:       "Senior Go Engineer",
		CompanyName: "Acme",
		Location:    "Berlin",
	})

	assert.Equal(t, "New job posted: Senior Go Engineer at Acme", subject)
	assert.Equal(t, "Acme is hiring for Senior Go Engineer in Berlin", body)
}
