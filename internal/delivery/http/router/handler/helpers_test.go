package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverymiddleware "jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// newTestEcho builds an echo instance with the same validator and error
// handler the real server uses, so tests observe the exact boundary payloads.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// doJSON runs a handler through the error handler and returns the recorder.
func doJSON(t *testing.T, e *echo.Echo, method, target, body string, h echo.HandlerFunc, setup func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
