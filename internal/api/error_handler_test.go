package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.NewValidationError("email", "must be a valid email"), http.StatusBadRequest},
		{domain.ErrAlreadyDecided, http.StatusConflict},
		{domain.ErrUsernameTaken, http.StatusConflict},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrRequestNotFound, http.StatusNotFound},
		{domain.ErrContentNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		code, _ := handleError(t, tc.err)
		if code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestHTTPErrorHandler_WrappedErrorStillMaps(t *testing.T) {
	code, _ := handleError(t, fmt.Errorf("decide vip request: %w", domain.ErrAlreadyDecided))
	if code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
}

func TestHTTPErrorHandler_NotFoundDoesNotNameEntity(t *testing.T) {
	_, msg := handleError(t, domain.ErrUserNotFound)
	if msg != "not found" {
		t.Fatalf("expected generic message, got %q", msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIs500(t *testing.T) {
	code, msg := handleError(t, fmt.Errorf("pg connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	code, _ := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", code)
	}
}
