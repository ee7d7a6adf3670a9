package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/memoboard/memoboard-api/internal/api/handler"
	"github.com/memoboard/memoboard-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

// Field validation failures re-render the form: status 200 with the per-field
// messages, never a 4xx.
func TestHTTPErrorHandler_FieldErrors(t *testing.T) {
	rec := runErrorHandler(t, handler.FieldErrors{"title": "this field is required"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 form re-render, got %d", rec.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["title"] != "this field is required" {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"note not found", domain.ErrNoteNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"profile not found", domain.ErrProfileNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"provisioning failed", domain.ErrProvisioningFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runErrorHandler(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

// Forbidden and NotFound must never collapse into one another: a hidden note
// is "not there", a foreign note is "not yours".
func TestHTTPErrorHandler_ForbiddenDistinctFromNotFound(t *testing.T) {
	forbidden := runErrorHandler(t, domain.ErrForbidden)
	missing := runErrorHandler(t, domain.ErrNoteNotFound)
	if forbidden.Code == missing.Code {
		t.Fatalf("403 and 404 collapsed: both %d", forbidden.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec := runErrorHandler(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Fatalf("internal cause leaked to client: %q", resp.Error)
	}
}
