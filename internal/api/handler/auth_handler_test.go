package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/memoboard/memoboard-api/internal/api/middleware"
	"github.com/memoboard/memoboard-api/internal/core/domain"
)

type stubAuthService struct {
	RegisterFunc func(ctx context.Context, username, email, password string) (string, *domain.User, error)
	LoginFunc    func(ctx context.Context, username, password string) (string, *domain.User, error)
	LogoutFunc   func(ctx context.Context, jti string) error
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	return s.RegisterFunc(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.LoginFunc(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, jti string) error {
	return s.LogoutFunc(ctx, jti)
}

func sessionCookie(header http.Header) *http.Cookie {
	res := http.Response{Header: header}
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	return nil
}

func TestAuthHandler_SignUpForm(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(http.MethodGet, "/sign-up/", "")
	if err := h.SignUpForm(c); err != nil {
		t.Fatalf("SignUpForm returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp signUpFormResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Form != (signUpRequest{}) {
		t.Fatalf("expected blank form values, got %+v", resp.Form)
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	svc := &stubAuthService{
		RegisterFunc: func(_ context.Context, username, email, password string) (string, *domain.User, error) {
			if username != "alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return "signed-token", &domain.User{Username: username, Email: email}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/sign-up/", `{"username":"alice","email":"alice@example.com","password":"password123"}`)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != notesListPath {
		t.Fatalf("expected redirect to %s, got %s", notesListPath, loc)
	}

	ck := sessionCookie(rec.Header())
	if ck == nil || ck.Value != "signed-token" {
		t.Fatalf("signup must set the session cookie, got %+v", ck)
	}
}

func TestAuthHandler_SignUp_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing username", `{"email":"a@example.com","password":"password123"}`, "username"},
		{"long username", `{"username":"` + strings.Repeat("u", 151) + `","email":"a@example.com","password":"password123"}`, "username"},
		{"bad email", `{"username":"alice","email":"not-an-email","password":"password123"}`, "email"},
		{"short password", `{"username":"alice","email":"a@example.com","password":"short"}`, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/sign-up/", tc.body)
			err := h.SignUp(c)
			fe, ok := err.(FieldErrors)
			if !ok {
				t.Fatalf("expected FieldErrors, got %T: %v", err, err)
			}
			if _, ok := fe[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, fe)
			}
		})
	}
}

func TestAuthHandler_SignUp_Duplicate(t *testing.T) {
	svc := &stubAuthService{
		RegisterFunc: func(context.Context, string, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/sign-up/", `{"username":"alice","email":"alice@example.com","password":"password123"}`)
	if err := h.SignUp(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(_ context.Context, username, password string) (string, *domain.User, error) {
			return "login-token", &domain.User{Username: username}, nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/login/", `{"username":"alice","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "login-token" || resp.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if ck := sessionCookie(rec.Header()); ck == nil || ck.Value != "login-token" {
		t.Fatalf("login must set the session cookie")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		LoginFunc: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/login/", `{"username":"alice","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	revoked := ""
	svc := &stubAuthService{
		LogoutFunc: func(_ context.Context, jti string) error {
			revoked = jti
			return nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/logout/", "")
	c.Set("jti", "jti_1")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if revoked != "jti_1" {
		t.Fatalf("session not revoked, got %q", revoked)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != middleware.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", middleware.LoginPath, loc)
	}

	ck := sessionCookie(rec.Header())
	if ck == nil || ck.Value != "" || ck.MaxAge != -1 {
		t.Fatalf("logout must clear the session cookie, got %+v", ck)
	}
}
