package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/memoboard/memoboard-api/internal/core/domain"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

type stubProfileService struct {
	ProvisionFunc func(ctx context.Context, username string) error
	UpdateFunc    func(ctx context.Context, username string, in ports.ProfileUpdateInput) (*ports.ProfileView, error)
	AccountFunc   func(ctx context.Context, username string) (*ports.ProfileView, error)
	ViewFunc      func(ctx context.Context, username string) (*ports.ProfileView, error)
}

func (s *stubProfileService) Provision(ctx context.Context, username string) error {
	return s.ProvisionFunc(ctx, username)
}

func (s *stubProfileService) Update(ctx context.Context, username string, in ports.ProfileUpdateInput) (*ports.ProfileView, error) {
	return s.UpdateFunc(ctx, username, in)
}

func (s *stubProfileService) Account(ctx context.Context, username string) (*ports.ProfileView, error) {
	return s.AccountFunc(ctx, username)
}

func (s *stubProfileService) View(ctx context.Context, username string) (*ports.ProfileView, error) {
	return s.ViewFunc(ctx, username)
}

// multipartRequest builds a multipart form body with the given fields and an
// optional file part named "avatar".
func multipartRequest(t *testing.T, fields map[string]string, avatarName, avatarType string, avatar []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if avatar != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="avatar"; filename="`+avatarName+`"`)
		hdr.Set("Content-Type", avatarType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create avatar part: %v", err)
		}
		if _, err := part.Write(avatar); err != nil {
			t.Fatalf("write avatar: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/account/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProfileHandler_Account(t *testing.T) {
	svc := &stubProfileService{
		AccountFunc: func(_ context.Context, username string) (*ports.ProfileView, error) {
			return &ports.ProfileView{Username: username, AvatarURL: "http://x/avatars/alice.jpg", Email: "alice@example.com"}, nil
		},
	}
	h := NewProfileHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/account/", "")
	asAlice(c)
	if err := h.Account(c); err != nil {
		t.Fatalf("Account returned error: %v", err)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "alice" || resp.Email != "alice@example.com" {
		t.Fatalf("owner view must include email: %+v", resp)
	}
}

func TestProfileHandler_AccountUpdate(t *testing.T) {
	var got ports.ProfileUpdateInput
	svc := &stubProfileService{
		UpdateFunc: func(_ context.Context, username string, in ports.ProfileUpdateInput) (*ports.ProfileView, error) {
			got = in
			return &ports.ProfileView{Username: username, Bio: in.Bio}, nil
		},
	}
	h := NewProfileHandler(svc)

	img := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	c, rec := multipartRequest(t, map[string]string{
		"bio":          "Hello!",
		"phone_number": "1234567890",
		"email":        "new@example.com",
	}, "me.jpg", "image/jpeg", img)
	asAlice(c)

	if err := h.AccountUpdate(c); err != nil {
		t.Fatalf("AccountUpdate returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != accountPath {
		t.Fatalf("expected redirect to %s, got %s", accountPath, loc)
	}
	if got.Bio != "Hello!" || got.PhoneNumber != "1234567890" || got.Email != "new@example.com" {
		t.Fatalf("form fields not passed through: %+v", got)
	}
	if got.Avatar == nil {
		t.Fatalf("avatar part dropped")
	}
	data, err := io.ReadAll(got.Avatar.Content)
	if err != nil || !bytes.Equal(data, img) {
		t.Fatalf("avatar content mangled: %v", err)
	}
}

func TestProfileHandler_AccountUpdate_NoAvatar(t *testing.T) {
	svc := &stubProfileService{
		UpdateFunc: func(_ context.Context, username string, in ports.ProfileUpdateInput) (*ports.ProfileView, error) {
			if in.Avatar != nil {
				t.Fatalf("avatar should be nil when no file is submitted")
			}
			return &ports.ProfileView{Username: username}, nil
		},
	}
	h := NewProfileHandler(svc)

	c, rec := multipartRequest(t, map[string]string{"bio": "just text"}, "", "", nil)
	asAlice(c)
	if err := h.AccountUpdate(c); err != nil {
		t.Fatalf("AccountUpdate returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}

func TestProfileHandler_AccountUpdate_Validation(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := multipartRequest(t, map[string]string{"bio": strings.Repeat("b", 501)}, "", "", nil)
	asAlice(c)
	err := h.AccountUpdate(c)
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	if _, ok := fe["bio"]; !ok {
		t.Fatalf("expected error on bio, got %v", fe)
	}

	c, _ = multipartRequest(t, map[string]string{"phone_number": strings.Repeat("9", 21)}, "", "", nil)
	asAlice(c)
	err = h.AccountUpdate(c)
	fe, ok = err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	if _, ok := fe["phone_number"]; !ok {
		t.Fatalf("expected error on phone_number, got %v", fe)
	}
}

func TestProfileHandler_AccountUpdate_NonImageAvatar(t *testing.T) {
	called := false
	svc := &stubProfileService{
		UpdateFunc: func(context.Context, string, ports.ProfileUpdateInput) (*ports.ProfileView, error) {
			called = true
			return nil, nil
		},
	}
	h := NewProfileHandler(svc)

	c, _ := multipartRequest(t, map[string]string{"bio": "x"}, "notes.txt", "text/plain", []byte("plain text"))
	asAlice(c)
	err := h.AccountUpdate(c)
	fe, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	if _, ok := fe["avatar"]; !ok {
		t.Fatalf("expected error on avatar, got %v", fe)
	}
	if called {
		t.Fatalf("service must not run on an invalid avatar")
	}
}

func TestProfileHandler_Profile(t *testing.T) {
	svc := &stubProfileService{
		ViewFunc: func(_ context.Context, username string) (*ports.ProfileView, error) {
			if username != "alice" {
				return nil, domain.ErrProfileNotFound
			}
			return &ports.ProfileView{Username: "alice", AvatarURL: "http://x/avatars/alice.jpg", Bio: "hi"}, nil
		},
	}
	h := NewProfileHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/profile/alice/", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Email != "" {
		t.Fatalf("public profile must not expose email: %+v", resp)
	}

	c, _ = newTestContext(http.MethodGet, "/profile/ghost/", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost")
	if err := h.Profile(c); err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
