package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/memoboard/memoboard-api/internal/api/metrics"
	"github.com/memoboard/memoboard-api/internal/api/middleware"
	"github.com/memoboard/memoboard-api/internal/core/domain"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

const notesListPath = "/notes-list/"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpForm handles GET /sign-up/ — blank registration form values.
func (h *AuthHandler) SignUpForm(c echo.Context) error {
	return c.JSON(http.StatusOK, signUpFormResponse{Form: signUpRequest{}})
}

// SignUp registers a new account and logs it straight in.
//
// Invalid form data re-renders with field errors (200) like every other form
// on the board.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      302   {string}  string         "redirect to the notes list, session cookie set"
// @Failure      200   {object}  formErrorsResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, _, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrProvisioningFailed) {
			metrics.ProvisioningFailuresTotal.Inc()
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	setSessionCookie(c, token)
	return c.Redirect(http.StatusFound, notesListPath)
}

// LoginPrompt answers GET on the login path — the target of the
// unauthenticated redirect.
func (h *AuthHandler) LoginPrompt(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"detail": "authentication required"})
}

// Login verifies credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, loginResponse{Token: token, Username: user.Username})
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get("jti").(string)
	if jti != "" {
		if err := h.authService.Logout(c.Request().Context(), jti); err != nil {
			return err
		}
	}
	clearSessionCookie(c)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
