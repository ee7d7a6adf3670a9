package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memoboard/memoboard-api/internal/api/metrics"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

const accountPath = "/account/"

// ProfileHandler handles the owner's account page and the public profile page.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Account handles GET /account/ — the owner's own profile with email.
func (h *ProfileHandler) Account(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	view, err := h.service.Account(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(view))
}

// AccountUpdate handles POST /account/ — bio, phone number, email and an
// optional replacement avatar in one multipart submission. Validation is
// all-or-nothing: a single bad field re-renders the form and nothing is
// persisted.
//
// @Summary      Update own profile
// @Tags         account
// @Accept       mpfd
// @Produce      json
// @Security     SessionAuth
// @Param        bio           formData  string  false  "Bio (max 500 chars)"
// @Param        phone_number  formData  string  false  "Phone number (max 20 chars)"
// @Param        email         formData  string  false  "New email address"
// @Param        avatar        formData  file    false  "Replacement avatar image"
// @Success      302  {string}  string  "redirect back to the account page"
// @Failure      200  {object}  formErrorsResponse
// @Router       /account [post]
func (h *ProfileHandler) AccountUpdate(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	avatar, ferr := avatarUpload(c)
	if ferr != nil {
		return ferr
	}
	if avatar != nil {
		defer avatar.close()
	}

	input := ports.ProfileUpdateInput{
		Bio:         req.Bio,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if avatar != nil {
		input.Avatar = &avatar.upload
	}

	if _, err := h.service.Update(c.Request().Context(), username, input); err != nil {
		return err
	}

	metrics.ProfileUpdatesTotal.Inc()
	return c.Redirect(http.StatusFound, accountPath)
}

// Profile handles GET /profile/:username/ — public, no auth, no ownership
// check; any visitor may view.
//
// @Summary      View a public profile
// @Tags         account
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  profileResponse
// @Failure      404       {object}  errorResponse
// @Router       /profile/{username} [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	view, err := h.service.View(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(view))
}

// openedAvatar pairs the upload passed to the service with its open file.
type openedAvatar struct {
	upload ports.AvatarUpload
	close  func()
}

// avatarUpload extracts the optional "avatar" multipart file. A part that is
// present but not an image is a per-field validation error, rendered the
// same way as a too-long bio.
func avatarUpload(c echo.Context) (*openedAvatar, error) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		// no multipart body or no avatar part — the field is optional
		return nil, nil
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, FieldErrors{"avatar": "upload a valid image"}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, FieldErrors{"avatar": "upload a valid image"}
	}

	return &openedAvatar{
		upload: ports.AvatarUpload{
			Filename:    fh.Filename,
			ContentType: contentType,
			Content:     f,
		},
		close: func() { _ = f.Close() },
	}, nil
}

func toProfileResponse(v *ports.ProfileView) profileResponse {
	return profileResponse{
		Username:    v.Username,
		AvatarURL:   v.AvatarURL,
		Bio:         v.Bio,
		PhoneNumber: v.PhoneNumber,
		Email:       v.Email,
		CreatedAt:   v.CreatedAt,
	}
}
