package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memoboard/memoboard-api/internal/api/metrics"
	"github.com/memoboard/memoboard-api/internal/core/domain"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for the shared notes board.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /notes-list/ — the whole board, visible to every
// authenticated user, ordered by owner username descending.
//
// @Summary      List all notes on the board
// @Tags         notes
// @Produce      json
// @Security     SessionAuth
// @Success      200  {object}  notesListResponse
// @Failure      302  {string}  string  "redirect to login when unauthenticated"
// @Router       /notes-list [get]
func (h *NoteHandler) List(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	notes := make([]noteResponse, 0, len(views))
	for _, v := range views {
		notes = append(notes, toNoteResponse(v))
	}
	return c.JSON(http.StatusOK, notesListResponse{Notes: notes})
}

// CreateForm handles GET /note-create/ — blank form values for display.
func (h *NoteHandler) CreateForm(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, noteFormResponse{Form: noteRequest{}})
}

// Create handles POST /note-create/.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        body  body      noteRequest  true  "Note fields"
// @Success      302   {string}  string       "redirect to the notes list"
// @Failure      200   {object}  formErrorsResponse
// @Router       /note-create [post]
func (h *NoteHandler) Create(c echo.Context) error {
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.Create(c.Request().Context(), actor, ports.NoteInput{Title: req.Title, Text: req.Text}); err != nil {
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, notesListPath)
}

// EditForm handles GET /note-edit/:id/ — current field values, owner only.
func (h *NoteHandler) EditForm(c echo.Context) error {
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetForEdit(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		countForbidden(err, "edit")
		return err
	}

	return c.JSON(http.StatusOK, noteFormResponse{Form: noteRequest{Title: view.Title, Text: view.Text}})
}

// Edit handles POST /note-edit/:id/.
//
// @Summary      Edit a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     SessionAuth
// @Param        id    path      string       true  "Note id"
// @Param        body  body      noteRequest  true  "New note fields"
// @Success      302   {string}  string       "redirect to the notes list"
// @Failure      200   {object}  formErrorsResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /note-edit/{id} [post]
func (h *NoteHandler) Edit(c echo.Context) error {
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	// existence and ownership come before field validation: an invalid body
	// on a missing or foreign note must surface 404/403, not a form re-render
	if _, err := h.service.GetForEdit(c.Request().Context(), c.Param("id"), actor); err != nil {
		countForbidden(err, "edit")
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), actor, ports.NoteInput{Title: req.Title, Text: req.Text}); err != nil {
		countForbidden(err, "edit")
		return err
	}

	metrics.NotesUpdatedTotal.Inc()
	return c.Redirect(http.StatusFound, notesListPath)
}

// Delete handles POST /note-delete/:id/.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     SessionAuth
// @Param        id   path      string  true  "Note id"
// @Success      302  {string}  string  "redirect to the notes list"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /note-delete/{id} [post]
func (h *NoteHandler) Delete(c echo.Context) error {
	actor, err := ctxUsername(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		countForbidden(err, "delete")
		return err
	}

	metrics.NotesDeletedTotal.Inc()
	return c.Redirect(http.StatusFound, notesListPath)
}

func countForbidden(err error, operation string) {
	if errors.Is(err, domain.ErrForbidden) {
		metrics.ForbiddenAttemptsTotal.WithLabelValues(operation).Inc()
	}
}

func toNoteResponse(v ports.NoteView) noteResponse {
	return noteResponse{
		ID:            v.ID,
		Title:         v.Title,
		Text:          v.Text,
		OwnerUsername: v.OwnerUsername,
		CreatedAt:     v.CreatedAt,
	}
}
