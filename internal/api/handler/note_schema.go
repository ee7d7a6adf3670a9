package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// formErrorsResponse re-renders a form with its per-field errors. Per the
// board's uniform form behaviour it is returned with status 200, mirroring
// an HTML form re-render, never as a 4xx.
type formErrorsResponse struct {
	Errors FieldErrors `json:"errors"`
}

// --- Request / Response types ---

// noteRequest carries the two user-editable note fields. The constraints are
// the board's fixed ones: title ≤50 and text ≤250 characters, both required.
type noteRequest struct {
	Title string `json:"title" form:"title" validate:"required,max=50"`
	Text  string `json:"text"  form:"text"  validate:"required,max=250"`
}

// noteFormResponse echoes current (or blank) field values for form display.
type noteFormResponse struct {
	Form noteRequest `json:"form"`
}

type noteResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	OwnerUsername string    `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`
}

type notesListResponse struct {
	Notes []noteResponse `json:"notes"`
}
