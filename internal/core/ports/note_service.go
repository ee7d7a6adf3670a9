package ports

import (
	"context"
	"time"
)

// NoteInput carries the user-editable fields of a note. Length and presence
// constraints are enforced at the transport layer before the service runs.
type NoteInput struct {
	Title string
	Text  string
}

// NoteView is the read model returned by all note operations.
type NoteView struct {
	ID            string
	Title         string
	Text          string
	OwnerUsername string
	CreatedAt     time.Time
}

// NoteService defines the note lifecycle: create, fetch-for-edit, update,
// delete, list. Every mutating operation takes the acting username and
// refuses non-owners with domain.ErrForbidden.
type NoteService interface {
	Create(ctx context.Context, actor string, in NoteInput) (*NoteView, error)
	GetForEdit(ctx context.Context, id, actor string) (*NoteView, error)
	Update(ctx context.Context, id, actor string, in NoteInput) (*NoteView, error)
	Delete(ctx context.Context, id, actor string) error
	List(ctx context.Context) ([]NoteView, error)
}
