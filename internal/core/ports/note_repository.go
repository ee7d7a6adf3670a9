package ports

import (
	"context"

	"github.com/memoboard/memoboard-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	// UpdateContent persists a new title and text for the note. Ownership and
	// creation timestamp are never written. Implementations must return
	// domain.ErrNoteNotFound when no row matched, so that an edit racing a
	// delete surfaces "not found" instead of silently succeeding.
	UpdateContent(ctx context.Context, id, title, text string) error
	Delete(ctx context.Context, id string) error
	// ListAll returns every note on the board ordered by owner username
	// descending, newest first within the same owner.
	ListAll(ctx context.Context) ([]domain.Note, error)
}
