package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/memoboard/memoboard-api/internal/core/domain"
	"github.com/memoboard/memoboard-api/internal/core/ports"
)

// NoteService implements the note lifecycle. Input validation happens before
// the service is called; the service owns the ownership gate and the
// immutability of owner and creation timestamp.
type NoteService struct {
	repo   ports.NoteRepository
	logger zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, logger: logger}
}

// Create persists a new note owned by the actor.
func (s *NoteService) Create(ctx context.Context, actor string, in ports.NoteInput) (*ports.NoteView, error) {
	note := &domain.Note{
		Title:         in.Title,
		Text:          in.Text,
		OwnerUsername: actor,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", actor).Msg("failed to create note")
		return nil, err
	}

	s.logger.Info().Str("note_id", created.ID).Str("owner", actor).Msg("note created")
	return toNoteView(created), nil
}

// GetForEdit returns the note's current field values for the edit form.
// Non-owners are refused even for the read: the edit page is theirs alone.
func (s *NoteService) GetForEdit(ctx context.Context, id, actor string) (*ports.NoteView, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.CanEdit(actor) {
		return nil, domain.ErrForbidden
	}
	return toNoteView(note), nil
}

// Update persists a new title and text. Owner and creation timestamp are
// never touched. A note deleted between the fetch and the save surfaces as
// not found rather than a silent success.
func (s *NoteService) Update(ctx context.Context, id, actor string, in ports.NoteInput) (*ports.NoteView, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !note.CanEdit(actor) {
		s.logger.Warn().Str("note_id", id).Str("actor", actor).Str("owner", note.OwnerUsername).Msg("edit refused: not the owner")
		return nil, domain.ErrForbidden
	}

	if err := s.repo.UpdateContent(ctx, id, in.Title, in.Text); err != nil {
		return nil, err
	}

	note.Title = in.Title
	note.Text = in.Text
	s.logger.Info().Str("note_id", id).Str("owner", actor).Msg("note updated")
	return toNoteView(note), nil
}

// Delete permanently removes the note. No soft delete, no recovery.
func (s *NoteService) Delete(ctx context.Context, id, actor string) error {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !note.CanEdit(actor) {
		s.logger.Warn().Str("note_id", id).Str("actor", actor).Str("owner", note.OwnerUsername).Msg("delete refused: not the owner")
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("note_id", id).Str("owner", actor).Msg("note deleted")
	return nil
}

// List returns the whole board, every user's notes, ordered by owner
// username descending. The board is shared: any authenticated user sees all.
func (s *NoteService) List(ctx context.Context) ([]ports.NoteView, error) {
	notes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.NoteView, 0, len(notes))
	for i := range notes {
		views = append(views, *toNoteView(&notes[i]))
	}
	return views, nil
}

func toNoteView(n *domain.Note) *ports.NoteView {
	return &ports.NoteView{
		ID:            n.ID,
		Title:         n.Title,
		Text:          n.Text,
		OwnerUsername: n.OwnerUsername,
		CreatedAt:     n.CreatedAt,
	}
}
