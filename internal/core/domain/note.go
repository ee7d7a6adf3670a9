package domain

import "time"

// Note is a short text entry on the shared board. OwnerUsername and
// CreatedAt are set once at creation and never change; edits may only touch
// Title and Text.
type Note struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	OwnerUsername string    `json:"owner_username"`
	CreatedAt     time.Time `json:"created_at"`
}

// CanEdit reports whether the given user owns the note and may therefore
// mutate or delete it. Pure predicate; HTTP status mapping happens elsewhere.
func (n *Note) CanEdit(username string) bool {
	return n.OwnerUsername == username
}
