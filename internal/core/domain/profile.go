package domain

import "time"

// Profile is the public face of a User. There is exactly one Profile per
// user; it is provisioned synchronously when the account is registered and
// is never created through any other path.
type Profile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	AvatarKey   string    `json:"avatar_key"`
	Bio         string    `json:"bio,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
