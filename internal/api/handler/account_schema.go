package handler

import "time"

type signUpRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=150"`
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// signUpFormResponse echoes blank registration form values for display.
type signUpFormResponse struct {
	Form signUpRequest `json:"form"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// accountRequest carries the account form fields. Bio and phone number are
// optional but length-capped; email, when present, must be well-formed. The
// avatar file travels separately as a multipart part named "avatar".
type accountRequest struct {
	Bio         string `json:"bio"          form:"bio"          validate:"omitempty,max=500"`
	PhoneNumber string `json:"phone_number" form:"phone_number" validate:"omitempty,max=20"`
	Email       string `json:"email"        form:"email"        validate:"omitempty,email"`
}

type profileResponse struct {
	Username    string    `json:"username"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
