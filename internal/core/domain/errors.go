package domain

import "errors"

var ErrNoteNotFound = errors.New("note not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrProfileNotFound = errors.New("profile not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrProvisioningFailed marks a registration that could not complete its
// profile side effect (e.g. the default avatar asset is unreadable). It is
// fatal at signup time: no account may exist without a fully initialised
// profile.
var ErrProvisioningFailed = errors.New("account provisioning failed")
