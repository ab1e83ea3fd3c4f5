package models

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email address already exists")
	ErrDuplicatePlace     = errors.New("place already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password too long")
)
