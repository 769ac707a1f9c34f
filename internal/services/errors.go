package services

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so login failures carry no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken = errors.New("username already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)
