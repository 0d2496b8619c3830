package accounts

import "errors"

var (
	// ErrNameNotUnique is returned when registering a username that is
	// already taken, compared case-insensitively.
	ErrNameNotUnique = errors.New("username already taken")

	// ErrUnknownUser is returned when the named user does not exist.
	ErrUnknownUser = errors.New("unknown user")

	// ErrAuthenticationFailed covers both a missing user and a wrong
	// password, so a caller cannot probe which usernames exist.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidToken is returned for expired or malformed tokens.
	ErrInvalidToken = errors.New("invalid token")
)
