package session

import "errors"

var (
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrLoading          = errors.New("session is loading")
	ErrNotAuthenticated = errors.New("not authenticated")
)
