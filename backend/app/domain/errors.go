package domain

import "errors"

// Sentinel outcomes of the persistence core. The message doubles as the
// wire code written into {"error": ...} responses, so controllers can
// map with errors.Is and serialize with Error().
var (
	ErrUserAlreadyExists = errors.New("USER_ALREADY_EXISTS")
	ErrUserNotFound      = errors.New("USER_NOT_FOUND")
	ErrInvalidPassword   = errors.New("INVALID_PASSWORD")
	ErrInvalidToken      = errors.New("INVALID_TOKEN")
	ErrTokenExpired      = errors.New("TOKEN_EXPIRED")
	ErrNoteNotFound      = errors.New("NOTE_NOT_FOUND")
	ErrUnknown           = errors.New("UNKNOWN_ERROR")
)

// OK is the body message for mutations that succeed without a payload.
const OK = "OK"
