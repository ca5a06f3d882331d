package services

import (
	"simple-notes/backend/app/domain"
	"simple-notes/backend/global"
)

// storeFault logs an unexpected store error and collapses it to the
// uniform UNKNOWN_ERROR sentinel. Raw store errors never cross the
// service boundary.
func storeFault(op string, err error) error {
	global.Logger.Error().Err(err).Str("op", op).Msg("store fault")
	return domain.ErrUnknown
}
