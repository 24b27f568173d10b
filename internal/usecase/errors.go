package usecase

import "errors"

var (
	ErrInvalidState = errors.New("invalid state: no payload has been produced yet")
)
