package token

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidPrice = errors.New("invalid price")
)
