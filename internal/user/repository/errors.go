package repository

import "errors"

var (
	ErrFailedToList = errors.New("failed to list users")
	ErrFailedToGet  = errors.New("failed to get user")
	ErrNotFound     = errors.New("user not found")
)
