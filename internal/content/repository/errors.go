package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get reel")
	ErrFailedToList   = errors.New("failed to list reels")
	ErrFailedToUpdate = errors.New("failed to update reel")
	ErrFailedToDelete = errors.New("failed to delete reel")
	ErrNotFound       = errors.New("reel not found")
)
