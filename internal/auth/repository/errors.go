package repository

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoAccessToken   = errors.New("backend returned no access token")
)
