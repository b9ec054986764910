package screen

import "errors"

var (
	ErrAuthMissing             = errors.New("access token missing")
	ErrClosed                  = errors.New("screen closed")
	ErrUnknownAction           = errors.New("unknown action")
	ErrConfirmationRequired    = errors.New("action requires confirmation")
	ErrConfirmationNotRequired = errors.New("action does not require confirmation")
	ErrConfirmationNotFound    = errors.New("confirmation not found")
	ErrConfirmationExpired     = errors.New("confirmation expired")
	ErrRecordNotFound          = errors.New("record not found in current page")
	ErrReadOnly                = errors.New("screen has no actions")
)
