package content

import "errors"

var (
	ErrNotFound           = errors.New("content not found")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrInvalidMediaType   = errors.New("invalid media type")
	ErrEmptyNote          = errors.New("note is empty")
	ErrNoteTooLong        = errors.New("note is too long")
)
