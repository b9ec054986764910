package listing

import "errors"

var (
	ErrUnknownFilter      = errors.New("unknown filter")
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrInvalidPageSize    = errors.New("invalid page size")
)
