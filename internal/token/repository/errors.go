package repository

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientSupply  = errors.New("burn exceeds circulating supply")
	ErrUnsupportedType     = errors.New("unsupported supply operation")
)
