package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")

	// listing validation errors
	ErrZeroPrice           = errors.New("price must be greater than zero")
	ErrExceedsMaxTradable  = errors.New("token id exceeds max tradable token id")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// authorization errors
	ErrNotSeller    = errors.New("only seller can operate the listing")
	ErrUnauthorized = errors.New("operation requires admin privilege")

	// ErrCustodyRejected will throw if the token custody declined an
	// ownership check or an asset transfer
	ErrCustodyRejected = errors.New("token custody rejected the operation")

	// request error
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidSignature = errors.New("invalid signature")
)
