package admin

import "errors"

var (
	// ErrInternal is returned on persistence failures
	ErrInternal = errors.New("admin: internal error")
)
