// file: service/errors.go

package service

import "errors"

var (
	ErrForbidden     = errors.New("authentication failed")
	ErrUnknownMethod = errors.New("unknown method")
	ErrStoreFailure  = errors.New("store failure")
)
