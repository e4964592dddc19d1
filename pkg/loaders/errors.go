package loaders

import "errors"

var (
	ErrUnexpectedEOF  = errors.New("loaders: unexpected end of scene file")
	ErrUnknownKeyword = errors.New("loaders: unknown keyword")
	ErrBadIndex       = errors.New("loaders: index out of range")
	ErrBadNumber      = errors.New("loaders: malformed number")
	ErrBadCount       = errors.New("loaders: negative count")
)
