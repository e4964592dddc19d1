package renderer

import "errors"

var (
	ErrInvalidImageSize = errors.New("renderer: image width and aspect ratio must be positive")
	ErrInvalidSamples   = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth     = errors.New("renderer: max depth must not be negative")
	ErrNilWorld         = errors.New("renderer: no world to render")
)
