package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for pipeline errors.
type ErrorKind string

const (
	KindSourceMissing    ErrorKind = "source_missing"
	KindFontUnavailable  ErrorKind = "font_unavailable"
	KindCropOutOfBounds  ErrorKind = "crop_out_of_bounds"
	KindCompositeFailure ErrorKind = "composite_failure"
	KindEncodeFailure    ErrorKind = "encode_failure"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindLayoutOverflow   ErrorKind = "layout_overflow"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: input or output file involved
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// E builds an *OpError. err may be nil.
func E(op string, kind ErrorKind, path string, err error) error {
	return &OpError{Op: op, Kind: kind, Path: path, Err: err}
}

// IsKind reports whether any *OpError in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	for errors.As(err, &oe) {
		if oe.Kind == kind {
			return true
		}
		err = oe.Err
		if err == nil {
			return false
		}
	}
	return false
}
