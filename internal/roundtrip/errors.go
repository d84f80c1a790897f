package roundtrip

import (
	"errors"

	"scriptctl/internal/document"
	"scriptctl/internal/sidecar"
)

// Kind classifies a per-file failure for reporting.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindParseFailure Kind = "parse_failure"
	KindError        Kind = "error"
)

// Classify maps an error returned by this package to its Kind. A nil error
// yields the empty Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, document.ErrNotFound), errors.Is(err, sidecar.ErrNotFound):
		return KindNotFound
	case errors.Is(err, document.ErrMalformed):
		return KindParseFailure
	default:
		return KindError
	}
}
