package document

import "errors"

var (
	// ErrNotFound indicates the document does not exist at the given path.
	ErrNotFound = errors.New("document not found")

	// ErrMalformed indicates the document could not be parsed into a tree.
	ErrMalformed = errors.New("malformed document")
)
