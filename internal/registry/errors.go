package registry

import "errors"

var (
	// ErrSourceMissing reports an add whose source document does not exist.
	ErrSourceMissing = errors.New("source file does not exist")
	// ErrAlreadyExists reports an add whose source is already registered.
	ErrAlreadyExists = errors.New("mapping already exists")
	// ErrNotFound reports a remove that matched no mapping.
	ErrNotFound = errors.New("mapping not found")
)
