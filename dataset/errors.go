package dataset

import "errors"

var (
	// ErrMalformed indicates a document that failed to decode or validate.
	ErrMalformed = errors.New("dataset: malformed document")

	// ErrUnknownDataset is returned for an embed: URI naming no bundled dataset.
	ErrUnknownDataset = errors.New("dataset: unknown embedded dataset")

	// ErrUnsupportedURI is returned for a URI scheme Load cannot serve.
	ErrUnsupportedURI = errors.New("dataset: unsupported uri")

	// ErrNoObjectStore is returned for s3:// URIs when no ObjectStore was given.
	ErrNoObjectStore = errors.New("dataset: s3 uri without object store")
)
