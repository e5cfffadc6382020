package data

import "errors"

var (
	// ErrSourceUnavailable means the source file is missing or unreadable.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedSource means the source cannot be parsed as delimited text.
	ErrMalformedSource = errors.New("malformed source")
	// ErrDestinationUnwritable means an artifact could not be created or written.
	ErrDestinationUnwritable = errors.New("destination unwritable")
)
