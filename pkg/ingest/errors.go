package ingest

import (
	"errors"
	"fmt"
	"io"

	"github.com/Mouryagna/ML-Project/pkg/data"
)

var (
	ErrSourceUnavailable     = data.ErrSourceUnavailable
	ErrMalformedSource       = data.ErrMalformedSource
	ErrDestinationUnwritable = data.ErrDestinationUnwritable
	// ErrIngestionFailed covers any failure outside the other kinds.
	ErrIngestionFailed = errors.New("ingestion failed")
)

// Error is returned by InitiateDataIngestion. Kind is one of the Err*
// values above; Err keeps the cause along with the stack captured where
// the stage failed.
type Error struct {
	Kind  error
	Stage string
	RunID string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("ingestion %s: stage %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the error's Kind, so errors.Is(err, ErrIngestionFailed)
// holds even when the cause does not wrap it.
func (e *Error) Is(target error) bool { return target == e.Kind }

// Format prints the cause's stack trace under %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "ingestion %s: stage %s (run %s)\n%+v", e.Kind, e.Stage, e.RunID, e.Err)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func classify(err error) error {
	for _, kind := range []error{ErrSourceUnavailable, ErrMalformedSource, ErrDestinationUnwritable} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrIngestionFailed
}
