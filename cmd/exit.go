package cmd

import (
	"errors"

	"github.com/pders01/abref/internal/logging"
	"github.com/pders01/abref/internal/lookup"
	"github.com/pders01/abref/internal/source"
)

// Exit codes
const (
	ExitMatch    = 0
	ExitNotFound = 1
	ExitUsage    = 2
	ExitDecode   = 3
	ExitRead     = 4
	ExitFailure  = 5
)

const usageLine = "Usage: abref <snapshot.json> <name_substring> [role]"

// UsageError is returned for bad command-line input.
// An empty Msg means only the usage line is shown.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	if e.Msg == "" {
		return usageLine
	}
	return e.Msg
}

func exitCode(err error) int {
	var (
		usageErr  *UsageError
		decodeErr *lookup.DecodeError
		readErr   *source.ReadError
	)

	switch {
	case err == nil:
		return ExitMatch
	case errors.Is(err, lookup.ErrNotFound):
		return ExitNotFound
	case errors.As(err, &usageErr), errors.Is(err, lookup.ErrEmptyQuery):
		return ExitUsage
	case errors.As(err, &decodeErr):
		return ExitDecode
	case errors.As(err, &readErr):
		return ExitRead
	default:
		return ExitFailure
	}
}

// reportError prints err to stderr. A miss prints nothing.
func reportError(log *logging.Logger, err error) {
	var usageErr *UsageError

	switch {
	case err == nil, errors.Is(err, lookup.ErrNotFound):
		return
	case errors.As(err, &usageErr):
		if usageErr.Msg != "" {
			log.Errorf("Error: %s", usageErr.Msg)
		}
		log.Println(usageLine)
	case errors.Is(err, lookup.ErrEmptyQuery):
		log.Errorf("Error: %v", err)
		log.Println(usageLine)
	default:
		log.Errorf("Error: %v", err)
	}
}
