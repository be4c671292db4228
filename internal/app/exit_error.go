package app

import (
	"errors"
	"fmt"

	"github.com/bloodmallet/bloodytools/apps/tier_set/internal/domain"
)

// Process exit codes. Each domain failure gets its own code so wrapper
// scripts can tell a missing definitions file from a broken one.
const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitDefinitionNotFound
	ExitMalformedDefinitions
	ExitAuxiliaryResourceMissing
)

// ExitError forces a specific exit code for Err, overriding the sentinel mapping.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error { return e.Err }

func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

// exitCode maps an error returned by run to the process exit code.
func exitCode(err error) int {
	var ee ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, domain.ErrDefinitionNotFound):
		return ExitDefinitionNotFound
	case errors.Is(err, domain.ErrMalformedDefinitions):
		return ExitMalformedDefinitions
	case errors.Is(err, domain.ErrAuxiliaryResourceMissing):
		return ExitAuxiliaryResourceMissing
	default:
		return ExitFailure
	}
}
