package training

import (
	"errors"
	"strings"
)

var (
	// ErrNoOracle is the fallback reason when no oracle is wired.
	ErrNoOracle = errors.New("no oracle configured")
	// ErrNoDaysParsed is the fallback reason when the oracle reply has no usable day.
	ErrNoDaysParsed = errors.New("oracle response contained no parseable training day")
)

// ValidationError lists every problem found in a submitted profile.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "dados inválidos: " + strings.Join(e.Errors, ", ")
}
