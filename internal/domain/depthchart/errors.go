package depthchart

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrInvalidArgument = crerr.New("invalid argument")

// ValidationError carries every violation found by one validation pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, violationSeparator)
}

// Is lets the standard library errors.Is match ErrInvalidArgument as well.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IsInvalidArgument checks if err was produced by input validation.
func IsInvalidArgument(err error) bool {
	return crerr.Is(err, ErrInvalidArgument)
}
