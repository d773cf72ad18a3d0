package depthchart

import (
	"fmt"
	"reflect"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

const violationSeparator = ", "

// Validator accumulates constraint violations. Every check returns a new
// Validator and leaves the receiver untouched.
type Validator struct {
	violations []string
}

func NewValidator() Validator {
	return Validator{}
}

func (v Validator) NonNull(value any, label string) Validator {
	if isNil(value) {
		return v.with(fmt.Sprintf("%s must not be nil", label))
	}
	return v
}

func (v Validator) NonEmptyString(value, label string) Validator {
	if strings.TrimSpace(value) == "" {
		return v.with(fmt.Sprintf("%s must not be empty", label))
	}
	return v
}

func (v Validator) InRange(value, min, max int, label string) Validator {
	if value < min || value > max {
		return v.with(fmt.Sprintf("%s is expected to be between %d and %d but actually is %d", label, min, max, value))
	}
	return v
}

func (v Validator) HasErrors() bool {
	return len(v.violations) > 0
}

func (v Validator) Violations() []string {
	return append([]string(nil), v.violations...)
}

func (v Validator) ErrorsJoined() string {
	return strings.Join(v.violations, violationSeparator)
}

// Err returns nil when no violation was recorded. Otherwise the error is a
// *ValidationError that matches ErrInvalidArgument.
func (v Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return crerr.Mark(&ValidationError{Violations: v.Violations()}, ErrInvalidArgument)
}

func (v Validator) with(msg string) Validator {
	out := make([]string, len(v.violations), len(v.violations)+1)
	copy(out, v.violations)
	return Validator{violations: append(out, msg)}
}

func (v Validator) position(position string) Validator {
	return v.NonEmptyString(position, "position")
}

func (v Validator) player(p *Player) Validator {
	v = v.NonNull(p, "player")
	if p == nil {
		return v
	}
	return v.
		InRange(p.Number, MinPlayerNumber, MaxPlayerNumber, "player number").
		NonEmptyString(p.FirstName, "player first name").
		NonEmptyString(p.LastName, "player last name")
}

func ValidatePosition(position string) error {
	return NewValidator().position(position).Err()
}

func ValidatePlayer(p *Player) error {
	return NewValidator().player(p).Err()
}

// validateRank accepts any negative rank as append.
func validateRank(rank, length int) error {
	if rank < 0 {
		return nil
	}
	return NewValidator().InRange(rank, 0, length, "position depth").Err()
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
