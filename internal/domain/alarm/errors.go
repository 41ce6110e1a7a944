package alarm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by setters given a value outside the property domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrReversedTimes is returned when a begin/end change would leave the window empty or inverted.
	// It wraps ErrInvalidArgument, so errors.Is matches both.
	ErrReversedTimes = fmt.Errorf("%w: reversed times", ErrInvalidArgument)
	// ErrCategoryNotFound is the cause of the panic raised when a point of interest
	// refers to a category its resolver does not know.
	ErrCategoryNotFound = errors.New("category not found")
)

// invalidf wraps ErrInvalidArgument with a formatted explanation.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// reversedf wraps ErrReversedTimes with a formatted explanation.
func reversedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReversedTimes, fmt.Sprintf(format, args...))
}
