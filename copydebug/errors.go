package copydebug

import (
	"errors"
	"fmt"
)

// ErrIntrospection is returned when the engine or the target type does not have the expected shape.
// It usually means the engine version differs from the one Config describes
var ErrIntrospection = errors.New("introspection failed")

func introspectionErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntrospection, fmt.Sprintf(format, args...))
}
