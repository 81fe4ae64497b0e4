package watch

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrIllegalArgument   = errors.New("illegal argument")
	ErrUnsupportedModuli = errors.New("unsupported moduli")
)

// illegalArgumentError returns an illegal argument error with a custom
// error message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}

// unsupportedModuliError returns an unsupported moduli error with a custom
// error message, which unwraps to ErrUnsupportedModuli.
func unsupportedModuliError(message string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedModuli, message)
}
