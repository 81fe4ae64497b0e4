package watch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/seancmonahan/broken-watch/internal/assert"
)

func TestIllegalArgumentError(t *testing.T) {
	message := "date out of range: 42"
	err := illegalArgumentError(message)
	if !errors.Is(err, ErrIllegalArgument) {
		t.Fatal("error must match ErrIllegalArgument")
	}
	assert.Equal(t, err.Error(), fmt.Sprintf("%s: %s", ErrIllegalArgument, message))
}

func TestUnsupportedModuliError(t *testing.T) {
	message := "(5, 12)"
	err := unsupportedModuliError(message)
	if !errors.Is(err, ErrUnsupportedModuli) {
		t.Fatal("error must match ErrUnsupportedModuli")
	}
	assert.Equal(t, err.Error(), fmt.Sprintf("%s: %s", ErrUnsupportedModuli, message))
}
