package atlas

import (
	"errors"
	"fmt"
)

// ErrOutOfTextureSpace matches every *OutOfTextureSpaceError.
var ErrOutOfTextureSpace = errors.New("atlas: out of texture space")

// OutOfTextureSpaceError is returned when a bitmap does not fit in the
// remaining space of the atlas.
type OutOfTextureSpaceError struct {
	// SizeHint is the smallest power-of-two side length that would hold the
	// current content plus the rejected bitmap.
	SizeHint int
}

func (e *OutOfTextureSpaceError) Error() string {
	return fmt.Sprintf("atlas: out of texture space (try size %d)", e.SizeHint)
}

// Is reports whether target is ErrOutOfTextureSpace.
func (e *OutOfTextureSpaceError) Is(target error) bool {
	return target == ErrOutOfTextureSpace
}

// ConfigError represents an invalid atlas parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
