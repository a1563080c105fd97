package reactive

import (
	"fmt"

	"github.com/lucent-dev/lucent/internal/errors"
)

// IsCircular reports whether err is the circular-dependency failure
// raised when an effect re-enters its own execution frame.
func IsCircular(err error) bool {
	return errors.IsCode(err, errors.CodeCircularEffect)
}

// IsEffectPanic reports whether err wraps a panic recovered at an
// effect boundary.
func IsEffectPanic(err error) bool {
	return errors.IsCode(err, errors.CodeEffectPanicked)
}

// asEffectError converts a recovered panic value into a structured
// error. Structured errors (including the circular-dependency error
// from a nested effect) pass through unchanged.
func asEffectError(r any) error {
	switch v := r.(type) {
	case *errors.Error:
		return v
	case error:
		return errors.FromError(v, errors.CodeEffectPanicked)
	default:
		return errors.New(errors.CodeEffectPanicked).
			WithDetail(fmt.Sprint(v))
	}
}
