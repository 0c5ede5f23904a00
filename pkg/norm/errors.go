package norm

import (
	"errors"
	"fmt"
	"unicode"
)

// Engine errors
var (
	// ErrInvalidInput reports a value outside the valid Unicode scalar
	// range (surrogates, negatives, or beyond U+10FFFF). It is detected
	// at the point of use and never silently substituted.
	ErrInvalidInput = errors.New("invalid Unicode scalar value")

	// ErrResourceExhausted reports a terminal per-call failure: the
	// bounded output buffer retry undershot a second time, or the
	// character database returned an impossible mapping. It does not
	// poison later calls.
	ErrResourceExhausted = errors.New("normalization resources exhausted")
)

// validScalar reports whether r is a valid Unicode scalar value.
func validScalar(r rune) bool {
	if r < 0 || r > unicode.MaxRune {
		return false
	}
	return r < surrogateMin || r > surrogateMax
}

// validateSequence returns ErrInvalidInput for the first value in seq
// outside the scalar value domain.
func validateSequence(seq []rune) error {
	for i, r := range seq {
		if !validScalar(r) {
			return fmt.Errorf("%w: 0x%X at index %d", ErrInvalidInput, uint32(r), i)
		}
	}
	return nil
}
