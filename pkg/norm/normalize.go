package norm

import "fmt"

// Normalize rewrites seq into form f. The input is never mutated; the
// returned buffer is owned by the caller. It fails with ErrInvalidInput
// when seq contains a value outside the Unicode scalar range and with
// ErrResourceExhausted on an unrecoverable internal condition; no
// partial result is returned on failure.
//
// FCD has no unique representative, so normalizing to it produces the
// NFD form, which satisfies FCD and shares its canonical-equivalence
// class.
func (e *Engine) Normalize(f Form, seq []rune) ([]rune, error) {
	if err := validateSequence(seq); err != nil {
		return nil, err
	}
	switch f {
	case None:
		out := make([]rune, len(seq))
		copy(out, seq)
		return out, nil
	case NFD, FCD:
		return e.decomposeAndOrder(seq, false)
	case NFKD:
		return e.decomposeAndOrder(seq, true)
	case NFC:
		return e.decomposeOrderCompose(seq, false)
	case NFKC:
		return e.decomposeOrderCompose(seq, true)
	}
	return nil, fmt.Errorf("%w: unsupported normalization form %d", ErrInvalidInput, int(f))
}

func (e *Engine) decomposeAndOrder(seq []rune, compat bool) ([]rune, error) {
	out, err := e.decompose(seq, compat)
	if err != nil {
		return nil, err
	}
	return e.reorder(out), nil
}

func (e *Engine) decomposeOrderCompose(seq []rune, compat bool) ([]rune, error) {
	out, err := e.decompose(seq, compat)
	if err != nil {
		return nil, err
	}
	return e.compose(e.reorder(out)), nil
}
