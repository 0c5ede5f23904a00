package norm

import "fmt"

// maxDecompositionDepth bounds the recursive table walk. The character
// database guarantees finite, acyclic decompositions; hitting the bound
// means the tables are corrupted and the call fails fast.
const maxDecompositionDepth = 8

// runeBuffer is a fixed-capacity output buffer that keeps counting the
// required length after it fills up. It implements the two-phase
// allocation discipline: attempt with an estimate, learn the exact size
// from the failed attempt, reallocate exactly once, retry.
type runeBuffer struct {
	buf  []rune
	need int
}

func (b *runeBuffer) push(r rune) {
	if len(b.buf) < cap(b.buf) {
		b.buf = append(b.buf, r)
	}
	b.need++
}

func (b *runeBuffer) undershot() bool {
	return b.need > cap(b.buf)
}

// decompose returns the maximal canonical (compat=false) or
// compatibility (compat=true) decomposition of seq. The input is never
// mutated; the caller owns the returned buffer.
func (e *Engine) decompose(seq []rune, compat bool) ([]rune, error) {
	// Most text grows little under decomposition; Hangul triples and a
	// handful of compatibility mappings expand further, handled by the
	// single sized retry below.
	buf := runeBuffer{buf: make([]rune, 0, len(seq)+len(seq)/2+4)}
	if err := e.decomposeInto(&buf, seq, compat); err != nil {
		return nil, err
	}
	if buf.undershot() {
		buf = runeBuffer{buf: make([]rune, 0, buf.need)}
		if err := e.decomposeInto(&buf, seq, compat); err != nil {
			return nil, err
		}
		if buf.undershot() {
			return nil, fmt.Errorf("%w: output grew past its measured size", ErrResourceExhausted)
		}
	}
	return buf.buf, nil
}

func (e *Engine) decomposeInto(dst *runeBuffer, seq []rune, compat bool) error {
	for _, r := range seq {
		if err := e.decomposeRune(dst, r, compat, 0); err != nil {
			return err
		}
	}
	return nil
}

// decomposeRune expands one code point, recursing into the mapping
// output until nothing decomposes further. Code points without a
// mapping pass through unchanged, malformed values included.
func (e *Engine) decomposeRune(dst *runeBuffer, r rune, compat bool, depth int) error {
	if depth > maxDecompositionDepth {
		return fmt.Errorf("%w: decomposition of U+%04X exceeds depth %d",
			ErrResourceExhausted, r, maxDecompositionDepth)
	}
	if isHangulSyllable(r) {
		l, v, t, hasT := decomposeHangul(r)
		dst.push(l)
		dst.push(v)
		if hasT {
			dst.push(t)
		}
		return nil
	}
	mapping, ok := e.db.Decompose(r, compat)
	if !ok {
		dst.push(r)
		return nil
	}
	for _, m := range mapping {
		if m == r {
			// Self-mapping would recurse forever; treat as terminal.
			dst.push(m)
			continue
		}
		if err := e.decomposeRune(dst, m, compat, depth+1); err != nil {
			return err
		}
	}
	return nil
}
