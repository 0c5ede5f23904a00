package norm

// compose re-merges a decomposed, canonically ordered sequence into
// primary composites wherever the database allows it, in place, and
// returns the shortened slice.
//
// The blocking rule follows the canonical composition algorithm
// (UAX #15): a code point C combines with the active starter S only if
// no code point between them has a combining class greater than or
// equal to C's. lastCC tracks the class of the last code point emitted
// since S; -1 means nothing sits between S and C, which also permits
// starter-with-starter pairs (Hangul L+V, LV+T).
func (e *Engine) compose(seq []rune) []rune {
	out := seq[:0]
	starter := -1
	lastCC := -1
	for _, r := range seq {
		cc := int(e.db.CombiningClass(r))
		if starter >= 0 && lastCC < cc {
			if p, ok := e.composePair(out[starter], r); ok {
				out[starter] = p
				continue
			}
		}
		out = append(out, r)
		if cc == 0 {
			starter = len(out) - 1
			lastCC = -1
		} else {
			lastCC = cc
		}
	}
	return out
}

// composePair returns the composition of (a, b), trying the algorithmic
// Hangul rules before the database pair table. Full composition
// exclusions are never reintroduced.
func (e *Engine) composePair(a, b rune) (rune, bool) {
	if p, ok := composeHangul(a, b); ok {
		return p, true
	}
	p, ok := e.db.Compose(a, b)
	if !ok || e.db.IsFullCompositionExclusion(p) {
		return 0, false
	}
	return p, true
}
