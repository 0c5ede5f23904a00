package norm

// Compare orders a and b by canonical equivalence: the result is the
// one obtained by fully normalizing both sides to NFD (then folding
// each code point when IgnoreCase is set) and comparing the results
// index-wise. It returns -1, 0, or 1.
//
// The implementation avoids materializing the full NFD forms. Identical
// raw prefixes contribute identical NFD output, so both sides are
// walked in lockstep until the first raw mismatch; from there the walk
// rewinds to the last normalization-safe boundary and proceeds through
// lazy per-segment NFD iterators, decomposing one bounded window at a
// time. Segments that already satisfy FCD (or are attested to via
// InputIsFCD) skip the reorder step, since their raw decomposition is
// already canonically ordered.
func (e *Engine) Compare(opts CompareOption, a, b []rune) (int, error) {
	if err := validateSequence(a); err != nil {
		return 0, err
	}
	if err := validateSequence(b); err != nil {
		return 0, err
	}

	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	if i == len(a) && i == len(b) {
		return 0, nil
	}

	// Rewind to the last position that is a normalization-safe cut on
	// BOTH sides: nothing reorders or folds across such a cut, so the
	// consumed identical prefixes stay identical under NFD. The sides
	// differ at the mismatch index, so each is checked against its own
	// sequence; a combining mark there on either side can reorder into
	// the shared prefix even when the other side holds a starter.
	j := i
	for j > 0 {
		if e.safeCut(a, j) && e.safeCut(b, j) {
			break
		}
		j--
	}

	ia := e.newNFDIter(opts, a[j:])
	ib := e.newNFDIter(opts, b[j:])
	for {
		ra, okA := ia.next()
		rb, okB := ib.next()
		if ia.err != nil {
			return 0, ia.err
		}
		if ib.err != nil {
			return 0, ib.err
		}
		switch {
		case !okA && !okB:
			return 0, nil
		case !okA:
			return -1, nil
		case !okB:
			return 1, nil
		}
		if c := cmpRune(opts, ra, rb); c != 0 {
			return c, nil
		}
	}
}

// safeCut reports whether position j is a normalization-safe boundary
// in seq: past the end, or at a code point whose decomposition leads
// with a starter. No mark reorders across such a position.
func (e *Engine) safeCut(seq []rune, j int) bool {
	return j >= len(seq) || e.db.LeadCombiningClass(seq[j]) == 0
}

// cmpRune orders two code points. The default order is UTF-16 code unit
// storage order, where supplementary code points sort by their lead
// surrogate, between U+D7FF and U+E000; CodePointOrder selects plain
// numeric order instead.
func cmpRune(opts CompareOption, x, y rune) int {
	if !opts.has(CodePointOrder) {
		if (x >= 0x10000) != (y >= 0x10000) {
			if x >= 0x10000 {
				x = surrogateMin + (x-0x10000)>>10
			} else {
				y = surrogateMin + (y-0x10000)>>10
			}
		}
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// nfdIter lazily yields the NFD (optionally case-folded) form of a
// sequence, one segment at a time. A segment runs from one
// normalization-safe boundary to the next, so only a bounded window is
// decomposed per refill.
type nfdIter struct {
	e    *Engine
	opts CompareOption
	src  []rune
	pos  int
	buf  []rune
	read int
	err  error
}

func (e *Engine) newNFDIter(opts CompareOption, src []rune) *nfdIter {
	return &nfdIter{e: e, opts: opts, src: src}
}

func (it *nfdIter) next() (rune, bool) {
	for it.read >= len(it.buf) {
		if it.err != nil || it.pos >= len(it.src) {
			return 0, false
		}
		if !it.refill() {
			return 0, false
		}
	}
	r := it.buf[it.read]
	it.read++
	return r, true
}

// refill decomposes the next raw segment into the pending buffer.
func (it *nfdIter) refill() bool {
	end := it.pos + 1
	for end < len(it.src) && it.e.db.LeadCombiningClass(it.src[end]) != 0 {
		end++
	}
	seg := it.src[it.pos:end]
	it.pos = end

	dec, err := it.e.decompose(seg, false)
	if err != nil {
		it.err = err
		return false
	}
	if !it.opts.has(InputIsFCD) && it.e.quickCheckFCD(seg) != CheckYes {
		it.e.reorder(dec)
	}
	if it.opts.has(IgnoreCase) {
		folded := make([]rune, 0, len(dec))
		for _, r := range dec {
			folded = append(folded, it.e.db.CaseFold(r)...)
		}
		dec = folded
	}
	it.buf = dec
	it.read = 0
	return true
}
