package norm

// reorder applies the canonical ordering algorithm to a maximally
// decomposed sequence, in place, and returns it. Runs of consecutive
// combining marks are stable-sorted by ascending combining class; marks
// never move across a starter.
func (e *Engine) reorder(seq []rune) []rune {
	for i := 0; i < len(seq); {
		if e.db.CombiningClass(seq[i]) == 0 {
			i++
			continue
		}
		j := i + 1
		for j < len(seq) && e.db.CombiningClass(seq[j]) != 0 {
			j++
		}
		e.sortMarks(seq[i:j])
		i = j
	}
	return seq
}

// sortMarks stable-sorts one run of combining marks by combining class.
// Runs are short in practice, so an insertion sort beats anything
// fancier; equal classes keep their input order, which is load-bearing:
// stacked marks of the same class render in input order.
func (e *Engine) sortMarks(run []rune) {
	for i := 1; i < len(run); i++ {
		r := run[i]
		cc := e.db.CombiningClass(r)
		j := i
		for j > 0 && e.db.CombiningClass(run[j-1]) > cc {
			run[j] = run[j-1]
			j--
		}
		run[j] = r
	}
}
