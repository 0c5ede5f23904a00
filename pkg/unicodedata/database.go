package unicodedata

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// maxDecomposingRune is the highest code point carrying a decomposition
// mapping (CJK compatibility ideographs in plane 2). Scanning beyond it
// is wasted work.
const maxDecomposingRune = 0x2FA1D

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	hangulBase = 0xAC00
	hangulEnd  = 0xD7A4 // exclusive

	jamoVBase = 0x1161
	jamoVEnd  = 0x1176 // exclusive
	jamoTBase = 0x11A8
	jamoTEnd  = 0x11C3 // exclusive
)

// Database is an Accessor backed by the golang.org/x/text normalization
// tables. Per-code-point properties are read straight from the x/text
// trie; the composition pair table and the full-exclusion set are
// derived once, on first use, by inverting the canonical decomposition
// mappings. After that first build the Database is read-only and safe
// for concurrent use without locking.
type Database struct {
	once     sync.Once
	pairs    map[compKey]rune
	second   map[rune]bool
	excluded map[rune]bool
}

type compKey struct {
	first, second rune
}

// NewDatabase returns an empty Database. Tables are built lazily on the
// first call that needs them.
func NewDatabase() *Database {
	return &Database{}
}

var (
	defaultDB   *Database
	defaultOnce sync.Once
)

// Default returns the shared process-wide Database.
func Default() *Database {
	defaultOnce.Do(func() {
		defaultDB = NewDatabase()
	})
	return defaultDB
}

func (d *Database) init() {
	d.once.Do(d.buildTables)
}

// buildTables scans every scalar value with a potential decomposition
// and inverts the non-excluded canonical pair mappings. A code point
// whose canonical decomposition does not recompose to itself under NFC
// is a full composition exclusion; this covers explicit exclusions,
// singleton decompositions, and non-starter decompositions alike.
func (d *Database) buildTables() {
	d.pairs = make(map[compKey]rune, 1024)
	d.second = make(map[rune]bool, 128)
	d.excluded = make(map[rune]bool, 1024)

	for r := rune(0); r <= maxDecomposingRune; r++ {
		if r >= surrogateMin && r <= surrogateMax {
			continue
		}
		if r >= hangulBase && r < hangulEnd {
			// Hangul decomposes arithmetically; the engine owns it.
			continue
		}
		s := string(r)
		dec := norm.NFD.PropertiesString(s).Decomposition()
		if dec == nil {
			continue
		}
		if norm.NFC.String(string(dec)) != s {
			d.excluded[r] = true
			continue
		}
		parts := []rune(string(dec))
		first, last := parts[0], parts[len(parts)-1]
		if len(parts) > 2 {
			// The decomposition is fully expanded; recover the one-level
			// pair by recomposing everything but the trailing mark.
			head := []rune(norm.NFC.String(string(parts[:len(parts)-1])))
			if len(head) != 1 {
				continue
			}
			first = head[0]
		}
		d.pairs[compKey{first, last}] = r
		d.second[last] = true
	}
}

// Decompose implements Accessor.
func (d *Database) Decompose(r rune, compat bool) ([]rune, bool) {
	f := norm.NFD
	if compat {
		f = norm.NFKD
	}
	dec := f.PropertiesString(string(r)).Decomposition()
	if dec == nil {
		return nil, false
	}
	return []rune(string(dec)), true
}

// CombiningClass implements Accessor.
func (d *Database) CombiningClass(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).CCC()
}

// LeadCombiningClass implements Accessor.
func (d *Database) LeadCombiningClass(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).LeadCCC()
}

// TrailCombiningClass implements Accessor.
func (d *Database) TrailCombiningClass(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).TrailCCC()
}

// Compose implements Accessor. Excluded pairs are never present in the
// derived table, so a hit is always a legal primary composite.
func (d *Database) Compose(a, b rune) (rune, bool) {
	d.init()
	r, ok := d.pairs[compKey{a, b}]
	return r, ok
}

// IsFullCompositionExclusion implements Accessor.
func (d *Database) IsFullCompositionExclusion(r rune) bool {
	d.init()
	return d.excluded[r]
}

// QuickCheckProperty implements Accessor.
//
// A code point that does not survive the form on its own is No. For the
// composing forms, anything that can attach to a preceding code point
// (the second of a composition pair, or a Jamo vowel/trailing consonant)
// is Maybe. Everything else is Yes.
func (d *Database) QuickCheckProperty(r rune, composing, compat bool) QC {
	f := norm.NFD
	switch {
	case composing && compat:
		f = norm.NFKC
	case composing:
		f = norm.NFC
	case compat:
		f = norm.NFKD
	}
	if !f.IsNormalString(string(r)) {
		return QCNo
	}
	if composing {
		if (r >= jamoVBase && r < jamoVEnd) || (r >= jamoTBase && r < jamoTEnd) {
			return QCMaybe
		}
		d.init()
		if d.second[r] {
			return QCMaybe
		}
	}
	return QCYes
}

// foldPool recycles folding casers. Casers are stateful and not safe
// for concurrent use, so each fold checks one out for the duration of
// the call instead of building a fresh one per code point.
var foldPool = sync.Pool{
	New: func() any { return cases.Fold() },
}

// CaseFold implements Accessor.
func (d *Database) CaseFold(r rune) []rune {
	c := foldPool.Get().(cases.Caser)
	s := c.String(string(r))
	foldPool.Put(c)
	return []rune(s)
}
