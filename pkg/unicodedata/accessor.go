// Package unicodedata exposes the per-code-point Unicode character
// database consumed by the normalization engine: decomposition mappings,
// canonical combining classes, composition pairs, full composition
// exclusions, per-form quick-check properties, and case folding.
// The tables are read-only once loaded and safe for concurrent use.
package unicodedata

// QC is the value of a per-code-point quick-check property.
type QC int

const (
	// QCNo means a sequence containing the code point is definitely not
	// in the queried normalization form.
	QCNo QC = iota
	// QCMaybe means the code point may combine with a preceding one;
	// a full normalization pass is needed to decide.
	QCMaybe
	// QCYes means the code point never invalidates the queried form.
	QCYes
)

// String returns the string representation of a QC value.
func (q QC) String() string {
	switch q {
	case QCNo:
		return "No"
	case QCMaybe:
		return "Maybe"
	case QCYes:
		return "Yes"
	}
	return "Unknown"
}

// Accessor is the read-only character database service. All methods must
// be safe for concurrent use and must not retain or mutate arguments.
//
// Hangul syllables are intentionally absent from every mapping: the
// engine handles the Hangul block algorithmically per UAX #15.
type Accessor interface {
	// Decompose returns the canonical (compat=false) or compatibility
	// (compat=true) decomposition of r, or ok=false when r has none.
	// The returned mapping is fully expanded; callers that re-walk it
	// will find no further decompositions.
	Decompose(r rune, compat bool) ([]rune, bool)

	// CombiningClass returns the canonical combining class of r.
	// 0 identifies a starter.
	CombiningClass(r rune) uint8

	// LeadCombiningClass returns the combining class of the first code
	// point of the canonical decomposition of r (or of r itself when it
	// has no decomposition).
	LeadCombiningClass(r rune) uint8

	// TrailCombiningClass returns the combining class of the last code
	// point of the canonical decomposition of r.
	TrailCombiningClass(r rune) uint8

	// Compose returns the primary composite for the pair (a, b), or
	// ok=false when the pair has no composition mapping or the mapping
	// is a full composition exclusion.
	Compose(a, b rune) (rune, bool)

	// IsFullCompositionExclusion reports whether r has a canonical
	// decomposition that must never be recomposed (explicit exclusions,
	// singleton decompositions, non-starter decompositions).
	IsFullCompositionExclusion(r rune) bool

	// QuickCheckProperty returns the quick-check property of r for the
	// form selected by composing (NFC/NFKC vs NFD/NFKD) and compat
	// (NFKC/NFKD vs NFC/NFD). Decomposed forms never yield QCMaybe.
	QuickCheckProperty(r rune, composing, compat bool) QC

	// CaseFold returns the full case folding of r. Code points that do
	// not fold are returned unchanged as a single-element mapping.
	CaseFold(r rune) []rune
}
