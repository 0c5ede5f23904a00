// Package norm implements Unicode normalization (NFD, NFKD, NFC, NFKC
// and the FCD fast form) over code point sequences, plus quick checks
// and canonical-equivalence comparison. The per-code-point character
// data comes from a unicodedata.Accessor; all operations are pure,
// stateless, and safe for concurrent use.
//
// References: https://unicode.org/reports/tr15/ and
// https://unicode.org/notes/tn5/ (FCD).
package norm

import "fmt"

// Form selects a normalization form.
type Form int

const (
	// None performs no transformation.
	None Form = iota
	// NFD is canonical decomposition.
	NFD
	// NFKD is compatibility decomposition.
	NFKD
	// NFC is canonical decomposition followed by canonical composition.
	NFC
	// NFKC is compatibility decomposition followed by canonical composition.
	NFKC
	// FCD is the "fast C or D" form: canonically ordered without full
	// decomposition. It does not give unique representations; two
	// canonically equivalent sequences may both satisfy FCD while
	// differing code point for code point. Normalizing to FCD produces
	// the NFD form, which always satisfies it.
	FCD
)

// String returns the conventional name of the form.
func (f Form) String() string {
	switch f {
	case None:
		return "none"
	case NFD:
		return "nfd"
	case NFKD:
		return "nfkd"
	case NFC:
		return "nfc"
	case NFKC:
		return "nfkc"
	case FCD:
		return "fcd"
	}
	return fmt.Sprintf("form(%d)", int(f))
}

// ParseForm converts a form name as accepted by the CLI and the HTTP
// API ("nfc", "NFC", ...) into a Form.
func ParseForm(s string) (Form, error) {
	switch lower(s) {
	case "none", "":
		return None, nil
	case "nfd":
		return NFD, nil
	case "nfkd":
		return NFKD, nil
	case "nfc":
		return NFC, nil
	case "nfkc":
		return NFKC, nil
	case "fcd":
		return FCD, nil
	}
	return None, fmt.Errorf("unknown normalization form %q", s)
}

// lower is an ASCII-only lowercase; form names never need more.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// CheckResult is the verdict of a quick normalization check.
type CheckResult int

const (
	// CheckNo means the sequence is definitely not normalized.
	CheckNo CheckResult = iota
	// CheckPerhaps means a full normalize-and-compare is required.
	CheckPerhaps
	// CheckYes means the sequence is definitely normalized.
	CheckYes
)

// String returns the string representation of a CheckResult.
func (c CheckResult) String() string {
	switch c {
	case CheckNo:
		return "no"
	case CheckPerhaps:
		return "maybe"
	case CheckYes:
		return "yes"
	}
	return fmt.Sprintf("checkresult(%d)", int(c))
}

// CompareOption is a set of independent comparison flags. Combine with
// bitwise OR.
type CompareOption uint

const (
	// InputIsFCD attests that both inputs already satisfy FCD, letting
	// Compare skip the per-segment FCD check before reordering.
	InputIsFCD CompareOption = 1 << iota
	// CodePointOrder compares mismatching code points by their numeric
	// value instead of UTF-16 code unit storage order.
	CodePointOrder
	// IgnoreCase applies full case folding before comparison.
	IgnoreCase
)

func (o CompareOption) has(flag CompareOption) bool {
	return o&flag != 0
}
