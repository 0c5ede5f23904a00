package norm

import "github.com/TryMightyAI/unorm/pkg/unicodedata"

// QuickCheck runs the UAX #15 quick-check heuristic over seq in a
// single pass: per-code-point quick-check properties plus the combining
// class monotonicity test. CheckNo and CheckYes are definitive;
// CheckPerhaps requires a full normalize to decide and only occurs for
// the composing forms. Values outside the scalar range are treated as
// opaque starters.
func (e *Engine) QuickCheck(f Form, seq []rune) CheckResult {
	if f == None {
		return CheckYes
	}
	if f == FCD {
		return e.quickCheckFCD(seq)
	}
	composing := f == NFC || f == NFKC
	compat := f == NFKC || f == NFKD
	result := CheckYes
	lastCC := uint8(0)
	for _, r := range seq {
		if !validScalar(r) {
			lastCC = 0
			continue
		}
		if isHangulSyllable(r) {
			if !composing {
				return CheckNo
			}
			lastCC = 0
			continue
		}
		cc := e.db.CombiningClass(r)
		if cc != 0 && lastCC > cc {
			return CheckNo
		}
		switch e.db.QuickCheckProperty(r, composing, compat) {
		case unicodedata.QCNo:
			return CheckNo
		case unicodedata.QCMaybe:
			result = CheckPerhaps
		}
		lastCC = cc
	}
	return result
}

// quickCheckFCD tests the FCD property: the trailing combining class of
// each code point's decomposition must not exceed the leading class of
// the next. FCD checks are always definitive.
func (e *Engine) quickCheckFCD(seq []rune) CheckResult {
	lastTrail := uint8(0)
	for _, r := range seq {
		if !validScalar(r) || isHangulSyllable(r) {
			lastTrail = 0
			continue
		}
		lead := e.db.LeadCombiningClass(r)
		if lead != 0 && lastTrail > lead {
			return CheckNo
		}
		lastTrail = e.db.TrailCombiningClass(r)
	}
	return CheckYes
}

// IsNormalized reports whether seq is already in form f. A definitive
// quick check answers immediately; CheckPerhaps falls back to
// normalizing and comparing element-wise.
func (e *Engine) IsNormalized(f Form, seq []rune) (bool, error) {
	switch e.QuickCheck(f, seq) {
	case CheckYes:
		return true, nil
	case CheckNo:
		return false, nil
	}
	normalized, err := e.Normalize(f, seq)
	if err != nil {
		return false, err
	}
	return runesEqual(normalized, seq), nil
}
