package norm

// Hangul composes and decomposes algorithmically, instead of using
// tables. See https://unicode.org/reports/tr15/#Hangul.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	hangulBase = 0xAC00

	jamoLBase = 0x1100
	jamoVBase = 0x1161
	jamoTBase = 0x11A7

	jamoLCount = 19
	jamoVCount = 21
	jamoTCount = 28

	hangulCount = jamoLCount * jamoVCount * jamoTCount
	hangulEnd   = hangulBase + hangulCount // exclusive
)

func isHangulSyllable(r rune) bool {
	return r >= hangulBase && r < hangulEnd
}

// decomposeHangul splits a Hangul syllable into its Jamo components.
// hasT reports whether the syllable carries a trailing consonant.
func decomposeHangul(r rune) (l, v, t rune, hasT bool) {
	r -= hangulBase
	t = r % jamoTCount
	r /= jamoTCount
	l = jamoLBase + r/jamoVCount
	v = jamoVBase + r%jamoVCount
	if t == 0 {
		return l, v, 0, false
	}
	return l, v, jamoTBase + t, true
}

// composeHangul combines a leading/vowel Jamo pair into an LV syllable,
// or an LV syllable and a trailing Jamo into an LVT syllable.
func composeHangul(a, b rune) (rune, bool) {
	if jamoLBase <= a && a < jamoLBase+jamoLCount &&
		jamoVBase <= b && b < jamoVBase+jamoVCount {
		return hangulBase + ((a-jamoLBase)*jamoVCount+(b-jamoVBase))*jamoTCount, true
	}
	if isHangulSyllable(a) && (a-hangulBase)%jamoTCount == 0 &&
		jamoTBase < b && b < jamoTBase+jamoTCount {
		return a + (b - jamoTBase), true
	}
	return 0, false
}
