package norm

import "testing"

func TestRuneBufferTracksRequiredLength(t *testing.T) {
	b := runeBuffer{buf: make([]rune, 0, 2)}
	for _, r := range []rune{'a', 'b', 'c', 'd'} {
		b.push(r)
	}
	if !b.undershot() {
		t.Fatal("runeBuffer should report undershoot after overfilling")
	}
	if b.need != 4 {
		t.Errorf("need = %d, want 4", b.need)
	}
	if len(b.buf) != 2 {
		t.Errorf("len(buf) = %d, capacity must never grow", len(b.buf))
	}
}

// U+FDFA expands to 18 code points under NFKD, far past the initial
// capacity estimate, forcing the measured single retry.
func TestDecomposeBufferRetry(t *testing.T) {
	in := []rune{0xFDFA}
	out, err := Normalize(NFKD, in)
	if err != nil {
		t.Fatalf("Normalize(NFKD, U+FDFA) error: %v", err)
	}
	if len(out) != 18 {
		t.Errorf("len(NFKD(U+FDFA)) = %d, want 18", len(out))
	}
	ok, err := IsNormalized(NFKD, out)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("NFKD(U+FDFA) failed its own normalization check")
	}
}

func TestDecomposeCompatibilityVsCanonical(t *testing.T) {
	e := DefaultEngine()
	tests := []struct {
		name   string
		r      rune
		compat bool
		want   []rune
	}{
		{"ligature ignored canonically", 0xFB03, false, []rune{0xFB03}},
		{"ligature expands compat", 0xFB03, true, []rune{'f', 'f', 'i'}},
		{"acute expands canonically", 0x00C1, false, []rune{0x0041, 0x0301}},
		{"recursive expansion", 0x01D5, false, []rune{0x0055, 0x0308, 0x0304}},
		{"no mapping passes through", 0x0041, false, []rune{0x0041}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.decompose([]rune{tc.r}, tc.compat)
			if err != nil {
				t.Fatalf("decompose error: %v", err)
			}
			if !runesEqual(got, tc.want) {
				t.Errorf("decompose(U+%04X, compat=%v) = %U, want %U", tc.r, tc.compat, got, tc.want)
			}
		})
	}
}
