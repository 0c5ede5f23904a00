package norm

import "testing"

func TestReorderCombiningMarks(t *testing.T) {
	e := DefaultEngine()
	tests := []struct {
		name string
		in   []rune
		want []rune
	}{
		{
			// dot below (class 220) must precede acute (class 230)
			name: "reversed priority pair",
			in:   []rune{0x0061, 0x0301, 0x0323},
			want: []rune{0x0061, 0x0323, 0x0301},
		},
		{
			// equal classes keep input order: their stacked rendering
			// depends on it
			name: "equal classes are stable",
			in:   []rune{0x0061, 0x0308, 0x0301},
			want: []rune{0x0061, 0x0308, 0x0301},
		},
		{
			name: "marks never cross a starter",
			in:   []rune{0x0061, 0x0323, 0x0062, 0x0301},
			want: []rune{0x0061, 0x0323, 0x0062, 0x0301},
		},
		{
			name: "three classes sort ascending",
			in:   []rune{0x0061, 0x0301, 0x031B, 0x0323}, // 230, 216, 220
			want: []rune{0x0061, 0x031B, 0x0323, 0x0301},
		},
		{
			name: "leading marks without a base",
			in:   []rune{0x0301, 0x0323},
			want: []rune{0x0323, 0x0301},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := append([]rune(nil), tc.in...)
			got := e.reorder(buf)
			if !runesEqual(got, tc.want) {
				t.Errorf("reorder(%U) = %U, want %U", tc.in, got, tc.want)
			}
			// Re-applying must be a no-op.
			again := e.reorder(append([]rune(nil), got...))
			if !runesEqual(again, got) {
				t.Errorf("reorder is not stable under re-application: %U -> %U", got, again)
			}
		})
	}
}

func TestReorderViaNFD(t *testing.T) {
	// End to end: the normalizer must order marks the same way.
	got, err := Normalize(NFD, []rune{0x0061, 0x0301, 0x0323})
	if err != nil {
		t.Fatalf("Normalize(NFD) error: %v", err)
	}
	if !runesEqual(got, []rune{0x0061, 0x0323, 0x0301}) {
		t.Errorf("NFD(a U+0301 U+0323) = %U, want [a U+0323 U+0301]", got)
	}
}
