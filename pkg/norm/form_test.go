package norm

import "testing"

func TestParseForm(t *testing.T) {
	tests := []struct {
		in      string
		want    Form
		wantErr bool
	}{
		{"nfc", NFC, false},
		{"NFC", NFC, false},
		{"nfd", NFD, false},
		{"NFKD", NFKD, false},
		{"nfkc", NFKC, false},
		{"fcd", FCD, false},
		{"none", None, false},
		{"", None, false},
		{"nfx", None, true},
		{"nf c", None, true},
	}
	for _, tc := range tests {
		got, err := ParseForm(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseForm(%q) expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseForm(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseForm(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormRoundTripsThroughName(t *testing.T) {
	for _, f := range allForms {
		parsed, err := ParseForm(f.String())
		if err != nil {
			t.Errorf("ParseForm(%q) error: %v", f.String(), err)
			continue
		}
		if parsed != f {
			t.Errorf("ParseForm(%q) = %v, want %v", f.String(), parsed, f)
		}
	}
}

func TestCompareOptionHas(t *testing.T) {
	opts := IgnoreCase | CodePointOrder
	if !opts.has(IgnoreCase) || !opts.has(CodePointOrder) {
		t.Error("combined options must report both flags")
	}
	if opts.has(InputIsFCD) {
		t.Error("unset flag reported as present")
	}
}
