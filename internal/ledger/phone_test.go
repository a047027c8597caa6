package ledger

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 123-4567": "15551234567",
		"5551234567":        "5551234567",
		"  555.123.4567 ":   "5551234567",
		"no digits":         "",
		"":                  "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultPhoneMatch(t *testing.T) {
	cases := []struct {
		stored, query string
		want          bool
	}{
		// query carries a country code the stored value lacks
		{"5551234567", "+1 (555) 123-4567", true},
		// stored value carries a country code the query lacks
		{"15551234567", "5551234567", true},
		{"5551234567", "5551234567", true},
		{"5559876543", "5551234567", false},
		// empty values never match
		{"", "5551234567", false},
		{"5551234567", "", false},
		{"n/a", "n/a", false},
	}
	for _, tc := range cases {
		if got := DefaultPhoneMatch(tc.stored, tc.query); got != tc.want {
			t.Errorf("DefaultPhoneMatch(%q, %q) = %v, want %v", tc.stored, tc.query, got, tc.want)
		}
	}
}
