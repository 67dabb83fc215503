package version

import "testing"

func TestAPIFieldsDefaultToZero(t *testing.T) {
	if got := APIVersion(); got != 0 {
		t.Fatalf("APIVersion = %d, want 0 for an unstamped build", got)
	}
	if got := APIRevision(); got != 0 {
		t.Fatalf("APIRevision = %d, want 0 for an unstamped build", got)
	}
}

func TestParseFieldClamps(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want int
	}{
		{"", 127, 0},
		{"junk", 127, 0},
		{"-3", 127, 0},
		{"3", 127, 3},
		{"4000", 127, 127},
		{"70000", 65535, 65535},
	}
	for _, tc := range cases {
		if got := parseField(tc.in, tc.max); got != tc.want {
			t.Fatalf("parseField(%q, %d) = %d, want %d", tc.in, tc.max, got, tc.want)
		}
	}
}
