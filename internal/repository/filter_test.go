package repository

import "testing"

func TestLikePattern(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Masker", "masker"},
		{"100%", `100\%`},
		{"stok_awal", `stok\_awal`},
		{`a\b`, `a\\b`},
	}
	for _, tc := range cases {
		if got := likePattern(tc.in); got != tc.want {
			t.Errorf("likePattern(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilterIsZero(t *testing.T) {
	if !(BhpFilter{}).IsZero() {
		t.Errorf("empty BhpFilter should be zero")
	}
	if (BhpFilter{Search: "masker"}).IsZero() {
		t.Errorf("BhpFilter with search should not be zero")
	}
	if !(AsetFilter{}).IsZero() {
		t.Errorf("empty AsetFilter should be zero")
	}
	if (AsetFilter{Kondisi: "Baik"}).IsZero() {
		t.Errorf("AsetFilter with kondisi should not be zero")
	}
}
