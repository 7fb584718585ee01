package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := map[string]struct {
		in   string
		def  int
		want int
	}{
		"valid":    {"42", 0, 42},
		"negative": {"-7", 0, -7},
		"empty":    {"", 9, 9},
		"garbage":  {"x1", 9, 9},
		"float":    {"1.5", 9, 9},
	}
	for name, c := range cases {
		if got := AtoiDefault(c.in, c.def); got != c.want {
			t.Errorf("%s: AtoiDefault(%q, %d) = %d; want %d", name, c.in, c.def, got, c.want)
		}
	}
}
