package pricing

import "testing"

func TestParsePercent(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{name: "valid", raw: "20", want: 20, valid: true},
		{name: "lower bound", raw: "1", want: 1, valid: true},
		{name: "upper bound", raw: "100", want: 100, valid: true},
		{name: "surrounding whitespace", raw: " 20 ", want: 20, valid: true},
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "non numeric", raw: "abc"},
		{name: "fractional", raw: "20.5"},
		{name: "zero", raw: "0"},
		{name: "negative", raw: "-5"},
		{name: "above range", raw: "150"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParsePercent(tc.raw)
			if ok != tc.valid {
				t.Fatalf("ParsePercent(%q) valid=%v, want %v", tc.raw, ok, tc.valid)
			}
			if ok && got != tc.want {
				t.Fatalf("ParsePercent(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}
