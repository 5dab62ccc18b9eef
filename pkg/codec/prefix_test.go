package codec

import "testing"

func TestSplitPrefix(t *testing.T) {
	known := map[string]bool{"m": true, "s": true, "cal": true, "mol": true, "meter": true, "Pa": true, "min": true}
	isKnown := func(s string) bool { return known[s] }

	tests := []struct {
		symbol string
		factor float64
		base   string
		ok     bool
	}{
		{"m", 1, "m", true},
		{"mol", 1, "mol", true},
		{"min", 1, "min", true},
		{"km", 1e3, "m", true},
		{"mm", 1e-3, "m", true},
		{"nm", 1e-9, "m", true},
		{"dam", 1e1, "m", true},
		{"kcal", 1e3, "cal", true},
		{"µs", 1e-6, "s", true},
		{"us", 1e-6, "s", true},
		{"hPa", 1e2, "Pa", true},
		{"kilometer", 1e3, "meter", true},
		{"kmol", 1e3, "mol", true},
		{"xyz", 0, "", false},
		{"k", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			p, base, ok := SplitPrefix(tt.symbol, isKnown)
			if ok != tt.ok {
				t.Fatalf("SplitPrefix(%q) ok = %v, want %v", tt.symbol, ok, tt.ok)
			}
			if !ok {
				return
			}
			if base != tt.base {
				t.Errorf("base = %q, want %q", base, tt.base)
			}
			if p.Factor != tt.factor {
				t.Errorf("factor = %v, want %v", p.Factor, tt.factor)
			}
		})
	}
}
