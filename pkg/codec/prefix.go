package codec

import (
	"strings"
	"unicode/utf8"
)

// Prefix is an SI decimal prefix.
type Prefix struct {
	Symbol string
	Name   string
	Factor float64
}

// Prefixes lists the SI prefixes. "u" and "μ" (Greek mu) are accepted as
// spellings of micro alongside "µ" (micro sign).
var Prefixes = []Prefix{
	{"Q", "quetta", 1e30},
	{"R", "ronna", 1e27},
	{"Y", "yotta", 1e24},
	{"Z", "zetta", 1e21},
	{"E", "exa", 1e18},
	{"P", "peta", 1e15},
	{"T", "tera", 1e12},
	{"G", "giga", 1e9},
	{"M", "mega", 1e6},
	{"k", "kilo", 1e3},
	{"h", "hecto", 1e2},
	{"da", "deca", 1e1},
	{"d", "deci", 1e-1},
	{"c", "centi", 1e-2},
	{"m", "milli", 1e-3},
	{"µ", "micro", 1e-6},
	{"μ", "micro", 1e-6},
	{"u", "micro", 1e-6},
	{"n", "nano", 1e-9},
	{"p", "pico", 1e-12},
	{"f", "femto", 1e-15},
	{"a", "atto", 1e-18},
	{"z", "zepto", 1e-21},
	{"y", "yocto", 1e-24},
	{"r", "ronto", 1e-27},
	{"q", "quecto", 1e-30},
}

// SplitPrefix splits symbol into an SI prefix and a base symbol accepted by
// known. A symbol that known accepts as-is is returned unprefixed, so "m" is
// the metre and never milli-nothing. Both prefix symbols ("km") and names
// ("kilometer") are tried.
func SplitPrefix(symbol string, known func(string) bool) (Prefix, string, bool) {
	if known(symbol) {
		return Prefix{Factor: 1}, symbol, true
	}
	for _, p := range Prefixes {
		if rest, ok := strings.CutPrefix(symbol, p.Symbol); ok && rest != "" && known(rest) {
			return p, rest, true
		}
	}
	for _, p := range Prefixes {
		if rest, ok := strings.CutPrefix(symbol, p.Name); ok && utf8.RuneCountInString(rest) > 1 && known(rest) {
			return p, rest, true
		}
	}
	return Prefix{}, "", false
}
