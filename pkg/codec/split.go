package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var numberRegex = regexp.MustCompile(`^[-+]?(\d+\.\d*|\.\d+|\d+)([eE][-+]?\d+)?`)

// SplitMagnitude splits a leading magnitude off text and returns the rest
// verbatim. It serves forms whose unit names fall outside the codec grammar
// ("square meter", "m²"). values is nil when text has no magnitude.
func SplitMagnitude(text string) (values []float64, array bool, rest string, err error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, false, "", fmt.Errorf("empty expression")
	}

	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, false, "", fmt.Errorf("invalid expression %q: unterminated array", s)
		}
		for _, part := range strings.Split(s[1:end], ",") {
			v, err := parseNumber(strings.TrimSpace(part))
			if err != nil {
				return nil, false, "", fmt.Errorf("invalid expression %q: %w", s, err)
			}
			values = append(values, v)
		}
		return values, true, strings.TrimSpace(s[end+1:]), nil
	}

	loc := numberRegex.FindStringIndex(s)
	if loc == nil {
		return nil, false, s, nil
	}
	v, err := parseNumber(s[:loc[1]])
	if err != nil {
		return nil, false, "", fmt.Errorf("invalid expression %q: %w", s, err)
	}
	return []float64{v}, false, strings.TrimSpace(s[loc[1]:]), nil
}

func parseNumber(s string) (float64, error) {
	if !numberRegex.MatchString(s) || numberRegex.FindString(s) != s {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return strconv.ParseFloat(s, 64)
}
