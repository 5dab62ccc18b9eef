// Package codec reads and writes the textual quantity grammar shared by all
// forms.
//
// The grammar is a magnitude (a number or a bracketed array of numbers)
// followed by a unit expression. Unit expressions combine symbols with "*",
// "/", juxtaposition, "**" or "^" integer powers, and parentheses:
//
//	10 m
//	1.5 kcal
//	[1, 2, 3] kg m/s^2
//	8.314 J/(mol K)
//
// Parsing produces an [Expression] whose unit part is flattened into a list
// of [Factor] values. Each adapter resolves factor symbols against its own
// backend; the codec never interprets symbols itself.
package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Factor is one symbol raised to an integer power in a flattened unit
// expression.
type Factor struct {
	Symbol string
	Power  int
}

// Expression is a parsed quantity or unit expression.
type Expression struct {
	// Text is the trimmed input.
	Text string

	// Values holds the magnitude. It is nil when the input had no magnitude.
	Values []float64

	// Array is true when the magnitude was written as a bracketed list.
	Array bool

	// UnitText is the unit part of the input exactly as written.
	UnitText string

	// Factors is the flattened unit expression in order of first appearance.
	// Repeated symbols are merged and zero powers dropped.
	Factors []Factor
}

// HasMagnitude reports whether the input started with a magnitude.
func (e *Expression) HasMagnitude() bool {
	return e.Values != nil
}

// HasUnit reports whether the input carried a unit expression.
func (e *Expression) HasUnit() bool {
	return e.UnitText != ""
}

// Scalar returns the magnitude of a scalar expression. Expressions without
// a magnitude have an implicit magnitude of 1.
func (e *Expression) Scalar() (float64, bool) {
	if e.Values == nil {
		return 1, true
	}
	if e.Array {
		return 0, false
	}
	return e.Values[0], true
}

// Parse parses text into an Expression.
func Parse(text string) (*Expression, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty expression")
	}

	parsed, err := exprParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", text, err)
	}
	if parsed.Magnitude == nil && parsed.Unit == nil {
		return nil, fmt.Errorf("invalid expression %q: no magnitude or unit", text)
	}

	expr := &Expression{Text: text}
	if m := parsed.Magnitude; m != nil {
		if m.Scalar != nil {
			expr.Values = []float64{*m.Scalar}
		} else {
			expr.Values = m.Array
			expr.Array = true
		}
		for _, v := range expr.Values {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("invalid expression %q: magnitude out of range", text)
			}
		}
	}
	if u := parsed.Unit; u != nil {
		expr.UnitText = tokenText(text, u.Tokens)
		expr.Factors = Normalize(flatten(u, 1))
	}
	return expr, nil
}

// ParseUnit parses a unit expression without a magnitude.
func ParseUnit(text string) (*Expression, error) {
	expr, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if expr.HasMagnitude() {
		return nil, fmt.Errorf("invalid unit %q: unexpected magnitude", expr.Text)
	}
	return expr, nil
}

// tokenText returns the span of text covered by tokens.
func tokenText(text string, tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return ""
	}
	first, last := tokens[0], tokens[len(tokens)-1]
	start, end := first.Pos.Offset, last.Pos.Offset+len(last.Value)
	if start < 0 || end > len(text) || start > end {
		return ""
	}
	return strings.TrimSpace(text[start:end])
}

// flatten walks a unit expression, multiplying every power by scale.
func flatten(u *unitPart, scale int) []Factor {
	head := scale
	if u.Inverse {
		head = -scale
	}
	out := flattenTerm(u.Head, head)
	for _, t := range u.Tail {
		s := scale
		if t.Op == "/" {
			s = -scale
		}
		out = append(out, flattenTerm(t.Term, s)...)
	}
	return out
}

func flattenTerm(t *termPart, scale int) []Factor {
	p := 1
	if t.Exponent != nil {
		p = *t.Exponent
	}
	if t.Factor.Group != nil {
		return flatten(t.Factor.Group, scale*p)
	}
	return []Factor{{Symbol: t.Factor.Symbol, Power: scale * p}}
}

// Normalize merges repeated symbols and drops zero powers, keeping the order
// in which symbols first appear.
func Normalize(factors []Factor) []Factor {
	var out []Factor
	index := make(map[string]int, len(factors))
	for _, f := range factors {
		if i, ok := index[f.Symbol]; ok {
			out[i].Power += f.Power
			continue
		}
		index[f.Symbol] = len(out)
		out = append(out, f)
	}
	kept := out[:0]
	for _, f := range out {
		if f.Power != 0 {
			kept = append(kept, f)
		}
	}
	return kept
}

// FormatFactors renders factors as a space-separated product with "^" powers,
// e.g. "kg m^2 s^-2". The empty list renders as "".
func FormatFactors(factors []Factor) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		switch f.Power {
		case 0:
		case 1:
			parts = append(parts, f.Symbol)
		default:
			parts = append(parts, f.Symbol+"^"+strconv.Itoa(f.Power))
		}
	}
	return strings.Join(parts, " ")
}

// FormatMagnitude renders a magnitude with the shortest representation that
// parses back to the same float64. Arrays render as "[1, 2, 3]".
func FormatMagnitude(values []float64, array bool) string {
	if !array && len(values) == 1 {
		return formatFloat(values[0])
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatQuantity joins a rendered magnitude and unit text.
func FormatQuantity(magnitude, unit string) string {
	if unit == "" {
		return magnitude
	}
	return magnitude + " " + unit
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
