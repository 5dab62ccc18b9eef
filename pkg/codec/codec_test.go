package codec

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		values   []float64
		array    bool
		unitText string
		factors  []Factor
	}{
		{"10 m", []float64{10}, false, "m", []Factor{{"m", 1}}},
		{"1.5 kcal", []float64{1.5}, false, "kcal", []Factor{{"kcal", 1}}},
		{"-3e2 s", []float64{-300}, false, "s", []Factor{{"s", 1}}},
		{"5", []float64{5}, false, "", nil},
		{"m", nil, false, "m", []Factor{{"m", 1}}},
		{"10m", []float64{10}, false, "m", []Factor{{"m", 1}}},
		{"9.81 m/s^2", []float64{9.81}, false, "m/s^2", []Factor{{"m", 1}, {"s", -2}}},
		{"9.81 m s**-2", []float64{9.81}, false, "m s**-2", []Factor{{"m", 1}, {"s", -2}}},
		{"1 kg*m^2/s^2", []float64{1}, false, "kg*m^2/s^2", []Factor{{"kg", 1}, {"m", 2}, {"s", -2}}},
		{"8.314 J/(mol K)", []float64{8.314}, false, "J/(mol K)", []Factor{{"J", 1}, {"mol", -1}, {"K", -1}}},
		{"2 (m/s)^2", []float64{2}, false, "(m/s)^2", []Factor{{"m", 2}, {"s", -2}}},
		{"1 m^(-1)", []float64{1}, false, "m^(-1)", []Factor{{"m", -1}}},
		{"3 /s", []float64{3}, false, "/s", []Factor{{"s", -1}}},
		{"1 m/m", []float64{1}, false, "m/m", nil},
		{"[1, 2, 3] m", []float64{1, 2, 3}, true, "m", []Factor{{"m", 1}}},
		{"20 °C", []float64{20}, false, "°C", []Factor{{"°C", 1}}},
		{"  4 µs  ", []float64{4}, false, "µs", []Factor{{"µs", 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got.Values, tt.values) {
				t.Errorf("Values = %v, want %v", got.Values, tt.values)
			}
			if got.Array != tt.array {
				t.Errorf("Array = %v, want %v", got.Array, tt.array)
			}
			if got.UnitText != tt.unitText {
				t.Errorf("UnitText = %q, want %q", got.UnitText, tt.unitText)
			}
			if len(got.Factors) != len(tt.factors) || (len(tt.factors) > 0 && !reflect.DeepEqual(got.Factors, tt.factors)) {
				t.Errorf("Factors = %v, want %v", got.Factors, tt.factors)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"m^2.5",
		"10 m^",
		"10 (m",
		"10 m)",
		"[1, 2 m",
		"s-1",
		"10 m $",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) expected error", input)
		}
	}
}

func TestParseUnit(t *testing.T) {
	e, err := ParseUnit("kJ")
	if err != nil {
		t.Fatalf("ParseUnit error: %v", err)
	}
	if e.HasMagnitude() {
		t.Error("ParseUnit should not carry a magnitude")
	}
	if !e.HasUnit() {
		t.Error("ParseUnit should carry a unit")
	}

	if _, err := ParseUnit("5 kJ"); err == nil {
		t.Error("ParseUnit with magnitude expected error")
	}
}

func TestExpressionScalar(t *testing.T) {
	e, _ := Parse("m")
	if v, ok := e.Scalar(); !ok || v != 1 {
		t.Errorf("Scalar() = %v, %v, want 1, true", v, ok)
	}
	e, _ = Parse("[1, 2] m")
	if _, ok := e.Scalar(); ok {
		t.Error("Scalar() on array should report false")
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]Factor{{"m", 1}, {"s", -1}, {"m", 1}, {"s", 1}})
	want := []Factor{{"m", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestFormatFactors(t *testing.T) {
	tests := []struct {
		factors []Factor
		want    string
	}{
		{nil, ""},
		{[]Factor{{"m", 1}}, "m"},
		{[]Factor{{"kg", 1}, {"m", 2}, {"s", -2}}, "kg m^2 s^-2"},
		{[]Factor{{"m", 0}, {"s", -1}}, "s^-1"},
	}
	for _, tt := range tests {
		if got := FormatFactors(tt.factors); got != tt.want {
			t.Errorf("FormatFactors(%v) = %q, want %q", tt.factors, got, tt.want)
		}
	}
}

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		values []float64
		array  bool
		want   string
	}{
		{[]float64{10}, false, "10"},
		{[]float64{6.276}, false, "6.276"},
		{[]float64{1e9}, false, "1e+09"},
		{[]float64{0.1}, false, "0.1"},
		{[]float64{1, 2.5}, true, "[1, 2.5]"},
		{[]float64{3}, true, "[3]"},
	}
	for _, tt := range tests {
		if got := FormatMagnitude(tt.values, tt.array); got != tt.want {
			t.Errorf("FormatMagnitude(%v) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{"1e+09 nm", "[1, 2, 3] kg m^2 s^-2", "0.30000000000000004 J"}
	for _, input := range inputs {
		e, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		out := FormatQuantity(FormatMagnitude(e.Values, e.Array), FormatFactors(e.Factors))
		again, err := Parse(out)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", out, err)
		}
		if !reflect.DeepEqual(e.Values, again.Values) || !reflect.DeepEqual(e.Factors, again.Factors) {
			t.Errorf("round trip %q -> %q changed the expression", input, out)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity("10", "m"); got != "10 m" {
		t.Errorf("FormatQuantity() = %q, want %q", got, "10 m")
	}
	if got := FormatQuantity("3", ""); got != "3" {
		t.Errorf("FormatQuantity() = %q, want %q", got, "3")
	}
}
