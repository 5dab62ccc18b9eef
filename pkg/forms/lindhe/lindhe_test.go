package lindhe

import (
	"math"
	"testing"

	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func mustParse(t *testing.T, a *Adapter, text string) Quantity {
	t.Helper()
	q, err := a.ParseQuantity(text)
	if err != nil {
		t.Fatalf("ParseQuantity(%q) error: %v", text, err)
	}
	return q.(Quantity)
}

func TestProbe(t *testing.T) {
	if err := New().Probe(); err != nil {
		t.Errorf("Probe() error: %v", err)
	}
}

func TestTable(t *testing.T) {
	for _, s := range Symbols() {
		e := table[s]
		if e.toSI == nil || e.fromSI == nil || e.kind == "" {
			t.Errorf("table[%q] is incomplete", s)
			continue
		}
		if got := e.fromSI(e.toSI(3)); !near(got, 3) {
			t.Errorf("table[%q] round trip of 3 = %v", s, got)
		}
	}
	for d, s := range siSymbols {
		e, ok := table[s]
		if !ok || e.dim != d {
			t.Errorf("siSymbols[%v] = %q is not a table unit of that dimension", d, s)
			continue
		}
		if d != dimension.Temperature && !near(e.toSI(1), 1) {
			t.Errorf("siSymbols[%v] = %q is not coherent SI", d, s)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	a := New()
	tests := []struct {
		input string
		mag   float64
		unit  string
		kind  string
		dim   dimension.Dimension
	}{
		{"10 m", 10, "m", "length", dimension.Length},
		{"36 km/h", 36, "km/h", "speed", dimension.Velocity},
		{"25 °C", 25, "degC", "temperature", dimension.Temperature},
		{"1.5 kcal", 1.5, "kcal", "energy", dimension.Energy},
		{"2 L", 2, "L", "volume", dimension.Volume},
		{"3", 3, "", "", dimension.Dimensionless},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := mustParse(t, a, tt.input)
			mag, _ := a.Magnitude(q)
			if mag != tt.mag {
				t.Errorf("Magnitude() = %v, want %v", mag, tt.mag)
			}
			if q.unit.String() != tt.unit {
				t.Errorf("unit = %q, want %q", q.unit.String(), tt.unit)
			}
			if q.unit.Kind() != tt.kind {
				t.Errorf("Kind() = %q, want %q", q.unit.Kind(), tt.kind)
			}
			d, _ := a.Dimension(q)
			if d != tt.dim {
				t.Errorf("Dimension() = %v, want %v", d, tt.dim)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	a := New()
	for _, input := range []string{"", "10 furlong", "10 kg m", "[1, m"} {
		_, err := a.ParseQuantity(input)
		if !errors.Is(err, errors.ErrCodeParse) {
			t.Errorf("ParseQuantity(%q) error = %v, want PARSE_ERROR", input, err)
		}
	}
	if _, err := a.ParseUnit(""); !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("ParseUnit(empty) error = %v, want PARSE_ERROR", err)
	}
}

func TestConvert(t *testing.T) {
	a := New()
	tests := []struct {
		from string
		to   string
		want float64
	}{
		{"1.5 kcal", "kJ", 6.276},
		{"1 mi", "ft", 5280},
		{"1 ft", "in", 12},
		{"36 km/h", "m/s", 10},
		{"100 degC", "K", 373.15},
		{"212 degF", "degC", 100},
		{"1 bar", "kPa", 100},
		{"180 deg", "rad", math.Pi},
		{"2 h", "min", 120},
		{"1000 L", "m^3", 1},
		{"2 km", "m", 2000},
		{"25 cm", "mm", 250},
		{"3 kW", "W", 3000},
		{"1 kPa", "Pa", 1000},
		{"1 kcal", "J", 4184},
	}
	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			out, err := a.Convert(mustParse(t, a, tt.from), tt.to)
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			mag, _ := a.Magnitude(out)
			if !near(mag.(float64), tt.want) {
				t.Errorf("Convert(%s, %s) = %v, want %v", tt.from, tt.to, mag, tt.want)
			}
		})
	}
}

func TestConvertMismatch(t *testing.T) {
	a := New()
	if _, err := a.Convert(mustParse(t, a, "1 m"), "s"); !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("Convert(m, s) error = %v, want DIMENSION_MISMATCH", err)
	}
	if _, err := a.Convert(mustParse(t, a, "1"), "s"); !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("Convert(number, s) error = %v, want DIMENSION_MISMATCH", err)
	}
	if _, err := a.Convert("1 m", "s"); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Convert(string) error = %v, want TYPE_MISMATCH", err)
	}
}

func TestArray(t *testing.T) {
	a := New()
	out, err := a.Convert(mustParse(t, a, "[0, 100] degC"), "K")
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	mag, _ := a.Magnitude(out)
	v, ok := mag.([]float64)
	if !ok || len(v) != 2 || !near(v[0], 273.15) || !near(v[1], 373.15) {
		t.Errorf("Convert([0, 100] degC, K) = %v, want [273.15 373.15]", mag)
	}
}

func TestBase(t *testing.T) {
	a := New()
	b, err := a.ToBase(mustParse(t, a, "25 degC"))
	if err != nil {
		t.Fatalf("ToBase error: %v", err)
	}
	if !near(b.Values[0], 298.15) || b.Dimension != dimension.Temperature {
		t.Errorf("ToBase(25 degC) = %v %v, want 298.15 temperature", b.Values, b.Dimension)
	}

	q, err := a.FromBase(forms.ScalarBase(10, dimension.Velocity))
	if err != nil {
		t.Fatalf("FromBase error: %v", err)
	}
	if s, _ := a.String(q); s != "10 m/s" {
		t.Errorf("FromBase(10 velocity) = %q, want %q", s, "10 m/s")
	}

	if _, err := a.FromBase(forms.ScalarBase(1, dimension.Substance)); !errors.Is(err, errors.ErrCodeUnsupportedDimension) {
		t.Errorf("FromBase(substance) error = %v, want UNSUPPORTED_DIMENSION", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	a := New()
	for _, input := range []string{"10 m", "36 km/h", "[1, 2] kJ", "-40 degF", "8"} {
		q := mustParse(t, a, input)
		s, _ := a.String(q)
		back := mustParse(t, a, s)
		b1, _ := a.ToBase(q)
		b2, _ := a.ToBase(back)
		if b1.Dimension != b2.Dimension || !forms.Close(b1.Values, b2.Values, 1e-12, 0) {
			t.Errorf("round trip %q -> %q changed the quantity", input, s)
		}
	}
}
