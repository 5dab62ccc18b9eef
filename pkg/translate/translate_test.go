package translate

import (
	"testing"

	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/forms/gonum"
	"github.com/matzehuels/unitwiz/pkg/forms/gounits"
	"github.com/matzehuels/unitwiz/pkg/forms/lindhe"
)

func newEngine(t *testing.T) (*Engine, *forms.Registry) {
	t.Helper()
	r := forms.NewRegistryWith(map[forms.Form]forms.Factory{
		forms.Gonum:   func() forms.Adapter { return gonum.New() },
		forms.GoUnits: func() forms.Adapter { return gounits.New() },
		forms.Lindhe:  func() forms.Adapter { return lindhe.New() },
	})
	for _, f := range []forms.Form{forms.Gonum, forms.GoUnits, forms.Lindhe} {
		if err := r.Load(f); err != nil {
			t.Fatalf("Load(%s) error: %v", f, err)
		}
	}
	return New(r), r
}

func adapter(t *testing.T, r *forms.Registry, f forms.Form) forms.Adapter {
	t.Helper()
	a, err := r.Adapter(f)
	if err != nil {
		t.Fatalf("Adapter(%s) error: %v", f, err)
	}
	return a
}

func parse(t *testing.T, r *forms.Registry, f forms.Form, text string) any {
	t.Helper()
	q, err := adapter(t, r, f).ParseQuantity(text)
	if err != nil {
		t.Fatalf("ParseQuantity(%q) in %s error: %v", text, f, err)
	}
	return q
}

func base(t *testing.T, r *forms.Registry, x any) forms.Base {
	t.Helper()
	a, err := r.Owner(x)
	if err != nil {
		t.Fatalf("Owner error: %v", err)
	}
	b, err := a.ToBase(x)
	if err != nil {
		t.Fatalf("ToBase error: %v", err)
	}
	return b
}

func TestTranslateQuantity(t *testing.T) {
	e, r := newEngine(t)
	tests := []struct {
		from  forms.Form
		text  string
		to    forms.Form
		shown string
	}{
		{forms.Gonum, "10 m", forms.GoUnits, ""},
		{forms.Gonum, "1.5 kcal", forms.Lindhe, "1.5 kcal"},
		{forms.Gonum, "36 km/h", forms.Lindhe, "10 m/s"},
		{forms.Lindhe, "25 degC", forms.Gonum, "298.15 K"},
		{forms.GoUnits, "3 kilometer", forms.Gonum, "3 kilometer"},
		{forms.Lindhe, "[1, 2] h", forms.Gonum, "[1, 2] h"},
		{forms.Gonum, "4", forms.Lindhe, "4"},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" "+tt.text+" to "+string(tt.to), func(t *testing.T) {
			q := parse(t, r, tt.from, tt.text)
			out, err := e.Translate(q, tt.to)
			if err != nil {
				t.Fatalf("Translate error: %v", err)
			}
			dst := adapter(t, r, tt.to)
			if !dst.IsQuantity(out) {
				t.Fatalf("Translate() = %T, want a %s quantity", out, tt.to)
			}
			want, got := base(t, r, q), base(t, r, out)
			if got.Dimension != want.Dimension || !forms.Close(got.Values, want.Values, 1e-9, 0) {
				t.Errorf("Translate() base = %v %v, want %v %v", got.Values, got.Dimension, want.Values, want.Dimension)
			}
			if tt.shown == "" {
				return
			}
			s, _ := dst.String(out)
			back, err := dst.ParseQuantity(s)
			if err != nil {
				t.Fatalf("target cannot parse %q: %v", s, err)
			}
			if b := base(t, r, back); !forms.Close(b.Values, want.Values, 1e-9, 0) {
				t.Errorf("String() = %q does not parse back to the same quantity", s)
			}
			if ws := base(t, r, parse(t, r, tt.to, tt.shown)); !forms.Close(ws.Values, want.Values, 1e-9, 0) {
				t.Errorf("String() = %q, want a value equal to %q", s, tt.shown)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	e, r := newEngine(t)
	all := []forms.Form{forms.Gonum, forms.GoUnits, forms.Lindhe}
	tests := []struct {
		from forms.Form
		text string
		dim  dimension.Dimension
	}{
		{forms.Gonum, "2.5 km", dimension.Length},
		{forms.Gonum, "1.5 kcal", dimension.Energy},
		{forms.Gonum, "36 km/h", dimension.Velocity},
		{forms.Gonum, "300 K", dimension.Temperature},
		{forms.Gonum, "[1, 2.5, 4] s", dimension.Time},
		{forms.Gonum, "4", dimension.Dimensionless},
		{forms.GoUnits, "25 celsius", dimension.Temperature},
		{forms.GoUnits, "3 kilometer", dimension.Length},
		{forms.GoUnits, "[2, 3] minute", dimension.Time},
		{forms.GoUnits, "7", dimension.Dimensionless},
		{forms.Lindhe, "25 degC", dimension.Temperature},
		{forms.Lindhe, "-40 degF", dimension.Temperature},
		{forms.Lindhe, "2 kJ", dimension.Energy},
		{forms.Lindhe, "10 m/s", dimension.Velocity},
		{forms.Lindhe, "[1, 2] mi", dimension.Length},
		{forms.Lindhe, "0.5", dimension.Dimensionless},
	}

	for _, tt := range tests {
		for _, to := range all {
			if to == tt.from {
				continue
			}
			t.Run(string(tt.from)+" "+tt.text+" via "+string(to), func(t *testing.T) {
				q := parse(t, r, tt.from, tt.text)
				there, err := e.Translate(q, to)
				if errors.Is(err, errors.ErrCodeUnsupportedDimension) {
					// The target has no unit for this dimension at all.
					if _, ferr := adapter(t, r, to).FromBase(forms.ScalarBase(1, tt.dim)); ferr == nil {
						t.Fatalf("Translate() = %v, but %s can express %v", err, to, tt.dim)
					}
					return
				}
				if err != nil {
					t.Fatalf("Translate(%s -> %s) error: %v", tt.from, to, err)
				}
				d, err := adapter(t, r, to).Dimension(there)
				if err != nil {
					t.Fatalf("Dimension error: %v", err)
				}
				if d != tt.dim {
					t.Errorf("Dimension(Translate()) = %v, want %v", d, tt.dim)
				}

				back, err := e.Translate(there, tt.from)
				if err != nil {
					t.Fatalf("Translate(%s -> %s) error: %v", to, tt.from, err)
				}
				b1, b2 := base(t, r, q), base(t, r, back)
				if b2.Dimension != tt.dim || b1.Array != b2.Array || !forms.Close(b1.Values, b2.Values, 1e-9, 1e-12) {
					t.Errorf("round trip = %v %v, want %v %v", b2.Values, b2.Dimension, b1.Values, b1.Dimension)
				}
			})
		}
	}
}

func TestSameForm(t *testing.T) {
	e, r := newEngine(t)
	q := parse(t, r, forms.Lindhe, "10 m")
	out, err := e.Translate(q, forms.Lindhe)
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if out != q {
		t.Errorf("Translate(same form) = %v, want the input", out)
	}
}

func TestTranslateUnit(t *testing.T) {
	e, r := newEngine(t)
	g := adapter(t, r, forms.Gonum)
	l := adapter(t, r, forms.Lindhe)

	tests := []struct {
		unit string
		want string
	}{
		{"km", "km"},
		{"m s^-1", "m/s"},
		{"kg m^2 s^-2", "J"},
	}
	for _, tt := range tests {
		u, err := g.ParseUnit(tt.unit)
		if err != nil {
			t.Fatalf("ParseUnit(%q) error: %v", tt.unit, err)
		}
		out, err := e.Translate(u, forms.Lindhe)
		if err != nil {
			t.Fatalf("Translate(%q) error: %v", tt.unit, err)
		}
		if !l.IsUnit(out) {
			t.Fatalf("Translate(%q) = %T, want a lindhe unit", tt.unit, out)
		}
		if s, _ := l.String(out); s != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.unit, s, tt.want)
		}
	}

	u, _ := g.ParseUnit("mm s^-1")
	if _, err := e.Translate(u, forms.Lindhe); !errors.Is(err, errors.ErrCodeUnsupportedUnit) {
		t.Errorf("Translate(mm s^-1) error = %v, want UNSUPPORTED_UNIT", err)
	}
}

func TestErrors(t *testing.T) {
	e, r := newEngine(t)

	q := parse(t, r, forms.Gonum, "1 mol")
	if _, err := e.Translate(q, forms.Lindhe); !errors.Is(err, errors.ErrCodeUnsupportedDimension) {
		t.Errorf("Translate(mol -> lindhe) error = %v, want UNSUPPORTED_DIMENSION", err)
	}
	if _, err := e.Translate(3.0, forms.Gonum); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("Translate(float) error = %v, want TYPE_MISMATCH", err)
	}
	if err := r.Unload(forms.GoUnits); err != nil {
		t.Fatalf("Unload error: %v", err)
	}
	if _, err := e.Translate(q, forms.GoUnits); !errors.Is(err, errors.ErrCodeInvalidForm) {
		t.Errorf("Translate(to unloaded) error = %v, want INVALID_FORM", err)
	}
}

func TestDecompose(t *testing.T) {
	e, r := newEngine(t)
	in, err := e.Decompose(parse(t, r, forms.Gonum, "5 N"))
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}
	if in.Expr != "5 m kg s^-2" {
		t.Errorf("Expr = %q, want %q", in.Expr, "5 m kg s^-2")
	}
	if in.Base.Dimension != dimension.Force {
		t.Errorf("Dimension = %v, want force", in.Base.Dimension)
	}

	u, _ := adapter(t, r, forms.Lindhe).ParseUnit("km")
	in, err = e.Decompose(u)
	if err != nil {
		t.Fatalf("Decompose(unit) error: %v", err)
	}
	if in.Expr != "1000 m" {
		t.Errorf("Expr = %q, want %q", in.Expr, "1000 m")
	}
}
