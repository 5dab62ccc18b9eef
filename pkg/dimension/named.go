package dimension

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/unitwiz/pkg/codec"
)

// Named dimensions.
var (
	Length          = Of(BaseLength, 1)
	Mass            = Of(BaseMass, 1)
	Time            = Of(BaseTime, 1)
	Temperature     = Of(BaseTemperature, 1)
	Substance       = Of(BaseSubstance, 1)
	Current         = Of(BaseCurrent, 1)
	Luminosity      = Of(BaseLuminosity, 1)
	Angle           = Of(BaseAngle, 1)
	Area            = Of(BaseLength, 2)
	Volume          = Of(BaseLength, 3)
	Velocity        = Length.Div(Time)
	Acceleration    = Velocity.Div(Time)
	Force           = Mass.Mul(Acceleration)
	Energy          = Force.Mul(Length)
	Power           = Energy.Div(Time)
	Pressure        = Force.Div(Area)
	Frequency       = Of(BaseTime, -1)
	Charge          = Current.Mul(Time)
	Voltage         = Power.Div(Current)
	Density         = Mass.Div(Volume)
	Momentum        = Mass.Mul(Velocity)
	AngularVelocity = Angle.Div(Time)
)

var names = map[string]Dimension{
	"dimensionless":    Dimensionless,
	"length":           Length,
	"mass":             Mass,
	"time":             Time,
	"temperature":      Temperature,
	"substance":        Substance,
	"current":          Current,
	"luminosity":       Luminosity,
	"angle":            Angle,
	"area":             Area,
	"volume":           Volume,
	"velocity":         Velocity,
	"acceleration":     Acceleration,
	"force":            Force,
	"energy":           Energy,
	"power":            Power,
	"pressure":         Pressure,
	"frequency":        Frequency,
	"charge":           Charge,
	"voltage":          Voltage,
	"density":          Density,
	"momentum":         Momentum,
	"angular_velocity": AngularVelocity,
}

// aliases are alternative spellings accepted by Lookup.
var aliases = map[string]string{
	"speed":               "velocity",
	"amount":              "substance",
	"amount_of_substance": "substance",
	"electric_current":    "current",
	"luminous_intensity":  "luminosity",
	"work":                "energy",
	"heat":                "energy",
	"electric_potential":  "voltage",
}

// Lookup returns the named dimension, case-insensitively.
func Lookup(name string) (Dimension, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	d, ok := names[key]
	return d, ok
}

// Name returns the canonical name of d, or "" when d has no name.
func (d Dimension) Name() string {
	for n, v := range names {
		if v == d {
			return n
		}
	}
	return ""
}

// Names returns the sorted canonical dimension names.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Parse reads a dimension from a name ("force") or a base expression in the
// codec grammar, with or without brackets: "[M] [L] [T]^-2",
// "[M]*[L]^2/[T]^2", "L/T". "1" is dimensionless.
func Parse(text string) (Dimension, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Dimensionless, fmt.Errorf("empty dimension")
	}
	if d, ok := Lookup(s); ok {
		return d, nil
	}
	if s == "1" {
		return Dimensionless, nil
	}

	expr, err := codec.ParseUnit(strings.NewReplacer("[", "", "]", "").Replace(s))
	if err != nil {
		return Dimensionless, fmt.Errorf("invalid dimension %q: %w", text, err)
	}
	var d Dimension
	for _, f := range expr.Factors {
		b, ok := lookupBase(f.Symbol)
		if !ok {
			return Dimensionless, fmt.Errorf("invalid dimension %q: unknown base %q", text, f.Symbol)
		}
		d[b] += f.Power
	}
	return d, nil
}
