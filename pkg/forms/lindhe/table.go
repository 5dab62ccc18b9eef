package lindhe

import (
	"github.com/martinlindhe/unit"

	"github.com/matzehuels/unitwiz/pkg/dimension"
)

// entry is one unit of the table. toSI and fromSI convert a value between
// this unit and the coherent SI unit of its dimension.
type entry struct {
	kind   string
	dim    dimension.Dimension
	toSI   func(float64) float64
	fromSI func(float64) float64
}

func linear(kind string, dim dimension.Dimension, factor float64) entry {
	return entry{
		kind:   kind,
		dim:    dim,
		toSI:   func(v float64) float64 { return v * factor },
		fromSI: func(v float64) float64 { return v / factor },
	}
}

// Factors are ratios of the library's typed constants, so every scale comes
// from github.com/martinlindhe/unit.
var table = map[string]entry{
	"m":  linear("length", dimension.Length, float64(unit.Meter/unit.Meter)),
	"km": linear("length", dimension.Length, float64(unit.Kilometer/unit.Meter)),
	"cm": linear("length", dimension.Length, float64(unit.Centimeter/unit.Meter)),
	"mm": linear("length", dimension.Length, float64(unit.Millimeter/unit.Meter)),
	"ft": linear("length", dimension.Length, float64(unit.Foot/unit.Meter)),
	"in": linear("length", dimension.Length, float64(unit.Inch/unit.Meter)),
	"mi": linear("length", dimension.Length, float64(unit.Mile/unit.Meter)),

	"kg": linear("mass", dimension.Mass, float64(unit.Kilogram/unit.Kilogram)),
	"g":  linear("mass", dimension.Mass, float64(unit.Gram/unit.Kilogram)),

	"s":   linear("duration", dimension.Time, float64(unit.Second/unit.Second)),
	"min": linear("duration", dimension.Time, float64(unit.Minute/unit.Second)),
	"h":   linear("duration", dimension.Time, float64(unit.Hour/unit.Second)),

	"J":    linear("energy", dimension.Energy, float64(unit.Joule/unit.Joule)),
	"kJ":   linear("energy", dimension.Energy, float64(unit.Kilojoule/unit.Joule)),
	"kcal": linear("energy", dimension.Energy, float64(unit.Kilocalorie/unit.Joule)),

	"W":  linear("power", dimension.Power, float64(unit.Watt/unit.Watt)),
	"kW": linear("power", dimension.Power, float64(unit.Kilowatt/unit.Watt)),

	"N": linear("force", dimension.Force, float64(unit.Newton/unit.Newton)),

	"Pa":  linear("pressure", dimension.Pressure, float64(unit.Pascal/unit.Pascal)),
	"kPa": linear("pressure", dimension.Pressure, float64(unit.Kilopascal/unit.Pascal)),
	"bar": linear("pressure", dimension.Pressure, float64(unit.Bar/unit.Pascal)),

	"Hz": linear("frequency", dimension.Frequency, float64(unit.Hertz/unit.Hertz)),

	"m/s":  linear("speed", dimension.Velocity, float64(unit.MetersPerSecond/unit.MetersPerSecond)),
	"km/h": linear("speed", dimension.Velocity, float64(unit.KilometersPerHour/unit.MetersPerSecond)),

	"A": linear("current", dimension.Current, float64(unit.Ampere/unit.Ampere)),

	"rad": linear("angle", dimension.Angle, float64(unit.Radian/unit.Radian)),
	"deg": linear("angle", dimension.Angle, float64(unit.Degree/unit.Radian)),

	"m^2": linear("area", dimension.Area, float64(unit.SquareMeter/unit.SquareMeter)),

	"m^3": linear("volume", dimension.Volume, float64(unit.CubicMeter/unit.CubicMeter)),
	"L":   linear("volume", dimension.Volume, float64(unit.Liter/unit.CubicMeter)),

	"K": {
		kind:   "temperature",
		dim:    dimension.Temperature,
		toSI:   func(v float64) float64 { return unit.FromKelvin(v).Kelvin() },
		fromSI: func(k float64) float64 { return unit.FromKelvin(k).Kelvin() },
	},
	"degC": {
		kind:   "temperature",
		dim:    dimension.Temperature,
		toSI:   func(v float64) float64 { return unit.FromCelsius(v).Kelvin() },
		fromSI: func(k float64) float64 { return unit.FromKelvin(k).Celsius() },
	},
	"degF": {
		kind:   "temperature",
		dim:    dimension.Temperature,
		toSI:   func(v float64) float64 { return unit.FromFahrenheit(v).Kelvin() },
		fromSI: func(k float64) float64 { return unit.FromKelvin(k).Fahrenheit() },
	},
}

// aliases are alternative spellings of table symbols.
var aliases = map[string]string{
	"°C":  "degC",
	"°F":  "degF",
	"l":   "L",
	"kph": "km/h",
	"°":   "deg",
	"m²":  "m^2",
	"m³":  "m^3",
	"sec": "s",
	"hr":  "h",
}

// siSymbols is the table symbol of the coherent SI unit per dimension.
var siSymbols = map[dimension.Dimension]string{
	dimension.Length:      "m",
	dimension.Mass:        "kg",
	dimension.Time:        "s",
	dimension.Energy:      "J",
	dimension.Power:       "W",
	dimension.Force:       "N",
	dimension.Pressure:    "Pa",
	dimension.Frequency:   "Hz",
	dimension.Velocity:    "m/s",
	dimension.Current:     "A",
	dimension.Angle:       "rad",
	dimension.Area:        "m^2",
	dimension.Volume:      "m^3",
	dimension.Temperature: "K",
}

func lookup(symbol string) (string, entry, bool) {
	if canonical, ok := aliases[symbol]; ok {
		symbol = canonical
	}
	e, ok := table[symbol]
	return symbol, e, ok
}
