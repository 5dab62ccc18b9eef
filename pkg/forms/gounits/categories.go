package gounits

import (
	"math"
	"strings"

	units "github.com/bcicen/go-units"

	"github.com/matzehuels/unitwiz/pkg/dimension"
)

// categories maps go-units quantity names to dimensions. Categories that are
// not physical (data sizes) are absent and have no dimension.
var categories = map[string]dimension.Dimension{
	"length":              dimension.Length,
	"distance":            dimension.Length,
	"mass":                dimension.Mass,
	"time":                dimension.Time,
	"temperature":         dimension.Temperature,
	"area":                dimension.Area,
	"volume":              dimension.Volume,
	"energy":              dimension.Energy,
	"power":               dimension.Power,
	"pressure":            dimension.Pressure,
	"force":               dimension.Force,
	"speed":               dimension.Velocity,
	"velocity":            dimension.Velocity,
	"acceleration":        dimension.Acceleration,
	"frequency":           dimension.Frequency,
	"current":             dimension.Current,
	"electric current":    dimension.Current,
	"voltage":             dimension.Voltage,
	"electric potential":  dimension.Voltage,
	"charge":              dimension.Charge,
	"electric charge":     dimension.Charge,
	"angle":               dimension.Angle,
	"amount of substance": dimension.Substance,
	"luminous intensity":  dimension.Luminosity,
}

func categoryDimension(u units.Unit) (dimension.Dimension, bool) {
	d, ok := categories[strings.ToLower(string(u.Quantity))]
	return d, ok
}

type candidate struct {
	name   string
	factor float64
}

// baseCandidates lists, per dimension, unit names tried in order to find a
// go-units unit with a known SI value.
var baseCandidates = map[dimension.Dimension][]candidate{
	dimension.Length:       {{"meter", 1}, {"metre", 1}, {"m", 1}},
	dimension.Mass:         {{"kilogram", 1}, {"kg", 1}, {"gram", 1e-3}, {"g", 1e-3}},
	dimension.Time:         {{"second", 1}, {"s", 1}},
	dimension.Temperature:  {{"kelvin", 1}, {"K", 1}},
	dimension.Area:         {{"square meter", 1}, {"square metre", 1}, {"m²", 1}, {"m2", 1}},
	dimension.Volume:       {{"cubic meter", 1}, {"cubic metre", 1}, {"m³", 1}, {"liter", 1e-3}, {"litre", 1e-3}, {"l", 1e-3}, {"L", 1e-3}},
	dimension.Energy:       {{"joule", 1}, {"J", 1}},
	dimension.Power:        {{"watt", 1}, {"W", 1}},
	dimension.Pressure:     {{"pascal", 1}, {"Pa", 1}, {"bar", 1e5}},
	dimension.Force:        {{"newton", 1}, {"N", 1}},
	dimension.Velocity:     {{"meter per second", 1}, {"meters per second", 1}, {"m/s", 1}, {"kilometer per hour", 1 / 3.6}, {"km/h", 1 / 3.6}},
	dimension.Acceleration: {{"meter per second squared", 1}, {"m/s²", 1}},
	dimension.Frequency:    {{"hertz", 1}, {"Hz", 1}},
	dimension.Current:      {{"ampere", 1}, {"A", 1}},
	dimension.Voltage:      {{"volt", 1}, {"V", 1}},
	dimension.Charge:       {{"coulomb", 1}, {"C", 1}},
	dimension.Angle:        {{"radian", 1}, {"rad", 1}, {"degree", math.Pi / 180}, {"deg", math.Pi / 180}},
	dimension.Substance:    {{"mole", 1}, {"mol", 1}},
	dimension.Luminosity:   {{"candela", 1}, {"cd", 1}},
}
