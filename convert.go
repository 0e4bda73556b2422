package tempconv

import "strconv"

// A Scale tags a temperature value's unit.
type Scale byte

const (
	Celsius    Scale = 'C'
	Fahrenheit Scale = 'F'
)

// Physical bounds on accepted input, inclusive. Values outside these
// ranges are rejected by [Validate] before conversion.
const (
	MinCelsius    = -273.15
	MaxCelsius    = 1000
	MinFahrenheit = -459.67
	MaxFahrenheit = 1832
)

// String returns the display symbol for the scale, i.e. "°C" or "°F".
func (s Scale) String() string {
	switch s {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	}
	return "°" + string(rune(s))
}

// Name returns the lowercase name of the scale.
func (s Scale) Name() string {
	switch s {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	}
	return string(rune(s))
}

// CelsiusToFahrenheit converts c degrees Celsius to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts f degrees Fahrenheit to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Convert converts v from one scale to the other. Converting a value
// to its own scale returns v unchanged.
func Convert(v float64, from, to Scale) float64 {
	if from == to {
		return v
	}
	switch from {
	case Celsius:
		return CelsiusToFahrenheit(v)
	case Fahrenheit:
		return FahrenheitToCelsius(v)
	}
	panic("tempconv: unknown scale " + string(rune(from)))
}

// A RangeError reports a temperature outside the physical bounds of
// its scale.
type RangeError struct {
	Value float64
	Scale Scale
}

func (e *RangeError) Error() string {
	return "invalid " + e.Scale.Name() + " temperature: " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// Validate reports whether v lies within the physical bounds of s.
// It returns a [*RangeError] carrying the offending value and scale,
// or nil if v is acceptable. Bounds are inclusive.
func Validate(v float64, s Scale) error {
	switch s {
	case Celsius:
		if v < MinCelsius || v > MaxCelsius {
			return &RangeError{v, s}
		}
	case Fahrenheit:
		if v < MinFahrenheit || v > MaxFahrenheit {
			return &RangeError{v, s}
		}
	}
	return nil
}
