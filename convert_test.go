package tempconv_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lone-faerie/tempconv"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	var tests = []struct {
		in   float64
		want float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{37, 98.6},
		{-273.15, -459.67},
	}
	for _, tt := range tests {
		got := tempconv.CelsiusToFahrenheit(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v: Wanted %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	var tests = []struct {
		in   float64
		want float64
	}{
		{32, 0},
		{212, 100},
		{-40, -40},
		{98.6, 37},
		{-459.67, -273.15},
	}
	for _, tt := range tests {
		got := tempconv.FahrenheitToCelsius(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v: Wanted %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []float64{-273.15, -40, -17.5, 0, 0.01, 36.6, 100, 451, 999.99, 1000} {
		got := tempconv.FahrenheitToCelsius(tempconv.CelsiusToFahrenheit(c))
		if math.Abs(got-c) > 1e-9 {
			t.Errorf("%v: round trip gave %v", c, got)
		}
	}
}

func TestConvert(t *testing.T) {
	if want, got := 77.0, tempconv.Convert(25, tempconv.Celsius, tempconv.Fahrenheit); got != want {
		t.Errorf("Wanted %v, got %v", want, got)
	}
	if want, got := 100.0, tempconv.Convert(212, tempconv.Fahrenheit, tempconv.Celsius); got != want {
		t.Errorf("Wanted %v, got %v", want, got)
	}
	if want, got := 25.0, tempconv.Convert(25, tempconv.Celsius, tempconv.Celsius); got != want {
		t.Errorf("Wanted %v, got %v", want, got)
	}
}

func TestValidate(t *testing.T) {
	var tests = []struct {
		value float64
		scale tempconv.Scale
		ok    bool
	}{
		{0, tempconv.Celsius, true},
		{-273.15, tempconv.Celsius, true},
		{1000, tempconv.Celsius, true},
		{-273.16, tempconv.Celsius, false},
		{1000.01, tempconv.Celsius, false},
		{32, tempconv.Fahrenheit, true},
		{-459.67, tempconv.Fahrenheit, true},
		{1832, tempconv.Fahrenheit, true},
		{-459.68, tempconv.Fahrenheit, false},
		{1832.01, tempconv.Fahrenheit, false},
	}
	for _, tt := range tests {
		err := tempconv.Validate(tt.value, tt.scale)
		if tt.ok && err != nil {
			t.Errorf("%v%s: unexpected error %v", tt.value, tt.scale, err)
		}
		if !tt.ok {
			var rerr *tempconv.RangeError
			if !errors.As(err, &rerr) {
				t.Errorf("%v%s: wanted RangeError, got %v", tt.value, tt.scale, err)
				continue
			}
			if rerr.Value != tt.value || rerr.Scale != tt.scale {
				t.Errorf("%v%s: error carries %v%s", tt.value, tt.scale, rerr.Value, rerr.Scale)
			}
		}
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := tempconv.Validate(-300, tempconv.Celsius)
	if err == nil {
		t.Fatal("wanted error, got nil")
	}
	if want, got := "invalid celsius temperature: -300", err.Error(); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
}

func TestScaleString(t *testing.T) {
	if want, got := "°C", tempconv.Celsius.String(); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
	if want, got := "°F", tempconv.Fahrenheit.String(); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
	if want, got := "fahrenheit", tempconv.Fahrenheit.Name(); got != want {
		t.Errorf("Wanted %q, got %q", want, got)
	}
}
