package main

import (
	"fmt"
	"math"
)

// formatPhase formats an angle in radians, using pi notation when the value
// matches a common fraction. Anything else falls back to %g.
func formatPhase(val float64) string {
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	if math.Abs(val) < 1e-10 {
		return "0"
	}
	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%.4g", val)
}
