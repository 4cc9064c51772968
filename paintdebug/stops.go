package paintdebug

import "image/color"

// Stop is a single position/color pair along a [0,1] ramp.
// Adapted from the teacher's geom.Stop (internal/core/geom/stops.go),
// trimmed to plain fields since paintdebug has no sorting or interface
// requirement beyond the lookup in Stops.At.
type Stop struct {
	Pos   float64
	Color color.Color
}

// Stops is an ordered ramp of ascending positions, sampled by At.
type Stops []Stop

// At returns the color at position t in [0,1], linearly interpolating
// between the two stops straddling t. Grounded on the teacher's
// geom.GetColor/LerpColor (internal/core/geom/colors.go).
func (s Stops) At(t float64) color.Color {
	if len(s) == 0 {
		return color.Black
	}
	if len(s) == 1 {
		return s[0].Color
	}
	if t <= s[0].Pos {
		return s[0].Color
	}
	for i := 1; i < len(s); i++ {
		if t <= s[i].Pos {
			return lerpColor(s[i-1].Color, s[i].Color, norm(t, s[i-1].Pos, s[i].Pos))
		}
	}
	return s[len(s)-1].Color
}

func norm(t, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (t - lo) / (hi - lo)
}

func lerpColor(c1, c2 color.Color, t float64) color.Color {
	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()

	lerp := func(a, b uint32) uint8 {
		return uint8((float64(a>>8) + (float64(b>>8)-float64(a>>8))*t))
	}

	return color.NRGBA{
		R: lerp(r1, r2),
		G: lerp(g1, g2),
		B: lerp(b1, b2),
		A: lerp(a1, a2),
	}
}
