package techcanvas

import (
	"image/color"
	"math"
)

// masteryRamp is the light-to-dark ramp, anchors spaced evenly over [0, 1].
var masteryRamp = [...]color.RGBA{
	{241, 245, 249, 255}, // 0.00
	{203, 213, 225, 255}, // 0.25
	{148, 163, 184, 255}, // 0.50
	{100, 116, 139, 255}, // 0.75
	{51, 80, 85, 255},    // 1.00
}

// MasteryColor maps a mastery value to its display colour by linear
// interpolation between the two nearest ramp anchors. Values outside [0, 1]
// are clamped; NaN maps to the first anchor.
func MasteryColor(mastery float64) color.RGBA {
	if math.IsNaN(mastery) {
		return masteryRamp[0]
	}
	last := len(masteryRamp) - 1
	idx := clamp(mastery, 0, 1) * float64(last)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if hi > last {
		hi = last
	}
	t := idx - float64(lo)

	c1, c2 := masteryRamp[lo], masteryRamp[hi]
	return color.RGBA{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
