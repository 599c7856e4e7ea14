package trail

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var white = rl.Vector3{X: 1, Y: 1, Z: 1}

// Shade evaluates the trail color/alpha for one fragment.
//
// age and intensity are the interpolated per-vertex channels, both
// expected in [0,1] — writers clamp at write time, this function does
// not. base is the trail's base color with components in [0,1]; time is
// the global clock in seconds. The returned color may exceed 1 per
// component (the brightening step is unbounded by design); convert with
// ToColor before handing it to the rasterizer.
//
// The arithmetic order below is load-bearing for visual parity: blend
// toward white first, then brighten by the flicker-modulated glow.
func Shade(age, intensity float32, base rl.Vector3, time float32) (rl.Vector3, float32) {
	freshness := 1 - age
	glow := freshness * freshness * intensity

	// Blend toward a hot white core, capped at 50% blend weight.
	color := rl.Vector3Lerp(base, white, glow*0.5)

	// Bounded flicker in [0.8, 1.0].
	pulse := float32(math.Sin(float64(time*10)))*0.1 + 0.9

	color = rl.Vector3Scale(color, 1+glow*pulse*0.3)

	alpha := (1 - age) * 0.8
	return color, alpha
}

// ToColor converts a shaded color/alpha pair to an 8-bit raylib color,
// clamping each channel to [0,1].
func ToColor(c rl.Vector3, alpha float32) rl.Color {
	return rl.Color{
		R: channelByte(c.X),
		G: channelByte(c.Y),
		B: channelByte(c.Z),
		A: channelByte(alpha),
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
