package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func cosf(a float64) float32 {
	return float32(math.Cos(a))
}

func sinf(a float64) float32 {
	return float32(math.Sin(a))
}

func distance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// normalizeScale returns v rescaled to the given length, or zero when v
// is degenerate.
func normalizeScale(v rl.Vector3, length float32) rl.Vector3 {
	mag := float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
	if mag < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, length/mag)
}

func midpoint(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a, b), 0.5)
}
