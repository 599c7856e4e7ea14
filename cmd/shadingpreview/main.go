// Trail shading preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/shadingpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/RoeeJ/IronDome-sub005/quality"
	"github.com/RoeeJ/IronDome-sub005/trail"
)

const (
	windowWidth  = 900
	windowHeight = 600
	previewSize  = 400
	panelWidth   = windowWidth - previewSize - 30
)

// ShadingParams holds the trail shading inputs under slider control.
type ShadingParams struct {
	Age       float32
	Intensity float32
	FPS       float32
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Trail Shading Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := ShadingParams{
		Age:       0.2,
		Intensity: 1.0,
		FPS:       60,
	}
	base := rl.Vector3{X: 1.0, Y: 0.55, Z: 0.15}
	animating := true

	var time float32

	for !rl.WindowShouldClose() {
		if animating {
			time += rl.GetFrameTime()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview: a strip of swatches sweeping age from the slider
		// value down to fully expired, so the fade gradient is visible.
		steps := 16
		for i := 0; i < steps; i++ {
			frac := float32(i) / float32(steps-1)
			age := params.Age + (1-params.Age)*frac
			c, alpha := trail.Shade(age, params.Intensity, base, time)

			col := trail.ToColor(c, alpha)
			h := int32(previewSize / steps)
			rl.DrawRectangle(10, 10+int32(i)*h, previewSize, h, col)
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Numeric readout at the slider age
		c, alpha := trail.Shade(params.Age, params.Intensity, base, time)
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("RGB: %.3f %.3f %.3f  Alpha: %.3f", c.X, c.Y, c.Z, alpha), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.1f", time), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Trail Shading Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Age slider
		rl.DrawText("Age (0 = fresh, 1 = expired)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Age = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1",
			params.Age, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Age), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Intensity slider
		rl.DrawText("Intensity (thrust = 1, coast = 0.35)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Intensity = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1",
			params.Intensity, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Intensity), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Animation toggle
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 24}, pulseLabel(animating)) {
			animating = !animating
		}
		panelY += 40

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		// Quality controller section
		rl.DrawText("Quality Controller", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25

		rl.DrawText("FPS sample", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.FPS = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "120",
			params.FPS, 0, 120,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.FPS), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 30

		override := quality.ForFPS(float64(params.FPS))
		settings := quality.DefaultSettings().Apply(override)
		rl.DrawText(fmt.Sprintf("Level: %s", override.Level), int32(panelX), int32(panelY), 16, levelColor(override.Level))
		panelY += 22
		rl.DrawText(fmt.Sprintf("Particles/system: %d  Systems: %d",
			settings.Particles.MaxParticlesPerSystem, settings.Particles.MaxActiveSystems),
			int32(panelX), int32(panelY), 14, rl.DarkGray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("Smoke: %v  Ground: %v  Debris: %v",
			settings.Effects.EnableSmokeTrails, settings.Effects.EnableGroundEffects, settings.Effects.EnableDebris),
			int32(panelX), int32(panelY), 14, rl.DarkGray)
		panelY += 20
		rl.DrawText(fmt.Sprintf("Pool: %d  Bands: %.0f/%.0f/%.0f",
			settings.Effects.EffectPoolSize,
			settings.Particles.LODDistances.Near,
			settings.Particles.LODDistances.Medium,
			settings.Particles.LODDistances.Far),
			int32(panelX), int32(panelY), 14, rl.DarkGray)

		rl.EndDrawing()
	}
}

func pulseLabel(animating bool) string {
	if animating {
		return "Pause pulse"
	}
	return "Animate pulse"
}

func levelColor(l quality.Level) rl.Color {
	switch l {
	case quality.LevelLow:
		return rl.Red
	case quality.LevelMedium:
		return rl.Orange
	}
	return rl.Green
}
