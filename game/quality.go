package game

import (
	"log/slog"

	"github.com/RoeeJ/IronDome-sub005/config"
	"github.com/RoeeJ/IronDome-sub005/quality"
	"github.com/RoeeJ/IronDome-sub005/telemetry"
)

// samplePerformance records the frame boundary and, on the configured
// cadence, re-derives the quality bundle from the smoothed FPS.
func (g *Game) samplePerformance(dt float64) {
	cfg := config.Cfg()
	g.perf.RecordFrame()

	g.sampleTimer += dt
	if g.sampleTimer >= cfg.Quality.SampleInterval {
		g.sampleTimer -= cfg.Quality.SampleInterval
		if g.perf.SampleCount() > 0 {
			g.applyQuality(g.perf.Stats())
		}
	}

	if cfg.Telemetry.LogInterval > 0 {
		g.logTimer += dt
		if g.logTimer >= cfg.Telemetry.LogInterval {
			g.logTimer -= cfg.Telemetry.LogInterval
			g.logFrameStats()
		}
	}
}

// applyQuality maps the FPS sample to an override and, when the level
// changes, installs the new bundle everywhere in one place. Consumers
// only ever see a complete bundle.
func (g *Game) applyQuality(stats telemetry.FrameStats) {
	override := quality.ForFPS(stats.FPS)
	if override.Level == g.level {
		return
	}

	g.settings = g.settings.Apply(override)
	g.level = override.Level
	g.pool.SetQuality(g.settings)
	if g.renderer != nil {
		g.renderer.SetQuality(g.settings)
	}

	slog.Info("quality level changed",
		"level", g.level.String(),
		"fps", stats.FPS,
		"max_particles", g.settings.Particles.MaxParticlesPerSystem,
		"max_systems", g.settings.Particles.MaxActiveSystems,
		"effect_pool", g.settings.Effects.EffectPoolSize,
	)

	if err := g.output.WriteQualityChange(telemetry.QualityChange{
		Frame:          int64(g.tick),
		FPS:            stats.FPS,
		Level:          g.level.String(),
		MaxParticles:   g.settings.Particles.MaxParticlesPerSystem,
		MaxSystems:     g.settings.Particles.MaxActiveSystems,
		EffectPoolSize: g.settings.Effects.EffectPoolSize,
		SmokeTrails:    g.settings.Effects.EnableSmokeTrails,
		GroundEffects:  g.settings.Effects.EnableGroundEffects,
		Debris:         g.settings.Effects.EnableDebris,
	}); err != nil {
		slog.Warn("writing quality change", "error", err)
	}
}

// logFrameStats emits the window stats via slog and CSV.
func (g *Game) logFrameStats() {
	if g.perf.SampleCount() == 0 {
		return
	}
	stats := g.perf.Stats()

	slog.Info("frame stats",
		"tick", g.tick,
		"stats", stats,
		"active_systems", g.pool.ActiveSystems(),
		"particles", g.pool.ParticleCount(),
		"intercepted", g.missilesDown,
		"leaked", g.missilesLeaked,
	)

	if err := g.output.WriteFrameStats(stats, int64(g.tick)); err != nil {
		slog.Warn("writing frame stats", "error", err)
	}
}
