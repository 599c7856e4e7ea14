// Package game wires the engagement scene together: entity lifecycle,
// guidance, trails, explosions, frame telemetry and the adaptive
// quality loop.
package game

import (
	"log/slog"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/RoeeJ/IronDome-sub005/camera"
	"github.com/RoeeJ/IronDome-sub005/components"
	"github.com/RoeeJ/IronDome-sub005/config"
	"github.com/RoeeJ/IronDome-sub005/quality"
	"github.com/RoeeJ/IronDome-sub005/renderer"
	"github.com/RoeeJ/IronDome-sub005/systems"
	"github.com/RoeeJ/IronDome-sub005/telemetry"
	"github.com/RoeeJ/IronDome-sub005/trail"
)

// DT is the fixed simulation timestep in seconds.
const DT = 1.0 / 60.0

// Fuel burn per airframe kind, in seconds of thrust.
const (
	MissileBurnTime     float32 = 2.0
	InterceptorBurnTime float32 = 4.0
)

// Options configures game construction.
type Options struct {
	Seed           int64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete scene state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	// Entity mappers over the three airframe components
	airframeMapper *ecs.Map3[
		components.Position,
		components.Velocity,
		components.Airframe,
	]
	airframeFilter *ecs.Filter3[
		components.Position,
		components.Velocity,
		components.Airframe,
	]

	// Individual component mappers for lookups
	posMap *ecs.Map1[components.Position]
	airMap *ecs.Map1[components.Airframe]

	// Per-entity side tables keyed by airframe ID
	trails  map[uint32]*trail.Geometry
	targets map[uint32]uint32 // interceptor ID -> missile ID

	// Trails of removed airframes keep fading until every point expires
	fading []*trail.Geometry

	// Battery positions, fixed at construction
	batteries []rl.Vector3

	pool *systems.ExplosionPool

	// Rendering (nil in headless mode)
	renderer *renderer.Renderer
	cam      *camera.Camera

	// Telemetry and adaptive quality
	perf     *telemetry.PerfCollector
	output   *telemetry.OutputManager
	settings quality.Settings
	level    quality.Level

	sampleTimer float64
	logTimer    float64
	launchTimer float64

	// State
	tick           int32
	simTime        float64
	nextID         uint32
	paused         bool
	headless       bool
	stepsPerUpdate int

	// Engagement counters
	missilesDown   int
	missilesLeaked int
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{Seed: 42})
}

// NewGameWithOptions creates a game instance. Config must be
// initialized before calling this.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		world:          world,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		trails:         make(map[uint32]*trail.Geometry),
		targets:        make(map[uint32]uint32),
		settings:       quality.DefaultSettings(),
		level:          quality.LevelHigh,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		airframeMapper: ecs.NewMap3[
			components.Position,
			components.Velocity,
			components.Airframe,
		](world),
		airframeFilter: ecs.NewFilter3[
			components.Position,
			components.Velocity,
			components.Airframe,
		](world),
		posMap: ecs.NewMap1[components.Position](world),
		airMap: ecs.NewMap1[components.Airframe](world),
	}

	g.placeBatteries(cfg.Scene.Batteries, cfg.Scene.WorldRadius)
	g.pool = systems.NewExplosionPool(g.settings, g.rng)
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Warn("telemetry output disabled", "error", err)
	} else {
		g.output = om
	}

	if !opts.Headless {
		g.renderer = renderer.New()
		g.cam = camera.New(cfg.Scene.WorldRadius)
	}

	return g
}

// placeBatteries spreads batteries evenly on a ring inside the
// defended area.
func (g *Game) placeBatteries(count int, worldRadius float32) {
	if count < 1 {
		count = 1
	}
	ringRadius := worldRadius * 0.25
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		g.batteries = append(g.batteries, rl.Vector3{
			X: ringRadius * cosf(angle),
			Z: ringRadius * sinf(angle),
		})
	}
}

// Update runs simulation steps and the frame-level telemetry hooks.
// Used by the graphical loop.
func (g *Game) Update() {
	g.handleInput()

	if !g.paused {
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.step()
		}
	}

	g.samplePerformance(DT * float64(g.stepsPerUpdate))
}

// UpdateHeadless runs simulation steps without any input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
	g.samplePerformance(DT * float64(g.stepsPerUpdate))
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Level returns the current quality level.
func (g *Game) Level() quality.Level {
	return g.level
}

// Settings returns the active performance bundle.
func (g *Game) Settings() quality.Settings {
	return g.settings
}

// Unload releases rendering resources and closes telemetry outputs.
func (g *Game) Unload() {
	if g.renderer != nil {
		g.renderer.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
}
