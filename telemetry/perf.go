// Package telemetry collects frame timing over a rolling window and
// exports structured records for offline analysis. The smoothed FPS it
// produces is the sample the quality controller consumes.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// PerfCollector tracks frame durations over a rolling window.
type PerfCollector struct {
	windowSize  int
	frames      []float64 // seconds per frame, ring buffer
	writeIndex  int
	sampleCount int

	lastFrameTime time.Time
}

// NewPerfCollector creates a new frame collector.
// windowSize: number of frames to average over (e.g. 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize: windowSize,
		frames:     make([]float64, windowSize),
	}
}

// RecordFrame marks a frame boundary. The first call establishes the
// baseline; each subsequent call records one frame duration.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frames[p.writeIndex] = now.Sub(p.lastFrameTime).Seconds()
		p.writeIndex = (p.writeIndex + 1) % p.windowSize
		if p.sampleCount < p.windowSize {
			p.sampleCount++
		}
	}
	p.lastFrameTime = now
}

// FrameStats holds aggregated frame statistics over the window.
type FrameStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
	P95Frame time.Duration

	// FPS is derived from the mean frame duration over the window.
	FPS float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() FrameStats {
	if p.sampleCount == 0 {
		return FrameStats{}
	}

	valid := make([]float64, p.sampleCount)
	copy(valid, p.frames[:p.sampleCount])

	mean := stat.Mean(valid, nil)

	sorted := make([]float64, len(valid))
	copy(sorted, valid)
	sort.Float64s(sorted)
	p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)

	var fps float64
	if mean > 0 {
		fps = 1 / mean
	}

	return FrameStats{
		AvgFrame: secondsToDuration(mean),
		MinFrame: secondsToDuration(sorted[0]),
		MaxFrame: secondsToDuration(sorted[len(sorted)-1]),
		P95Frame: secondsToDuration(p95),
		FPS:      fps,
	}
}

// SampleCount returns the number of frames currently in the window.
func (p *PerfCollector) SampleCount() int {
	return p.sampleCount
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95Frame.Microseconds()),
		slog.Float64("fps", s.FPS),
	)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	Frame      int64   `csv:"frame"`
	AvgFrameUS int64   `csv:"avg_frame_us"`
	MinFrameUS int64   `csv:"min_frame_us"`
	MaxFrameUS int64   `csv:"max_frame_us"`
	P95FrameUS int64   `csv:"p95_frame_us"`
	FPS        float64 `csv:"fps"`
}

// ToCSV converts FrameStats to a flat CSV-friendly struct.
func (s FrameStats) ToCSV(frame int64) FrameStatsCSV {
	return FrameStatsCSV{
		Frame:      frame,
		AvgFrameUS: s.AvgFrame.Microseconds(),
		MinFrameUS: s.MinFrame.Microseconds(),
		MaxFrameUS: s.MaxFrame.Microseconds(),
		P95FrameUS: s.P95Frame.Microseconds(),
		FPS:        s.FPS,
	}
}
