package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// QualityChange is one quality re-derivation event for CSV export.
type QualityChange struct {
	Frame          int64   `csv:"frame"`
	FPS            float64 `csv:"fps"`
	Level          string  `csv:"level"`
	MaxParticles   int     `csv:"max_particles_per_system"`
	MaxSystems     int     `csv:"max_active_systems"`
	EffectPoolSize int     `csv:"effect_pool_size"`
	SmokeTrails    bool    `csv:"smoke_trails"`
	GroundEffects  bool    `csv:"ground_effects"`
	Debris         bool    `csv:"debris"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir         string
	framesFile  *os.File
	qualityFile *os.File

	// Track if headers have been written
	framesHeaderWritten  bool
	qualityHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	framesPath := filepath.Join(dir, "frames.csv")
	f, err := os.Create(framesPath)
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f

	qualityPath := filepath.Join(dir, "quality.csv")
	f, err = os.Create(qualityPath)
	if err != nil {
		om.framesFile.Close()
		return nil, fmt.Errorf("creating quality.csv: %w", err)
	}
	om.qualityFile = f

	return om, nil
}

// WriteFrameStats writes a window stats record to frames.csv.
func (om *OutputManager) WriteFrameStats(stats FrameStats, frame int64) error {
	if om == nil {
		return nil
	}

	records := []FrameStatsCSV{stats.ToCSV(frame)}

	if !om.framesHeaderWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
		om.framesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
	}

	return nil
}

// WriteQualityChange writes a quality re-derivation record to quality.csv.
func (om *OutputManager) WriteQualityChange(qc QualityChange) error {
	if om == nil {
		return nil
	}

	records := []QualityChange{qc}

	if !om.qualityHeaderWritten {
		if err := gocsv.Marshal(records, om.qualityFile); err != nil {
			return fmt.Errorf("writing quality change: %w", err)
		}
		om.qualityHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.qualityFile); err != nil {
			return fmt.Errorf("writing quality change: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.framesFile != nil {
		if err := om.framesFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.qualityFile != nil {
		if err := om.qualityFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
