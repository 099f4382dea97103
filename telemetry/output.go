package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/jmallord/canopy/config"
)

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir        string
	plantsFile *os.File
	soilFile   *os.File
	statsFile  *os.File

	// Track if headers have been written
	plantsHeaderWritten bool
	soilHeaderWritten   bool
	statsHeaderWritten  bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	plantsPath := filepath.Join(dir, "plants.csv")
	f, err := os.Create(plantsPath)
	if err != nil {
		return nil, fmt.Errorf("creating plants.csv: %w", err)
	}
	om.plantsFile = f

	soilPath := filepath.Join(dir, "soil.csv")
	f, err = os.Create(soilPath)
	if err != nil {
		om.plantsFile.Close()
		return nil, fmt.Errorf("creating soil.csv: %w", err)
	}
	om.soilFile = f

	statsPath := filepath.Join(dir, "stats.csv")
	f, err = os.Create(statsPath)
	if err != nil {
		om.plantsFile.Close()
		om.soilFile.Close()
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WritePlants appends one frame's plant records to plants.csv.
func (om *OutputManager) WritePlants(rows []PlantRow) error {
	if om == nil || len(rows) == 0 {
		return nil
	}

	if !om.plantsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(rows, om.plantsFile); err != nil {
			return fmt.Errorf("writing plants: %w", err)
		}
		om.plantsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, om.plantsFile); err != nil {
			return fmt.Errorf("writing plants: %w", err)
		}
	}

	return nil
}

// WriteSoil appends one frame's soil records to soil.csv.
func (om *OutputManager) WriteSoil(rows []SoilRow) error {
	if om == nil || len(rows) == 0 {
		return nil
	}

	if !om.soilHeaderWritten {
		if err := gocsv.Marshal(rows, om.soilFile); err != nil {
			return fmt.Errorf("writing soil: %w", err)
		}
		om.soilHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, om.soilFile); err != nil {
			return fmt.Errorf("writing soil: %w", err)
		}
	}

	return nil
}

// WriteStats writes a window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
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

	if om.plantsFile != nil {
		if err := om.plantsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.soilFile != nil {
		if err := om.soilFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.statsFile != nil {
		if err := om.statsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
