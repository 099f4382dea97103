package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Grid.Size != 40 {
		t.Errorf("grid size: got %d, want 40", cfg.Grid.Size)
	}
	if cfg.Grid.CellSize != 1.0 {
		t.Errorf("cell size: got %g, want 1.0", cfg.Grid.CellSize)
	}
	if cfg.Population.Plants != 60 {
		t.Errorf("plants: got %d, want 60", cfg.Population.Plants)
	}
	if cfg.Engine.ShadeCoefficient != 0.5 {
		t.Errorf("shade coefficient: got %g, want 0.5", cfg.Engine.ShadeCoefficient)
	}
	if cfg.Soil.FertilityMin != 0.5 || cfg.Soil.FertilityRange != 0.5 {
		t.Errorf("soil fertility: got %g + %g, want 0.5 + 0.5", cfg.Soil.FertilityMin, cfg.Soil.FertilityRange)
	}
}

func TestLoadComputesDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Derived.CellSize32 != 1.0 {
		t.Errorf("derived cell size: got %g, want 1.0", cfg.Derived.CellSize32)
	}
	if cfg.Derived.HalfGrid != 20 {
		t.Errorf("derived half grid: got %g, want 20", cfg.Derived.HalfGrid)
	}
	if cfg.Derived.HeightScale != 5.0 {
		t.Errorf("derived height scale: got %g, want 5.0", cfg.Derived.HeightScale)
	}
}

func TestLoadUserOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "grid:\n  size: 16\npopulation:\n  plants: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Grid.Size != 16 {
		t.Errorf("overridden grid size: got %d, want 16", cfg.Grid.Size)
	}
	if cfg.Population.Plants != 5 {
		t.Errorf("overridden plants: got %d, want 5", cfg.Population.Plants)
	}
	// Untouched fields keep their defaults.
	if cfg.Engine.GrowthScale != 0.01 {
		t.Errorf("default growth scale lost: got %g", cfg.Engine.GrowthScale)
	}
	if cfg.Derived.HalfGrid != 8 {
		t.Errorf("derived half grid after override: got %g, want 8", cfg.Derived.HalfGrid)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		yaml string
	}{
		{"zero grid", "grid:\n  size: 0\n"},
		{"negative grid", "grid:\n  size: -4\n"},
		{"zero cell size", "grid:\n  cell_size: 0\n"},
		{"negative plants", "population:\n  plants: -1\n"},
	}

	for _, tc := range cases {
		path := filepath.Join(dir, tc.name+".yaml")
		if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("missing file should error")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	cfg.Grid.Size = 24

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Grid.Size != 24 {
		t.Errorf("round trip grid size: got %d, want 24", reloaded.Grid.Size)
	}
}
