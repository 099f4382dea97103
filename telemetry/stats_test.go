package telemetry

import (
	"math"
	"testing"
)

func TestDistribution(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std, p10, p50, p90 := Distribution(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Sample standard deviation of 1..10.
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p10 != 1 {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestDistributionEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("empty distribution should be all zeros: %v %v %v %v %v", mean, std, p10, p50, p90)
	}
}

func TestDistributionSingle(t *testing.T) {
	mean, std, p10, p50, p90 := Distribution([]float64{0.7})
	if mean != 0.7 || p10 != 0.7 || p50 != 0.7 || p90 != 0.7 {
		t.Errorf("single value stats: %v %v %v %v", mean, p10, p50, p90)
	}
	if std != 0 {
		t.Errorf("single value std = %v, want 0", std)
	}
}

func TestDistributionLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	Distribution(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input mutated: %v", values)
	}
}
