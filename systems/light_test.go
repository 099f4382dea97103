package systems

import (
	"testing"

	"github.com/jmallord/canopy/config"
)

func init() {
	config.MustInit("")
	InitGrowthCache()
}

// Default shade coefficient is 0.5.

func TestShadingFactorTallerNeighbor(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 0.5, Z: 0, Size: 1}
	tall := Occluder{ID: 1, X: 0, Y: 1, Z: 0, Size: 2}

	// Full footprint coverage by one taller plant: 1 - 1*0.5.
	got := ShadingFactor(self, []Occluder{self, tall})
	if got != 0.5 {
		t.Errorf("full cover by taller: got %f, want 0.5", got)
	}
}

func TestShadingFactorShorterIgnored(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 1, Z: 0, Size: 2}
	short := Occluder{ID: 1, X: 0, Y: 0.5, Z: 0, Size: 1}

	if got := ShadingFactor(self, []Occluder{self, short}); got != 1 {
		t.Errorf("shorter neighbor should not shade: got %f, want 1", got)
	}
}

func TestShadingFactorEqualHeightIgnored(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 0.5, Z: 0, Size: 1}
	peer := Occluder{ID: 1, X: 0.25, Y: 0.5, Z: 0, Size: 1}

	// Strictly-taller rule: ties never shade.
	if got := ShadingFactor(self, []Occluder{self, peer}); got != 1 {
		t.Errorf("equal-height neighbor should not shade: got %f, want 1", got)
	}
}

func TestShadingFactorDisjointIgnored(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 0.5, Z: 0, Size: 1}
	far := Occluder{ID: 1, X: 10, Y: 5, Z: 0, Size: 4}

	if got := ShadingFactor(self, []Occluder{self, far}); got != 1 {
		t.Errorf("disjoint neighbor should not shade: got %f, want 1", got)
	}
}

func TestShadingFactorMultiplicative(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 0.5, Z: 0, Size: 1}
	a := Occluder{ID: 1, X: 0, Y: 1, Z: 0, Size: 2}
	b := Occluder{ID: 2, X: 0, Y: 2, Z: 0, Size: 3}

	// Two full covers: 0.5 * 0.5.
	got := ShadingFactor(self, []Occluder{self, a, b})
	if got != 0.25 {
		t.Errorf("two occluders: got %f, want 0.25", got)
	}
}

func TestShadingFactorOrderIndependent(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 0.5, Z: 0, Size: 1}
	a := Occluder{ID: 1, X: 0.3, Y: 1, Z: 0, Size: 2}
	b := Occluder{ID: 2, X: -0.2, Y: 2, Z: 0.4, Size: 3}

	fwd := ShadingFactor(self, []Occluder{self, a, b})
	rev := ShadingFactor(self, []Occluder{self, b, a})
	if fwd != rev {
		t.Errorf("order dependence: %f vs %f", fwd, rev)
	}
}

func TestShadingFactorZeroArea(t *testing.T) {
	self := Occluder{ID: 0, X: 0, Y: 0, Z: 0, Size: 0}
	tall := Occluder{ID: 1, X: 0, Y: 5, Z: 0, Size: 4}

	if got := ShadingFactor(self, []Occluder{self, tall}); got != 1 {
		t.Errorf("zero-area self: got %f, want 1", got)
	}
}

func TestOccluderTop(t *testing.T) {
	o := Occluder{Y: 2, Size: 3}
	if got := o.Top(); got != 3.5 {
		t.Errorf("Top: got %f, want 3.5", got)
	}
}
