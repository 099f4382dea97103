package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jmallord/canopy/components"
	"github.com/jmallord/canopy/config"
)

// ensureCache makes sure config and the growth cache are initialized.
// The package-level init() in light_test.go handles this, but we guard
// here for safety in case tests run in isolation.
func ensureCache() {
	if !cacheInitialized {
		config.MustInit("")
		InitGrowthCache()
	}
}

// uniformSoil returns a 4x4 grid with every resource scalar forced to v.
func uniformSoil(t *testing.T, v float32) *Soil {
	t.Helper()
	ensureCache()
	s, err := NewSoil(4, 1, 0.5, 0.5, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSoil: %v", err)
	}
	for i := range s.Cells {
		c := &s.Cells[i]
		c.Water = v
		c.Nitrogen = v
		c.Phosphorus = v
		c.Potassium = v
	}
	return s
}

// testPlant builds a plant whose unit footprint sits exactly on the
// center of cell (2,2): world position (0.5, 0.5).
func testPlant() (components.Position, components.Body, components.Vitals, components.Traits, components.Tint, components.Uptake, components.Meta) {
	pos := components.Position{X: 0.5, Y: 0.5, Z: 0.5}
	body := components.Body{Size: 1, GrowthRate: 0.02}
	vit := components.Vitals{Health: 1, Age: 0, MaxAge: 100, Alive: true}
	traits := components.Traits{
		PhotosynthEff:      1,
		BaseMaintenance:    0.002,
		MaintenancePerSize: 0.005,
		AdsorptionEff:      0.8,
	}
	return pos, body, vit, traits, liveTint, components.Uptake{}, components.Meta{ID: 3}
}

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestGrowDeadPlantIsNoOp(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	vit.Alive = false
	vit.Health = 0

	before := body
	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	if body != before {
		t.Errorf("dead plant body changed: %+v -> %+v", before, body)
	}
	if vit.Age != 0 {
		t.Errorf("dead plant aged: %f", vit.Age)
	}
	if len(usage) != 0 {
		t.Errorf("dead plant recorded usage: %v", usage)
	}
}

func TestGrowDeadPlantClearsUptake(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	vit.MaxAge = 80
	vit.Age = 79.995

	// Death frame: the plant still draws resources.
	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)
	if vit.Alive {
		t.Fatal("plant should die on this frame")
	}
	if uptake.Intake <= 0 || uptake.Area <= 0 {
		t.Fatalf("death frame should report draws, got intake=%g area=%g", uptake.Intake, uptake.Area)
	}

	// Corpse frame: the reporting totals are per-frame and must read 0,
	// not the last living frame's values.
	usage = make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)
	if uptake.Intake != 0 || uptake.Area != 0 {
		t.Errorf("corpse frame uptake not cleared: intake=%g area=%g", uptake.Intake, uptake.Area)
	}
	if len(usage) != 0 {
		t.Errorf("corpse frame recorded usage: %v", usage)
	}
}

func TestGrowProductionAndSize(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	// Full light and saturated soil: positive net energy, full delta.
	wantSize := float32(1) + 0.02*0.01
	if !approx(body.Size, wantSize, 1e-6) {
		t.Errorf("size: got %f, want %f", body.Size, wantSize)
	}

	if vit.Age != 0.01 {
		t.Errorf("age: got %f, want 0.01", vit.Age)
	}
	if !vit.Alive {
		t.Error("plant should still be alive")
	}
}

func TestGrowDeficitPenalty(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()

	// Zero light kills production; growth continues at the penalty rate.
	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 0, usage, nil)

	wantSize := float32(1) + 0.02*0.01*0.2
	if !approx(body.Size, wantSize, 1e-6) {
		t.Errorf("size under deficit: got %f, want %f", body.Size, wantSize)
	}
	if vit.Health >= 1 {
		t.Errorf("health should drop under deficit, got %f", vit.Health)
	}
}

func TestGrowSizeFloor(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	body.Size = 0.05

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	if body.Size < 0.2 {
		t.Errorf("size below floor: got %f, want >= 0.2", body.Size)
	}
}

func TestGrowTakePartition(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	// Straddle a cell corner so the footprint splits across four cells.
	pos.X, pos.Z = 0, 0

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	// Take-fractions sum to 1: total taken equals demand * adsorption.
	delta := float32(0.02 * 0.01)
	wantTotal := delta * 0.5 * 0.8

	var total float32
	var draws int
	for _, cellDraws := range usage {
		for _, d := range cellDraws {
			if d.PlantID != meta.ID {
				t.Errorf("draw attributed to plant %d, want %d", d.PlantID, meta.ID)
			}
			total += d.Taken
			draws++
		}
	}
	if draws != 4 {
		t.Fatalf("draw count: got %d, want 4", draws)
	}
	if !approx(total, wantTotal, 1e-7) {
		t.Errorf("total taken: got %g, want %g", total, wantTotal)
	}
	if !approx(uptake.Intake, wantTotal, 1e-7) {
		t.Errorf("uptake intake: got %g, want %g", uptake.Intake, wantTotal)
	}
	if !approx(uptake.Area, 1, 1e-6) {
		t.Errorf("uptake area: got %g, want 1", uptake.Area)
	}
}

func TestGrowSoilDepletionFloor(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	idx := 2*4 + 2
	soil.Cells[idx].Water = 0

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	if soil.Cells[idx].Water < 0 {
		t.Errorf("water went negative: %g", soil.Cells[idx].Water)
	}
	if soil.Cells[idx].Nitrogen >= 1 {
		t.Errorf("nitrogen should deplete, got %g", soil.Cells[idx].Nitrogen)
	}
}

func TestGrowZeroOverlapOnlyAges(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	pos.X, pos.Z = 100, 100

	beforeSize := body.Size
	beforeHealth := vit.Health
	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	if body.Size != beforeSize {
		t.Errorf("off-grid plant grew: %f -> %f", beforeSize, body.Size)
	}
	if vit.Health != beforeHealth {
		t.Errorf("off-grid plant health changed: %f -> %f", beforeHealth, vit.Health)
	}
	if vit.Age != 0.01 {
		t.Errorf("off-grid plant should still age: got %f", vit.Age)
	}
	if len(usage) != 0 {
		t.Errorf("off-grid plant recorded usage: %v", usage)
	}
}

func TestGrowDeathByAge(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	vit.MaxAge = 80
	vit.Age = 79.995

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	if vit.Alive {
		t.Errorf("plant at age %f of max 80 should be dead", vit.Age)
	}
}

func TestGrowDeathByHealth(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	vit.Health = 0.0001

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 0, usage, nil)

	if vit.Health != 0 {
		t.Errorf("health should clamp at 0, got %g", vit.Health)
	}
	if vit.Alive {
		t.Error("plant with zero health should be dead")
	}
}

func TestGrowHealthUpperClamp(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()
	body.GrowthRate = 10 // Absurd production, health must still cap at 1.

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	if vit.Health > 1 {
		t.Errorf("health above 1: %g", vit.Health)
	}
}

func TestGrowVerticalPlacement(t *testing.T) {
	soil := uniformSoil(t, 1)
	pos, body, vit, traits, tint, uptake, meta := testPlant()

	usage := make(FrameUsage)
	Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 1, usage, nil)

	// y = size * heightScale / 2 + groundOffset with defaults 5.0, 0.1.
	want := body.Size*5/2 + 0.1
	if !approx(pos.Y, want, 1e-5) {
		t.Errorf("y placement: got %f, want %f", pos.Y, want)
	}
}

func TestGrowBoundedDecline(t *testing.T) {
	// A fully shaded plant on barren soil declines and dies within a
	// bounded number of frames instead of lingering forever.
	soil := uniformSoil(t, 0)
	pos, body, vit, traits, tint, uptake, meta := testPlant()

	frames := 0
	for vit.Alive && frames < 10000 {
		usage := make(FrameUsage)
		Grow(&pos, &body, &vit, traits, &tint, &uptake, meta, soil, 0, usage, nil)
		frames++
	}

	if vit.Alive {
		t.Fatal("starved plant never died")
	}
	if vit.Health != 0 {
		t.Errorf("starved plant should die at zero health, got %g", vit.Health)
	}
}

func TestTintForAge(t *testing.T) {
	ensureCache()
	if got := TintForAge(0.3); got != liveTint {
		t.Errorf("young tint: got %+v, want live tint", got)
	}

	old := TintForAge(0.8)
	if old == liveTint {
		t.Error("senescent plant should not hold the live tint")
	}
	if old.A >= 255 {
		t.Errorf("senescent alpha should fade, got %d", old.A)
	}

	gone := TintForAge(1.0)
	if gone.A != 0 {
		t.Errorf("alpha at end of life: got %d, want 0", gone.A)
	}
}
