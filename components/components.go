// Package components defines ECS components for the plant simulation.
package components

// Position is a plant's world position. X and Z lie on the soil plane,
// Y is derived from size so the stem base rests on the ground.
type Position struct {
	X, Y, Z float32
}

// Body holds a plant's footprint size and its fixed growth rate multiplier.
// Size doubles as the height proxy: the canopy spans [Y-Size/2, Y+Size/2].
type Body struct {
	Size       float32
	GrowthRate float32
}

// Vitals holds mortality state. Alive is a pure function of Health and Age
// and is recomputed every frame after they change.
type Vitals struct {
	Health float32 // [0,1]
	Age    float32
	MaxAge float32
	Alive  bool
}

// Traits holds per-plant efficiency constants drawn at creation.
type Traits struct {
	PhotosynthEff      float32
	BaseMaintenance    float32
	MaintenancePerSize float32
	AdsorptionEff      float32
}

// Tint is the plant's display color. Purely cosmetic: it is derived from
// age fraction each frame and never feeds back into the simulation.
type Tint struct {
	R, G, B, A uint8
}

// Meta holds stable identity. IDs are assigned at creation; dead plants
// keep their slot forever.
type Meta struct {
	ID uint32
}

// Uptake accumulates per-frame reporting totals. Reset at the start of
// each plant's growth update, consumed by the frame's output stage.
type Uptake struct {
	Intake float32 // Sum of amounts taken from soil this frame
	Area   float32 // Sum of cell overlap fractions this frame
}
