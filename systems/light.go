package systems

// Occluder is a frame-start snapshot of one plant's geometry. All shading
// factors for a frame are computed against the same snapshot, before any
// plant's growth update mutates geometry, so light never depends on the
// growth-update order within the frame.
type Occluder struct {
	ID   uint32
	X    float32
	Y    float32
	Z    float32
	Size float32
}

// Top returns the canopy's upper vertical bound.
func (o *Occluder) Top() float32 {
	return o.Y + o.Size/2
}

// ShadingFactor computes the canopy light factor for self against every
// other plant in the snapshot. Each occluder whose footprint overlaps and
// whose canopy top is strictly higher multiplies the factor by
// (1 - overlapFraction * shadeCoefficient), where overlapFraction is the
// overlap area over self's footprint area. Result is clamped to [0,1].
func ShadingFactor(self Occluder, all []Occluder) float32 {
	area := self.Size * self.Size
	if area <= 0 {
		return 1
	}

	selfTop := self.Top()
	light := float32(1)
	for i := range all {
		o := &all[i]
		if o.ID == self.ID {
			continue
		}
		if o.Top() <= selfTop {
			continue
		}
		ov := OverlapArea(self.X, self.Z, self.Size/2, o.X, o.Z, o.Size/2)
		if ov <= 0 {
			continue
		}
		light *= 1 - (ov/area)*cachedShadeCoefficient
	}
	return clampf(light, 0, 1)
}
