// Package systems implements the simulation core: the soil grid, footprint
// overlap geometry, canopy light occlusion, and the per-plant growth engine.
package systems

import (
	"fmt"
	"math/rand"
)

// SoilCell is one square of the soil grid. X and Z are the cell's integer
// grid coordinates (stored as floats for rendering and CSV lookup). The
// four resource scalars are depletable and never regenerate; they are
// clamped at zero and carry no upper bound beyond the initial range.
type SoilCell struct {
	X, Z       float32
	Water      float32
	Nitrogen   float32
	Phosphorus float32
	Potassium  float32
}

// Soil is a fixed square grid of soil cells, created once at simulation
// start. Cells are stored row-major: index = z*Size + x.
type Soil struct {
	Size     int
	CellSize float32
	Cells    []SoilCell
}

// NewSoil creates a soil grid of size*size cells. Each resource scalar is
// initialized to fertilityMin + fertilityRange * U[0,1) drawn from rng.
func NewSoil(size int, cellSize float32, fertilityMin, fertilityRange float32, rng *rand.Rand) (*Soil, error) {
	if size <= 0 {
		return nil, fmt.Errorf("soil: grid size must be positive, got %d", size)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("soil: cell size must be positive, got %g", cellSize)
	}

	s := &Soil{
		Size:     size,
		CellSize: cellSize,
		Cells:    make([]SoilCell, size*size),
	}
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			s.Cells[z*size+x] = SoilCell{
				X:          float32(x),
				Z:          float32(z),
				Water:      fertilityMin + rng.Float32()*fertilityRange,
				Nitrogen:   fertilityMin + rng.Float32()*fertilityRange,
				Phosphorus: fertilityMin + rng.Float32()*fertilityRange,
				Potassium:  fertilityMin + rng.Float32()*fertilityRange,
			}
		}
	}
	return s, nil
}

// CellAt returns the cell at grid coordinates (x, z). Coordinates must be
// in [0, Size).
func (s *Soil) CellAt(x, z int) *SoilCell {
	return &s.Cells[z*s.Size+x]
}

// HalfGrid returns half the grid's world extent. World coordinates span
// [-HalfGrid, HalfGrid) on both axes, centered on the origin.
func (s *Soil) HalfGrid() float32 {
	return float32(s.Size) * s.CellSize / 2
}

// CellCenter returns the world-plane center of the cell at the given index.
func (s *Soil) CellCenter(idx int) (cx, cz float32) {
	x := idx % s.Size
	z := idx / s.Size
	half := s.HalfGrid()
	cx = (float32(x)+0.5)*s.CellSize - half
	cz = (float32(z)+0.5)*s.CellSize - half
	return cx, cz
}

// TotalWater returns the summed water scalar across all cells.
func (s *Soil) TotalWater() float64 {
	var sum float64
	for i := range s.Cells {
		sum += float64(s.Cells[i].Water)
	}
	return sum
}

// TotalNutrients returns the summed N+P+K mass across all cells.
func (s *Soil) TotalNutrients() float64 {
	var sum float64
	for i := range s.Cells {
		c := &s.Cells[i]
		sum += float64(c.Nitrogen) + float64(c.Phosphorus) + float64(c.Potassium)
	}
	return sum
}
