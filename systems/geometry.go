package systems

import "math"

// OverlapArea returns the intersection area of two axis-aligned squares on
// the soil plane, given by center and half extent. Disjoint squares (and
// squares touching only along an edge) yield zero.
func OverlapArea(ax, az, aHalf, bx, bz, bHalf float32) float32 {
	dx := minf(ax+aHalf, bx+bHalf) - maxf(ax-aHalf, bx-bHalf)
	if dx <= 0 {
		return 0
	}
	dz := minf(az+aHalf, bz+bHalf) - maxf(az-aHalf, bz-bHalf)
	if dz <= 0 {
		return 0
	}
	return dx * dz
}

// OverlapFraction returns the fraction of the cell covered by the plant's
// footprint: intersection area over cell area, clamped to [0,1] to guard
// against floating-point overshoot at exact alignment.
func OverlapFraction(px, pz, pHalf, cx, cz, cHalf float32) float32 {
	cellArea := 4 * cHalf * cHalf
	if cellArea <= 0 {
		return 0
	}
	f := OverlapArea(px, pz, pHalf, cx, cz, cHalf) / cellArea
	return clampf(f, 0, 1)
}

// OccupiedCells appends to dst the indices of grid cells whose bounding box
// could intersect the footprint square centered at (px, pz). The range is a
// conservative axis-aligned bound, clipped to [0, gridSize) on both axes;
// out-of-range candidates are silently dropped. Index encoding is
// z*gridSize + x. World coordinates are centered on the origin.
func OccupiedCells(dst []int, px, pz, half float32, gridSize int, cellSize float32) []int {
	halfGrid := float32(gridSize) * cellSize / 2

	minX := int(math.Floor(float64((px - half + halfGrid) / cellSize)))
	maxX := int(math.Floor(float64((px + half + halfGrid) / cellSize)))
	minZ := int(math.Floor(float64((pz - half + halfGrid) / cellSize)))
	maxZ := int(math.Floor(float64((pz + half + halfGrid) / cellSize)))

	for x := minX; x <= maxX; x++ {
		if x < 0 || x >= gridSize {
			continue
		}
		for z := minZ; z <= maxZ; z++ {
			if z < 0 || z >= gridSize {
				continue
			}
			dst = append(dst, z*gridSize+x)
		}
	}
	return dst
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
