package world

import "math"

// Deterministic 2D value noise with octaves, hashed from integer lattice
// points. Output is in [0, 1].

func fade(t float64) float64 {
	// 6t^5 - 15t^4 + 10t^3
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// hash2 is a SplitMix64 finalizer over the lattice point and seed.
func hash2(x, z, seed int64) uint64 {
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, z, seed int64) float64 {
	return float64(hash2(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	fx, fz := fade(x-x0), fade(z-z0)
	ix, iz := int64(x0), int64(z0)

	i0 := lerp(latticeValue(ix, iz, seed), latticeValue(ix+1, iz, seed), fx)
	i1 := lerp(latticeValue(ix, iz+1, seed), latticeValue(ix+1, iz+1, seed), fx)
	return lerp(i0, i1, fz)
}

func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := range octaves {
		sum += valueNoise2D(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

const (
	hillSeed      = 1337
	hillScale     = 1.0 / 12.0
	hillMinHeight = 1
	// HillMaxHeight bounds column height so a full hill chunk stays within
	// the 16-bit mesh index range.
	HillMaxHeight = 8
)

// HillHeight returns the column height of the hills pattern at global x, z.
func HillHeight(x, z int) int {
	n := octaveNoise2D(float64(x)*hillScale, float64(z)*hillScale, hillSeed, 3, 0.5, 2.0)
	h := hillMinHeight + int(n*float64(HillMaxHeight-hillMinHeight+1))
	return min(max(h, hillMinHeight), HillMaxHeight)
}

// hillColor shades columns from dark green at the bottom to sand at the top.
func hillColor(y int) Color {
	t := float64(y) / float64(HillMaxHeight-1)
	return Color{
		uint8(lerp(60, 210, t)),
		uint8(lerp(140, 190, t)),
		uint8(lerp(50, 120, t)),
		255,
	}
}
