// Package cloud owns the fixed-capacity particle point set: a
// structure-of-arrays of per-point attributes that the renderer uploads
// wholesale, plus the assembler that fills it from a shape bundle, the
// selected color scheme and the photo album.
package cloud

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

// Capacity is the fixed number of point slots. Assembly writes into the
// first ActiveCount slots and the renderer draws exactly that range; the
// remaining slots keep whatever they last held.
const Capacity = shape.MaxPoints

// Persistent per-point jitter ranges. Random sizes multiply the base point
// size; random rotations give every sprite its own phase.
const (
	minRandomSize = 0.4
	maxRandomSize = 1.6
)

// PointSet is the structure-of-arrays holding every per-point attribute.
// All slices are allocated once at Capacity and reused across assemblies,
// so regeneration never allocates.
//
// RandomSizes and RandomRotations are generated once per PointSet and never
// touched again: a shape change must not make the cloud shimmer.
type PointSet struct {
	Positions       []float32 // 3 per point
	Colors          []float32 // 3 per point
	SizeOverrides   []float32 // 0 = no override
	TextureEligible []float32 // 0 or 1
	PhotoFlags      []float32 // 0 or 1
	TextureIndices  []float32 // album slot for photo points
	RandomSizes     []float32
	RandomRotations []float32

	// BaseCount is how many points came from the shape bundle;
	// ActiveCount additionally counts appended photo points.
	BaseCount   int
	ActiveCount int
}

// NewPointSet allocates a point set and rolls its persistent randomness from
// rng.
func NewPointSet(rng *rand.Rand) *PointSet {
	ps := &PointSet{
		Positions:       make([]float32, 3*Capacity),
		Colors:          make([]float32, 3*Capacity),
		SizeOverrides:   make([]float32, Capacity),
		TextureEligible: make([]float32, Capacity),
		PhotoFlags:      make([]float32, Capacity),
		TextureIndices:  make([]float32, Capacity),
		RandomSizes:     make([]float32, Capacity),
		RandomRotations: make([]float32, Capacity),
	}
	for i := range Capacity {
		ps.RandomSizes[i] = minRandomSize + rng.Float32()*(maxRandomSize-minRandomSize)
		ps.RandomRotations[i] = rng.Float32() * 2 * math32.Pi
	}
	return ps
}
