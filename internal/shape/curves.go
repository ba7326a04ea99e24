package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// genHeart traces the classic parametric heart curve
//
//	x = 16 sin³t
//	y = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
//
// scaled down to cloud units, with radial jitter so the outline has body and
// a thin z spread so it is not a paper cutout.
func genHeart(rng *rand.Rand, b *Bundle) {
	const (
		heartScale  = 0.4
		heartJitter = 0.15 // +/- fraction of the curve radius
		heartDepth  = 1.2
	)
	for i := range b.Count {
		t := rng.Float32() * 2 * math32.Pi
		sin := math32.Sin(t)
		x := 16 * sin * sin * sin
		y := 13*math32.Cos(t) - 5*math32.Cos(2*t) - 2*math32.Cos(3*t) - math32.Cos(4*t)

		j := 1 + (rng.Float32()*2-1)*heartJitter
		b.setPosition(i,
			x*heartScale*j,
			y*heartScale*j,
			(rng.Float32()-0.5)*heartDepth,
		)
	}
}

// genFlower fills a six-petal rose-curve blossom. Petal radius follows
// |cos(3θ)| sharpened by a power, area-uniform sampling keeps petals evenly
// dense, and a center dome lifts the blossom out of the plane.
func genFlower(rng *rand.Rand, b *Bundle) {
	const (
		flowerRadius = 6.0
		petalPower   = 0.65
		domeHeight   = 1.6
	)
	for i := range b.Count {
		theta := rng.Float32() * 2 * math32.Pi
		petal := math32.Pow(math32.Abs(math32.Cos(3*theta)), petalPower)
		r := flowerRadius * petal * math32.Sqrt(rng.Float32())

		lift := (1 - r/flowerRadius)
		z := domeHeight*lift*rng.Float32() + (rng.Float32()-0.5)*0.3
		b.setPosition(i, r*math32.Cos(theta), r*math32.Sin(theta), z)
	}
}

// genRose builds a cupped rosebud: a golden-angle petal spiral whose radius
// grows outward while the rim curls up, with a rippled edge so individual
// petals read at a distance.
func genRose(rng *rand.Rand, b *Bundle) {
	const (
		roseRadius = 5.2
		roseTurns  = 7
		roseHeight = 2.4
		rippleAmp  = 0.1
	)
	for i := range b.Count {
		f := float32(i) / float32(b.Count)
		theta := f*roseTurns*2*math32.Pi + rng.Float32()*0.25
		r := roseRadius * math32.Pow(f, 0.6)
		r *= 1 + rippleAmp*math32.Sin(9*theta)

		// Inner spiral sits high, outer petals fold down and out.
		z := roseHeight*(1-f*f) - 0.8
		r += (rng.Float32() - 0.5) * 0.5
		z += (rng.Float32() - 0.5) * 0.35

		b.setPosition(i, r*math32.Cos(theta), z, r*math32.Sin(theta))
	}
}
