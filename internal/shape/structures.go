package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Suspension bridge proportions. The cable follows the classic parabola
// between tower tops; hangers drop from cable to deck at fixed stations.
const (
	bridgeHalfSpan  = 7.0
	bridgeTowerX    = 3.5
	bridgeDeckY     = -1.0
	bridgeTowerTop  = 3.2
	bridgeTowerBase = -2.5
	bridgeHalfWidth = 0.7
)

func cableHeight(x float32) float32 {
	ax := math32.Abs(x)
	if ax <= bridgeTowerX {
		u := x / bridgeTowerX
		return bridgeDeckY + 0.35 + (bridgeTowerTop-bridgeDeckY-0.35)*u*u
	}
	// Side span: straight run from tower top down to the anchor.
	u := (ax - bridgeTowerX) / (bridgeHalfSpan - bridgeTowerX)
	return bridgeTowerTop + (bridgeDeckY-bridgeTowerTop)*u
}

// genBridge assembles a suspension bridge: deck, two twin-leg towers, a pair
// of parabolic main cables, and vertical hangers on regular stations.
func genBridge(rng *rand.Rand, b *Bundle) {
	const (
		deckShare  = 0.42
		towerShare = 0.18
		cableShare = 0.28
		stations   = 17
	)
	deckEnd := int(float32(b.Count) * deckShare)
	towerEnd := deckEnd + int(float32(b.Count)*towerShare)
	cableEnd := towerEnd + int(float32(b.Count)*cableShare)
	for i := range b.Count {
		switch {
		case i < deckEnd:
			x := (rng.Float32() - 0.5) * 2 * bridgeHalfSpan
			b.setPosition(i,
				x,
				bridgeDeckY+(rng.Float32()-0.5)*0.15,
				(rng.Float32()-0.5)*2*bridgeHalfWidth,
			)
		case i < towerEnd:
			x := bridgeTowerX
			if i%2 == 0 {
				x = -x
			}
			z := bridgeHalfWidth
			if (i/2)%2 == 0 {
				z = -z
			}
			y := bridgeTowerBase + rng.Float32()*(bridgeTowerTop-bridgeTowerBase)
			b.setPosition(i,
				x+(rng.Float32()-0.5)*0.25,
				y,
				z+(rng.Float32()-0.5)*0.2,
			)
		case i < cableEnd:
			x := (rng.Float32() - 0.5) * 2 * bridgeHalfSpan
			z := bridgeHalfWidth
			if i%2 == 0 {
				z = -z
			}
			b.setPosition(i, x, cableHeight(x)+(rng.Float32()-0.5)*0.1, z)
		default:
			// Hanger: vertical drop between cable and deck at its station.
			st := i % stations
			x := -bridgeTowerX + (float32(st)+0.5)/stations*2*bridgeTowerX
			z := bridgeHalfWidth
			if (i/stations)%2 == 0 {
				z = -z
			}
			y := bridgeDeckY + rng.Float32()*(cableHeight(x)-bridgeDeckY)
			b.setPosition(i, x+(rng.Float32()-0.5)*0.05, y, z)
		}
	}
}

// Flag canvas and the five-star canton layout, in cloud units. Star centers
// follow the canonical 30x20 grid construction mapped onto the canvas.
const (
	flagHalfW   = 4.5
	flagHalfH   = 3.0
	flagWaveAmp = 0.6
	starShare   = 0.085 // per-point chance of joining the canton cluster
	bigStarR    = 0.9
	smallStarR  = 0.3
)

var flagStars = [5][2]float32{
	{-3.0, 1.5}, // principal star
	{-1.5, 2.4},
	{-0.9, 1.8},
	{-0.9, 0.9},
	{-1.5, 0.3},
}

// genFlag scatters a waving flag: a red field rippled by a running sine wave
// in z. A per-point random threshold diverts a small share of points into the
// yellow star clusters of the upper hoist canton. Colors come with the bundle
// so the flag keeps its own palette in any color mode.
func genFlag(rng *rand.Rand, b *Bundle) {
	n := b.Count
	b.Colors = make([]float32, 3*n)
	for i := range n {
		var x, y float32
		star := rng.Float32() < starShare
		if star {
			k := rng.IntN(len(flagStars))
			r := bigStarR
			if k > 0 {
				r = smallStarR
			}
			theta := rng.Float32() * 2 * math32.Pi
			rr := r * math32.Sqrt(rng.Float32())
			x = flagStars[k][0] + rr*math32.Cos(theta)
			y = flagStars[k][1] + rr*math32.Sin(theta)
		} else {
			x = (rng.Float32() - 0.5) * 2 * flagHalfW
			y = (rng.Float32() - 0.5) * 2 * flagHalfH
		}
		z := flagWaveAmp * math32.Sin(x*0.9+y*0.3)
		b.setPosition(i, x, y, z)
		if star {
			b.setColor(i, 1.0, 0.85, 0.1)
		} else {
			b.setColor(i, 0.87, 0.12, 0.12)
		}
	}
}
