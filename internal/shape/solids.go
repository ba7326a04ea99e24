package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// genEgg is a surface of revolution: a unit ball stretched taller than wide,
// with the upper half pinched so the top is narrower than the bottom.
func genEgg(rng *rand.Rand, b *Bundle) {
	const (
		eggRadius = 3.6
		eggTall   = 1.35
		eggPinch  = 0.22
	)
	for i := range b.Count {
		p := spherePoint(rng, mgl32.Vec3{}, eggRadius)
		y := p.Y() * eggTall
		taper := float32(1)
		if y > 0 {
			taper = 1 - eggPinch*(y/(eggRadius*eggTall))
		}
		b.setPosition(i, p.X()*taper, y, p.Z()*taper)
	}
}

// genPumpkin shapes a squashed sphere with eight cosine ribs and plants a
// short stem on top. Roughly 4% of the points go to the stem.
func genPumpkin(rng *rand.Rand, b *Bundle) {
	const (
		pumpkinRadius = 4.6
		pumpkinSquash = 0.72
		ribDepth      = 0.12
		ribs          = 8
		stemShare     = 0.04
		stemHeight    = 1.4
		stemRadius    = 0.45
	)
	stemStart := b.Count - int(float32(b.Count)*stemShare)
	for i := range b.Count {
		if i >= stemStart {
			// Stem: a slightly tilted cylinder above the squashed body.
			h := rng.Float32()
			theta := rng.Float32() * 2 * math32.Pi
			r := stemRadius * math32.Sqrt(rng.Float32())
			b.setPosition(i,
				r*math32.Cos(theta)+h*0.3,
				pumpkinRadius*pumpkinSquash*0.92+h*stemHeight,
				r*math32.Sin(theta),
			)
			continue
		}
		p := spherePoint(rng, mgl32.Vec3{}, pumpkinRadius)
		theta := math32.Atan2(p.Z(), p.X())
		lobe := 1 - ribDepth*math32.Abs(math32.Cos(theta*ribs/2))
		b.setPosition(i, p.X()*lobe, p.Y()*pumpkinSquash, p.Z()*lobe)
	}
}

// genZongzi fills a rounded tetrahedron, the sticky-rice dumpling shape, and
// wraps two thin string bands around it.
func genZongzi(rng *rand.Rand, b *Bundle) {
	const (
		zongziScale = 4.4
		bandShare   = 0.06
		bandWidth   = 0.18
	)
	// Vertices of a regular tetrahedron, centered at the origin.
	verts := [4]mgl32.Vec3{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	bandStart := b.Count - int(float32(b.Count)*bandShare)
	for i := range b.Count {
		// Barycentric fill: four random weights, normalized.
		var w [4]float32
		var sum float32
		for k := range w {
			w[k] = rng.Float32()
			sum += w[k]
		}
		var p mgl32.Vec3
		for k := range w {
			p = p.Add(verts[k].Mul(w[k] / sum))
		}
		p = p.Mul(zongziScale)

		if i >= bandStart {
			// Flatten onto one of two wrapping planes to suggest the tie.
			if i%2 == 0 {
				p[1] = (rng.Float32() - 0.5) * bandWidth
			} else {
				p[0] = (rng.Float32() - 0.5) * bandWidth
			}
			p = p.Mul(1.02)
		}
		b.setPosition(i, p.X(), p.Y(), p.Z())
	}
}

// lanternProfile is the body radius at normalized height t in [0,1]:
// widest at the waist, tucked in toward the caps.
func lanternProfile(t float32) float32 {
	return 0.35 + 0.65*math32.Sin(t*math32.Pi)
}

// genLantern builds a paper lantern: a rejection-sampled body of revolution
// under lanternProfile, flat caps above and below, and a hanging tassel.
// Rejection gives up after a few tries and clamps onto the surface so the
// generator never stalls.
func genLantern(rng *rand.Rand, b *Bundle) {
	const (
		lanternRadius = 3.8
		lanternHeight = 5.4
		capShare      = 0.08
		tasselShare   = 0.05
		tasselLength  = 2.2
		maxTries      = 8
	)
	capStart := b.Count - int(float32(b.Count)*(capShare+tasselShare))
	tasselStart := b.Count - int(float32(b.Count)*tasselShare)
	for i := range b.Count {
		switch {
		case i >= tasselStart:
			// Tassel: thin falling strand from the bottom cap.
			h := rng.Float32()
			theta := rng.Float32() * 2 * math32.Pi
			r := 0.25 * math32.Sqrt(rng.Float32()) * (1 + h*0.5)
			b.setPosition(i,
				r*math32.Cos(theta),
				-lanternHeight/2-h*tasselLength,
				r*math32.Sin(theta),
			)
		case i >= capStart:
			// Caps: two short discs closing the body.
			theta := rng.Float32() * 2 * math32.Pi
			r := lanternRadius * 0.45 * math32.Sqrt(rng.Float32())
			y := lanternHeight / 2
			if i%2 == 0 {
				y = -y
			}
			y += (rng.Float32() - 0.5) * 0.3
			b.setPosition(i, r*math32.Cos(theta), y, r*math32.Sin(theta))
		default:
			t := rng.Float32()
			limit := lanternProfile(t)
			var r float32
			ok := false
			for range maxTries {
				r = math32.Sqrt(rng.Float32())
				if r <= limit {
					ok = true
					break
				}
			}
			if !ok {
				r = limit
			}
			theta := rng.Float32() * 2 * math32.Pi
			b.setPosition(i,
				r*lanternRadius*math32.Cos(theta),
				(t-0.5)*lanternHeight,
				r*lanternRadius*math32.Sin(theta),
			)
		}
	}
}
