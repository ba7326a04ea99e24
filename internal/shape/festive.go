package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Tree point budget split. Ornaments ride the outer foliage surface and are
// the only tree points that may take a sprite texture; the last starPoints
// points always form the glowing cluster at the apex.
const (
	treeHeight     = 10.0
	treeBaseRadius = 4.6
	treeTiers      = 5
	ornamentEvery  = 8 // ~12% of foliage points
	starPoints     = 100
	starSize       = 2.4
	ornamentSize   = 1.6
)

var ornamentPalette = [3][3]float32{
	{1.0, 0.78, 0.2},   // gold
	{0.85, 0.1, 0.15},  // red
	{0.8, 0.82, 0.88},  // silver
}

// genTree grows a tiered conifer. Foliage is graded darker toward the trunk,
// ornaments get a size override and texture eligibility, and the apex is
// capped by a dense yellow star cluster.
func genTree(rng *rand.Rand, b *Bundle) {
	n := b.Count
	b.Colors = make([]float32, 3*n)
	b.SizeOverrides = make([]float32, n)
	b.TextureEligible = make([]float32, n)

	starStart := n - starPoints
	if starStart < 0 {
		starStart = 0
	}
	for i := range n {
		if i >= starStart {
			// Apex star: tight ball of oversized yellow points.
			p := spherePoint(rng, mgl32.Vec3{0, treeHeight/2 + 0.5, 0}, 0.55)
			b.setPosition(i, p.X(), p.Y(), p.Z())
			b.setColor(i, 1.0, 0.92, 0.25)
			b.SizeOverrides[i] = starSize
			b.TextureEligible[i] = 1
			continue
		}

		f := rng.Float32() // 0 = base, 1 = tip
		y := (f - 0.5) * treeHeight
		limit := treeBaseRadius * (1 - f)
		// Tier ripple: each tier flares out and tucks back in.
		tier := math32.Mod(f*treeTiers, 1)
		limit *= 0.75 + 0.25*(1-tier)

		if i%ornamentEvery == 0 {
			// Ornament hung on the outer surface.
			theta := rng.Float32() * 2 * math32.Pi
			r := limit * (0.92 + rng.Float32()*0.12)
			b.setPosition(i, r*math32.Cos(theta), y, r*math32.Sin(theta))
			c := ornamentPalette[(i/ornamentEvery)%len(ornamentPalette)]
			b.setColor(i, c[0], c[1], c[2])
			b.SizeOverrides[i] = ornamentSize
			b.TextureEligible[i] = 1
			continue
		}

		// Foliage: surface-biased fill, brighter green at the rim.
		theta := rng.Float32() * 2 * math32.Pi
		rf := math32.Pow(rng.Float32(), 0.4)
		r := limit * rf
		b.setPosition(i, r*math32.Cos(theta), y, r*math32.Sin(theta))
		depth := 0.45 + 0.55*rf
		b.setColor(i, 0.05*depth, (0.3+0.42*depth), 0.1*depth)
	}
}

// genSnowflake traces a six-fold dendrite: six main arms with paired side
// branches, over a small hexagonal center plate, nearly flat in z.
func genSnowflake(rng *rand.Rand, b *Bundle) {
	const (
		armLength   = 6.5
		armFuzz     = 0.12
		branchAngle = 0.96 // ~55 degrees off the arm
		branchLen   = 0.35 // fraction of the remaining arm
		plateShare  = 0.1
		plateRadius = 1.1
		halfZ       = 0.15
	)
	plateCount := int(float32(b.Count) * plateShare)
	branchPoints := [3]float32{0.35, 0.55, 0.75} // where side branches sprout
	for i := range b.Count {
		z := (rng.Float32() - 0.5) * 2 * halfZ
		if i < plateCount {
			theta := rng.Float32() * 2 * math32.Pi
			r := plateRadius * math32.Sqrt(rng.Float32())
			b.setPosition(i, r*math32.Cos(theta), r*math32.Sin(theta), z)
			continue
		}

		armTheta := float32(i%6) * (2 * math32.Pi / 6)
		f := rng.Float32()

		// Roughly a third of arm points fork onto a side branch.
		if k := i % 3; k != 0 {
			root := branchPoints[(i/3)%len(branchPoints)]
			if f > root {
				side := branchAngle
				if k == 2 {
					side = -branchAngle
				}
				bf := (f - root) * branchLen / (1 - root)
				x := root*armLength*math32.Cos(armTheta) + bf*armLength*math32.Cos(armTheta+side)
				y := root*armLength*math32.Sin(armTheta) + bf*armLength*math32.Sin(armTheta+side)
				x += (rng.Float32() - 0.5) * armFuzz
				y += (rng.Float32() - 0.5) * armFuzz
				b.setPosition(i, x, y, z)
				continue
			}
		}

		r := f * armLength
		x := r*math32.Cos(armTheta) + (rng.Float32()-0.5)*armFuzz
		y := r*math32.Sin(armTheta) + (rng.Float32()-0.5)*armFuzz
		b.setPosition(i, x, y, z)
	}
}
