package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// genSaturn splits the budget between an oblate planet body (45%) and a flat
// annular ring. Ring radii are drawn area-uniform so density stays even from
// the inner to the outer edge.
func genSaturn(rng *rand.Rand, b *Bundle) {
	const (
		bodyShare    = 0.45
		bodyRadius   = 3.2
		bodyFlatten  = 0.88
		ringInner    = 4.4
		ringOuter    = 7.0
		ringHalfTilt = 0.12
	)
	bodyCount := int(float32(b.Count) * bodyShare)
	for i := range b.Count {
		if i < bodyCount {
			p := spherePoint(rng, mgl32.Vec3{}, bodyRadius)
			b.setPosition(i, p.X(), p.Y()*bodyFlatten, p.Z())
			continue
		}
		u := rng.Float32()
		r := math32.Sqrt(ringInner*ringInner + u*(ringOuter*ringOuter-ringInner*ringInner))
		theta := rng.Float32() * 2 * math32.Pi
		x := r * math32.Cos(theta)
		z := r * math32.Sin(theta)
		y := (rng.Float32() - 0.5) * 0.25
		// Constant tilt so the ring reads as a disc from the default camera.
		b.setPosition(i, x, y+z*ringHalfTilt, z)
	}
}

// genGalaxy scatters three logarithmic spiral arms around a dense core bulge.
// Arm radius runs on the per-arm index fraction, not fresh randomness, so
// consecutive indices stay spatially continuous along each arm and an
// index-keyed gradient sweeps outward from the core.
func genGalaxy(rng *rand.Rand, b *Bundle) {
	const (
		arms       = 3
		galaxyMax  = 7.5
		twist      = 2.6 // radians of wind-up from center to rim
		armSpread  = 0.45
		bulgeShare = 0.22
		bulgeSize  = 1.6
		diskHalfZ  = 0.3
	)
	bulgeCount := int(float32(b.Count) * bulgeShare)
	armPoints := (b.Count - bulgeCount) / arms
	for i := range b.Count {
		if i < bulgeCount {
			p := spherePoint(rng, mgl32.Vec3{}, bulgeSize)
			b.setPosition(i, p.X(), p.Y()*0.7, p.Z())
			continue
		}
		k := i - bulgeCount
		arm := k % arms
		f := float32(k/arms) / float32(armPoints)
		r := galaxyMax * math32.Pow(f, 0.7)
		theta := float32(arm)*(2*math32.Pi/arms) + f*twist
		theta += (rng.Float32() - 0.5) * armSpread * (1.2 - f)

		x := r * math32.Cos(theta)
		z := r * math32.Sin(theta)
		y := (rng.Float32() - 0.5) * 2 * diskHalfZ * (1.1 - f)
		b.setPosition(i, x, y, z)
	}
}

// genFireworks scatters several simultaneous bursts. Each burst is a set of
// radial streaks biased toward the shell, so every explosion reads as an
// expanding sphere of sparks rather than a filled ball.
func genFireworks(rng *rand.Rand, b *Bundle) {
	const (
		bursts      = 6
		burstSpread = 5.0
		burstRadius = 2.6
		shellBias   = 0.35 // exponent < 1 pushes mass outward
	)
	centers := make([]mgl32.Vec3, bursts)
	for k := range centers {
		centers[k] = mgl32.Vec3{
			(rng.Float32() - 0.5) * 2 * burstSpread,
			(rng.Float32() - 0.5) * 2 * burstSpread * 0.7,
			(rng.Float32() - 0.5) * 2 * burstSpread,
		}
	}
	for i := range b.Count {
		c := centers[i%bursts]
		dir := unitVector(rng)
		r := burstRadius * math32.Pow(rng.Float32(), shellBias)
		p := c.Add(dir.Mul(r))
		b.setPosition(i, p.X(), p.Y(), p.Z())
	}
}
