package shape

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// lobe is one ellipsoid blob of a composite figure: center, per-axis radii,
// and its share of the point budget.
type lobe struct {
	center mgl32.Vec3
	scale  mgl32.Vec3
	share  float32
}

// fillLobes distributes bundle indices [start, b.Count) across the lobes
// proportionally to their shares. Shares should sum to 1; the last lobe
// absorbs rounding slack.
func fillLobes(rng *rand.Rand, b *Bundle, start int, lobes []lobe) {
	total := b.Count - start
	i := start
	for k, l := range lobes {
		n := int(float32(total) * l.share)
		if k == len(lobes)-1 {
			n = b.Count - i
		}
		for range n {
			p := ellipsoidPoint(rng, l.center, 1, l.scale)
			b.setPosition(i, p.X(), p.Y(), p.Z())
			i++
		}
	}
}

// genMeditator builds a seated figure in lotus pose. The crossed legs are a
// flattened torus segment; torso, shoulders, head and resting arms are
// ellipsoid lobes stacked above it.
func genMeditator(rng *rand.Rand, b *Bundle) {
	const (
		legShare    = 0.32
		legMajor    = 2.3
		legMinor    = 0.95
		legY        = -2.5
		legFlatten  = 0.6
	)
	legCount := int(float32(b.Count) * legShare)
	for i := range legCount {
		// Torus segment: tube center swept around the seat circle.
		theta := rng.Float32() * 2 * math32.Pi
		phi := rng.Float32() * 2 * math32.Pi
		tube := legMinor * math32.Sqrt(rng.Float32())
		r := legMajor + tube*math32.Cos(phi)
		b.setPosition(i,
			r*math32.Cos(theta),
			legY+tube*math32.Sin(phi)*legFlatten,
			r*math32.Sin(theta)*0.85,
		)
	}
	fillLobes(rng, b, legCount, []lobe{
		{center: mgl32.Vec3{0, -0.4, -0.2}, scale: mgl32.Vec3{1.7, 2.2, 1.3}, share: 0.46},     // torso
		{center: mgl32.Vec3{0, 1.6, -0.2}, scale: mgl32.Vec3{2.0, 0.7, 1.2}, share: 0.12},      // shoulders
		{center: mgl32.Vec3{0, 3.0, 0}, scale: mgl32.Vec3{1.0, 1.15, 1.0}, share: 0.18},        // head
		{center: mgl32.Vec3{-1.9, -1.2, 0.7}, scale: mgl32.Vec3{0.55, 1.5, 0.55}, share: 0.12}, // left arm
		{center: mgl32.Vec3{1.9, -1.2, 0.7}, scale: mgl32.Vec3{0.55, 1.5, 0.55}, share: 0.12},  // right arm
	})
}

// genRabbit composes a sitting rabbit: plump body, head, two long upright
// ears, front paws, and a small round tail.
func genRabbit(rng *rand.Rand, b *Bundle) {
	fillLobes(rng, b, 0, []lobe{
		{center: mgl32.Vec3{0, -1.6, 0}, scale: mgl32.Vec3{2.3, 2.5, 2.1}, share: 0.45},        // body
		{center: mgl32.Vec3{0, 1.4, 0.9}, scale: mgl32.Vec3{1.4, 1.3, 1.3}, share: 0.22},       // head
		{center: mgl32.Vec3{-0.65, 3.6, 0.6}, scale: mgl32.Vec3{0.42, 1.6, 0.42}, share: 0.09}, // left ear
		{center: mgl32.Vec3{0.65, 3.6, 0.6}, scale: mgl32.Vec3{0.42, 1.6, 0.42}, share: 0.09},  // right ear
		{center: mgl32.Vec3{-0.9, -3.2, 1.5}, scale: mgl32.Vec3{0.5, 0.6, 0.8}, share: 0.045},  // left paw
		{center: mgl32.Vec3{0.9, -3.2, 1.5}, scale: mgl32.Vec3{0.5, 0.6, 0.8}, share: 0.045},   // right paw
		{center: mgl32.Vec3{0, -2.2, -2.1}, scale: mgl32.Vec3{0.7, 0.7, 0.7}, share: 0.06},     // tail
	})
}
