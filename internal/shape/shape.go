// Package shape places particles into named 3D formations. Every formation
// is produced by one pure generator registered in a lookup table; generators
// share nothing but the output contract, so adding a formation means adding
// one function and one table entry.
package shape

import (
	"math/rand/v2"
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPoints is the fixed slot capacity of the particle cloud. No generator
// may emit more points than this.
const MaxPoints = 40000

// ProceduralCount is how many points every procedural (non pixel-derived)
// generator fills.
const ProceduralCount = 15000

// fallbackRadius is the radius of the filled sphere used when a shape id is
// unknown or a pixel-derived shape has no pixels to work from.
const fallbackRadius = 5.0

// ID names a particle formation.
type ID int

const (
	Sphere ID = iota
	Heart
	Flower
	Saturn
	Meditator
	DNA
	Fireworks
	Galaxy
	Image
	Text
	Tree
	Snowflake
	Pumpkin
	Lantern
	Zongzi
	Rabbit
	Egg
	Rose
	Bridge
	Flag
	Snake
)

var idNames = map[ID]string{
	Sphere:    "sphere",
	Heart:     "heart",
	Flower:    "flower",
	Saturn:    "saturn",
	Meditator: "meditator",
	DNA:       "dna",
	Fireworks: "fireworks",
	Galaxy:    "galaxy",
	Image:     "image",
	Text:      "text",
	Tree:      "tree",
	Snowflake: "snowflake",
	Pumpkin:   "pumpkin",
	Lantern:   "lantern",
	Zongzi:    "zongzi",
	Rabbit:    "rabbit",
	Egg:       "egg",
	Rose:      "rose",
	Bridge:    "bridge",
	Flag:      "flag",
	Snake:     "snake",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "unknown"
}

// PixelDerived reports whether the formation is built from a pixel buffer
// rather than a closed-form rule.
func (id ID) PixelDerived() bool {
	return id == Image || id == Text
}

// ParseID maps a shape name to its ID. The boolean is false for names that
// name nothing; callers decide whether to fall back or to complain.
func ParseID(name string) (ID, bool) {
	for id, n := range idNames {
		if n == name {
			return id, true
		}
	}
	return Sphere, false
}

// All returns every registered shape id in a stable order.
func All() []ID {
	ids := make([]ID, 0, len(generators))
	for id := range generators {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Bundle is a generator's output. Positions always holds 3*Count floats.
// Colors (3*Count), SizeOverrides (Count) and TextureEligible (Count) are nil
// unless the formation inherently defines them; the assembler fills defaults
// for nil slices.
type Bundle struct {
	Positions       []float32
	Colors          []float32
	SizeOverrides   []float32
	TextureEligible []float32
	Count           int
}

// newProceduralBundle allocates a position-only bundle of the standard
// procedural size.
func newProceduralBundle() Bundle {
	return Bundle{
		Positions: make([]float32, 3*ProceduralCount),
		Count:     ProceduralCount,
	}
}

func (b *Bundle) setPosition(i int, x, y, z float32) {
	b.Positions[3*i+0] = x
	b.Positions[3*i+1] = y
	b.Positions[3*i+2] = z
}

func (b *Bundle) setColor(i int, r, g, bl float32) {
	b.Colors[3*i+0] = r
	b.Colors[3*i+1] = g
	b.Colors[3*i+2] = bl
}

// Generator fills a bundle from the injected random source. Generators must
// tolerate any rng and never panic.
type Generator func(rng *rand.Rand, b *Bundle)

var generators = map[ID]Generator{}

// Register installs gen for id, replacing any previous registration. It is
// intended for init-time wiring and is not safe for concurrent use with
// Generate.
func Register(id ID, gen Generator) {
	generators[id] = gen
}

func init() {
	Register(Sphere, genSphere)
	Register(Heart, genHeart)
	Register(Flower, genFlower)
	Register(Saturn, genSaturn)
	Register(Meditator, genMeditator)
	Register(DNA, genDNA)
	Register(Fireworks, genFireworks)
	Register(Galaxy, genGalaxy)
	Register(Tree, genTree)
	Register(Snowflake, genSnowflake)
	Register(Pumpkin, genPumpkin)
	Register(Lantern, genLantern)
	Register(Zongzi, genZongzi)
	Register(Rabbit, genRabbit)
	Register(Egg, genEgg)
	Register(Rose, genRose)
	Register(Bridge, genBridge)
	Register(Flag, genFlag)
	Register(Snake, genSnake)
}

// Generate produces the attribute bundle for id. Pixel-derived shapes use
// pix when it is non-empty; everything else, including unknown ids and
// pixel-derived shapes without pixels, takes the procedural path. Unknown
// ids fall back to the filled sphere rather than failing: a stale or garbage
// id must never take the cloud down.
func Generate(rng *rand.Rand, id ID, pix *PixelBuffer) Bundle {
	if id.PixelDerived() && !pix.Empty() {
		return generatePixels(rng, pix)
	}
	gen, ok := generators[id]
	if !ok {
		gen = genSphere
	}
	b := newProceduralBundle()
	gen(rng, &b)
	return b
}

// unitVector returns a direction uniformly distributed on the unit sphere.
func unitVector(rng *rand.Rand) mgl32.Vec3 {
	z := 2*rng.Float32() - 1
	theta := 2 * math32.Pi * rng.Float32()
	r := math32.Sqrt(1 - z*z)
	return mgl32.Vec3{r * math32.Cos(theta), r * math32.Sin(theta), z}
}

// spherePoint returns a point uniformly distributed inside a sphere. The
// cube root keeps volumetric density constant instead of clumping at the
// center.
func spherePoint(rng *rand.Rand, center mgl32.Vec3, radius float32) mgl32.Vec3 {
	r := math32.Cbrt(rng.Float32()) * radius
	return center.Add(unitVector(rng).Mul(r))
}

// ellipsoidPoint is spherePoint stretched by per-axis scales.
func ellipsoidPoint(rng *rand.Rand, center mgl32.Vec3, radius float32, scale mgl32.Vec3) mgl32.Vec3 {
	p := unitVector(rng).Mul(math32.Cbrt(rng.Float32()) * radius)
	return center.Add(mgl32.Vec3{p.X() * scale.X(), p.Y() * scale.Y(), p.Z() * scale.Z()})
}

// genSphere is the default formation and the universal fallback: a uniformly
// filled ball of radius 5.
func genSphere(rng *rand.Rand, b *Bundle) {
	for i := range b.Count {
		p := spherePoint(rng, mgl32.Vec3{}, fallbackRadius)
		b.setPosition(i, p.X(), p.Y(), p.Z())
	}
}
