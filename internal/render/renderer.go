// Package render owns the OpenGL side of the particle cloud: one shader
// program, one point set resident in two vertex buffers, up to five photo
// textures and an optional sprite texture. It assumes a current GL context
// on the calling goroutine; everything here must run on the render thread.
package render

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cooffer/ZenParticlesBy3D/internal/cloud"
	"github.com/cooffer/ZenParticlesBy3D/internal/shaders"
)

// Camera and projection. The cloud lives in roughly a 16-unit ball, so the
// camera sits far enough back that full expansion stays in frame.
const (
	cameraDistance = 26.0
	fieldOfViewDeg = 45.0
	nearPlane      = 0.1
	farPlane       = 200.0

	// pixelShapeBoost enlarges points of pixel-derived shapes, which pack
	// many more points into a smaller area than procedural ones.
	pixelShapeBoost = 1.6
)

// Dynamic vertex buffer layout: one tightly packed block per attribute,
// each sized for the full capacity so block offsets never move.
const (
	posOffset      = 0
	colorOffset    = posOffset + 3*cloud.Capacity*4
	overrideOffset = colorOffset + 3*cloud.Capacity*4
	eligibleOffset = overrideOffset + cloud.Capacity*4
	photoOffset    = eligibleOffset + cloud.Capacity*4
	texIdxOffset   = photoOffset + cloud.Capacity*4
	dynamicBytes   = texIdxOffset + cloud.Capacity*4

	randSizeOffset = 0
	randRotOffset  = cloud.Capacity * 4
	staticBytes    = 2 * cloud.Capacity * 4
)

// FrameState is everything one frame needs from the outside world.
type FrameState struct {
	Width, Height    int
	DevicePixelRatio float32
	Time             float32
	Expansion        float32
	Rotation         float32
	Zoom             float32
	Scale            float32
	PointSize        float32
	Opacity          float32
	PixelShape       bool
}

type uniforms struct {
	projection int32
	modelView  int32
	time       int32
	expansion  int32
	pointSize  int32
	sizeMult   int32
	dpr        int32
	opacity    int32
	useSprite  int32
	photos     [5]int32
	sprite     int32
}

// Renderer draws the point set. Create with New on the thread holding the
// GL context and keep it there.
type Renderer struct {
	program    uint32
	vao        uint32
	staticVBO  uint32
	dynamicVBO uint32
	uni        uniforms

	count      int32
	photoCount int

	photoTextures []uint32
	spriteTexture uint32
	hasSprite     bool
}

// New compiles the pipeline and uploads the point set's persistent
// randomness. The point set's dynamic attributes are uploaded separately via
// Upload whenever assembly runs.
func New(ps *cloud.PointSet) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}
	logger().Debug("initialized gl", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := shaders.LinkProgram(shaders.ParticleVertex, shaders.ParticleFragment)
	if err != nil {
		return nil, err
	}

	r := &Renderer{program: program}
	r.lookupUniforms()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.dynamicVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dynamicVBO)
	gl.BufferData(gl.ARRAY_BUFFER, dynamicBytes, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, posOffset)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 0, colorOffset)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, 0, overrideOffset)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, 0, eligibleOffset)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(4, 1, gl.FLOAT, false, 0, photoOffset)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointerWithOffset(5, 1, gl.FLOAT, false, 0, texIdxOffset)
	gl.EnableVertexAttribArray(5)

	gl.GenBuffers(1, &r.staticVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.staticVBO)
	staticData := make([]float32, 0, 2*cloud.Capacity)
	staticData = append(staticData, ps.RandomSizes...)
	staticData = append(staticData, ps.RandomRotations...)
	gl.BufferData(gl.ARRAY_BUFFER, staticBytes, gl.Ptr(staticData), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(6, 1, gl.FLOAT, false, 0, randSizeOffset)
	gl.EnableVertexAttribArray(6)
	gl.VertexAttribPointerWithOffset(7, 1, gl.FLOAT, false, 0, randRotOffset)
	gl.EnableVertexAttribArray(7)

	gl.BindVertexArray(0)

	// Samplers bind to fixed texture units for the renderer's lifetime.
	gl.UseProgram(program)
	for i := range r.uni.photos {
		gl.Uniform1i(r.uni.photos[i], int32(i))
	}
	gl.Uniform1i(r.uni.sprite, 5)

	gl.ClearColor(0.01, 0.01, 0.03, 1.0)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return r, nil
}

func (r *Renderer) lookupUniforms() {
	loc := func(name string) int32 {
		return gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	}
	r.uni.projection = loc("uProjection")
	r.uni.modelView = loc("uModelView")
	r.uni.time = loc("uTime")
	r.uni.expansion = loc("uExpansion")
	r.uni.pointSize = loc("uPointSize")
	r.uni.sizeMult = loc("uSizeMultiplier")
	r.uni.dpr = loc("uDevicePixelRatio")
	r.uni.opacity = loc("uOpacity")
	r.uni.useSprite = loc("uUseSprite")
	for i := range r.uni.photos {
		r.uni.photos[i] = loc(fmt.Sprintf("uPhoto%d", i))
	}
	r.uni.sprite = loc("uSprite")
}

// Upload pushes the assembled attributes to the GPU. Only the active range
// of each block moves; block offsets are fixed at capacity.
func (r *Renderer) Upload(ps *cloud.PointSet) {
	n := ps.ActiveCount
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dynamicVBO)
	if n > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, posOffset, 3*n*4, gl.Ptr(ps.Positions))
		gl.BufferSubData(gl.ARRAY_BUFFER, colorOffset, 3*n*4, gl.Ptr(ps.Colors))
		gl.BufferSubData(gl.ARRAY_BUFFER, overrideOffset, n*4, gl.Ptr(ps.SizeOverrides))
		gl.BufferSubData(gl.ARRAY_BUFFER, eligibleOffset, n*4, gl.Ptr(ps.TextureEligible))
		gl.BufferSubData(gl.ARRAY_BUFFER, photoOffset, n*4, gl.Ptr(ps.PhotoFlags))
		gl.BufferSubData(gl.ARRAY_BUFFER, texIdxOffset, n*4, gl.Ptr(ps.TextureIndices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.count = int32(n)
	r.photoCount = ps.ActiveCount - ps.BaseCount
	logger().Debug("uploaded point set", "active", n, "photos", r.photoCount)
}

// SetPhotos replaces the photo textures with the album's current images.
func (r *Renderer) SetPhotos(imgs []*image.RGBA) {
	for _, tex := range r.photoTextures {
		gl.DeleteTextures(1, &tex)
	}
	r.photoTextures = r.photoTextures[:0]
	for _, img := range imgs {
		r.photoTextures = append(r.photoTextures, createTexture(img))
	}
	logger().Debug("bound photo textures", "count", len(r.photoTextures))
}

// SetSprite installs a texture drawn on all texture-eligible, non-photo
// points. Pass nil to go back to the plain disk sprite.
func (r *Renderer) SetSprite(img *image.RGBA) {
	if r.hasSprite {
		gl.DeleteTextures(1, &r.spriteTexture)
		r.hasSprite = false
	}
	if img != nil {
		r.spriteTexture = createTexture(img)
		r.hasSprite = true
	}
}

// Frame clears and draws the active points with the given per-frame state.
// The caller swaps buffers.
func (r *Renderer) Frame(st FrameState) {
	gl.Viewport(0, 0, int32(st.Width), int32(st.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// Additive blending makes overlapping points glow, but it washes out
	// photo texels, so photos flip the cloud to normal alpha.
	if r.photoCount > 0 {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	}

	gl.UseProgram(r.program)

	aspect := float32(1)
	if st.Height > 0 {
		aspect = float32(st.Width) / float32(st.Height)
	}
	projection := mgl32.Perspective(mgl32.DegToRad(fieldOfViewDeg), aspect, nearPlane, farPlane)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, cameraDistance},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	s := st.Scale * st.Zoom
	model := mgl32.HomogRotate3DY(st.Rotation).Mul4(mgl32.Scale3D(s, s, s))
	modelView := view.Mul4(model)

	gl.UniformMatrix4fv(r.uni.projection, 1, false, &projection[0])
	gl.UniformMatrix4fv(r.uni.modelView, 1, false, &modelView[0])
	gl.Uniform1f(r.uni.time, st.Time)
	gl.Uniform1f(r.uni.expansion, st.Expansion)
	gl.Uniform1f(r.uni.pointSize, st.PointSize)
	sizeMult := float32(1)
	if st.PixelShape {
		sizeMult = pixelShapeBoost
	}
	gl.Uniform1f(r.uni.sizeMult, sizeMult)
	dpr := st.DevicePixelRatio
	if dpr <= 0 {
		dpr = 1
	}
	gl.Uniform1f(r.uni.dpr, dpr)
	gl.Uniform1f(r.uni.opacity, st.Opacity)
	useSprite := int32(0)
	if r.hasSprite {
		useSprite = 1
		gl.ActiveTexture(gl.TEXTURE5)
		gl.BindTexture(gl.TEXTURE_2D, r.spriteTexture)
	}
	gl.Uniform1i(r.uni.useSprite, useSprite)

	for i, tex := range r.photoTextures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, r.count)
	gl.BindVertexArray(0)
}

// Destroy releases every GL object the renderer owns.
func (r *Renderer) Destroy() {
	r.SetPhotos(nil)
	r.SetSprite(nil)
	gl.DeleteBuffers(1, &r.dynamicVBO)
	gl.DeleteBuffers(1, &r.staticVBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

func createTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := img.Bounds()
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
