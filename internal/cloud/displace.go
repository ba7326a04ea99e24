package cloud

import "github.com/chewxy/math32"

// Expansion displacement, mirrored from the vertex shader so CPU-side
// consumers (the terminal preview, snapshot framing) see the same geometry
// the GPU draws.
const (
	// expansionReach is how far a fully expanded point travels along its
	// radial direction, in world units.
	expansionReach = 8.0

	// originEpsilon guards the radial direction at the origin; points
	// closer than this push straight up instead of dividing by zero.
	originEpsilon = 1e-6
)

// Displace returns point i's position after radial expansion. An expansion
// of zero returns the stored position unchanged.
func (ps *PointSet) Displace(i int, expansion float32) (x, y, z float32) {
	x = ps.Positions[3*i]
	y = ps.Positions[3*i+1]
	z = ps.Positions[3*i+2]
	if expansion == 0 {
		return x, y, z
	}
	push := expansion * expansionReach
	length := math32.Sqrt(x*x + y*y + z*z)
	if length <= originEpsilon {
		return x, y + push, z
	}
	inv := push / length
	return x + x*inv, y + y*inv, z + z*inv
}
