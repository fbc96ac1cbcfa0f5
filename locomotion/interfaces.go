package locomotion

import "github.com/go-gl/mathgl/mgl32"

// GeometryProvider bridges the collision backend for ground queries. Both
// calls are synchronous and run on the simulation goroutine.
type GeometryProvider interface {
	// SphereOverlap reports whether a sphere intersects any collider on the
	// given layer mask.
	SphereOverlap(center mgl32.Vec3, radius float32, mask uint32) bool

	// SphereCast sweeps a sphere along dir for at most dist and returns the
	// first hit. A miss is a valid result, not an error.
	SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, dist float32, mask uint32) (SphereCastHit, bool)
}

// SphereCastHit describes the first surface a sphere cast touched.
type SphereCastHit struct {
	Distance float32
	Normal   mgl32.Vec3
}
