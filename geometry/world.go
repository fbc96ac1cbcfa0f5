// Package geometry provides a static axis-aligned collider world implementing
// the locomotion probe interfaces. It is the reference backend; the simulator
// only depends on the interfaces, so a different physics backend can be
// swapped in without touching movement logic.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/game"
	"github.com/strideworks/stride/locomotion"
)

// Collider is a static box on a set of collision layers.
type Collider struct {
	Box  cube.BBox
	Mask uint32
}

// World is a static collider set. It is safe for the single-consumer,
// frame-stepped access pattern the simulator uses; it has no internal
// synchronization.
type World struct {
	colliders []Collider
}

// NewWorld returns an empty collider world.
func NewWorld() *World {
	return &World{}
}

// AddBox registers a collider on the given layer mask.
func (w *World) AddBox(box cube.BBox, mask uint32) {
	w.colliders = append(w.colliders, Collider{Box: box, Mask: mask})
}

// AddFloor registers a large flat floor whose top surface sits at the given
// height, on the given layer mask.
func (w *World) AddFloor(height float32, mask uint32) {
	w.AddBox(cube.Box(-1e4, height-1, -1e4, 1e4, height, 1e4), mask)
}

// Colliders returns the registered colliders.
func (w *World) Colliders() []Collider {
	return w.colliders
}

// SphereOverlap reports whether a sphere intersects any collider on the given
// layer mask.
func (w *World) SphereOverlap(center mgl32.Vec3, radius float32, mask uint32) bool {
	for _, c := range w.colliders {
		if c.Mask&mask == 0 {
			continue
		}
		if boxPointDistance(c.Box, center) <= radius {
			return true
		}
	}
	return false
}

// SphereCast sweeps a sphere along dir for at most dist and returns the first
// hit. The sweep marches at a fraction of the radius and bisects the final
// interval, which is exact enough for probe distances on the order of the
// capsule height.
func (w *World) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, dist float32, mask uint32) (locomotion.SphereCastHit, bool) {
	dir = game.SafeNormalizeVec3(dir)
	if dir.LenSqr() == 0 || dist <= 0 {
		return locomotion.SphereCastHit{}, false
	}

	step := radius * 0.25
	if step <= 0 {
		return locomotion.SphereCastHit{}, false
	}

	prev := float32(0)
	if w.SphereOverlap(origin, radius, mask) {
		return w.hitAt(origin, radius, mask, 0)
	}

	for t := step; t <= dist+step; t += step {
		if t > dist {
			t = dist
		}
		if w.SphereOverlap(origin.Add(dir.Mul(t)), radius, mask) {
			hitT := bisect(func(x float32) bool {
				return w.SphereOverlap(origin.Add(dir.Mul(x)), radius, mask)
			}, prev, t)
			return w.hitAt(origin.Add(dir.Mul(hitT)), radius, mask, hitT)
		}
		if t == dist {
			break
		}
		prev = t
	}
	return locomotion.SphereCastHit{}, false
}

func (w *World) hitAt(center mgl32.Vec3, radius float32, mask uint32, t float32) (locomotion.SphereCastHit, bool) {
	best := locomotion.SphereCastHit{Distance: t, Normal: mgl32.Vec3{0, 1, 0}}
	bestDist := float32(math32.MaxFloat32)
	for _, c := range w.colliders {
		if c.Mask&mask == 0 {
			continue
		}
		if d := boxPointDistance(c.Box, center); d <= radius && d < bestDist {
			bestDist = d
			best.Normal = boxNormal(c.Box, center)
		}
	}
	if bestDist == math32.MaxFloat32 {
		return locomotion.SphereCastHit{}, false
	}
	return best, true
}

// bisect narrows a hit interval where miss(lo) and hit(hi) hold.
func bisect(hit func(float32) bool, lo, hi float32) float32 {
	for i := 0; i < 12; i++ {
		mid := (lo + hi) / 2
		if hit(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}

// boxPointDistance calculates the distance between a box and a point.
func boxPointDistance(b cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(b.Min().X()-v.X(), math32.Max(0, v.X()-b.Max().X()))
	y := math32.Max(b.Min().Y()-v.Y(), math32.Max(0, v.Y()-b.Max().Y()))
	z := math32.Max(b.Min().Z()-v.Z(), math32.Max(0, v.Z()-b.Max().Z()))
	return math32.Sqrt(x*x + y*y + z*z)
}

// boxNormal returns the axis-aligned surface normal of the box face nearest
// to the given point. Points inside the box resolve to the face of least
// penetration.
func boxNormal(b cube.BBox, p mgl32.Vec3) mgl32.Vec3 {
	clamped := mgl32.Vec3{
		game.ClampFloat(p.X(), b.Min().X(), b.Max().X()),
		game.ClampFloat(p.Y(), b.Min().Y(), b.Max().Y()),
		game.ClampFloat(p.Z(), b.Min().Z(), b.Max().Z()),
	}
	if outward := p.Sub(clamped); outward.LenSqr() > 1e-12 {
		return game.SafeNormalizeVec3(outward)
	}

	faces := [6]float32{
		p.X() - b.Min().X(), b.Max().X() - p.X(),
		p.Y() - b.Min().Y(), b.Max().Y() - p.Y(),
		p.Z() - b.Min().Z(), b.Max().Z() - p.Z(),
	}
	normals := [6]mgl32.Vec3{
		{-1, 0, 0}, {1, 0, 0},
		{0, -1, 0}, {0, 1, 0},
		{0, 0, -1}, {0, 0, 1},
	}
	least := 0
	for i, d := range faces {
		if d < faces[least] {
			least = i
		}
	}
	return normals[least]
}
