package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3Hz returns the horizontal (XZ) components of a vector.
func Vec3Hz(vec3 mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{vec3.X(), vec3.Z()}
}

// SafeNormalizeVec2 normalizes the given vector, returning the zero vector when
// its length is too small to normalize meaningfully.
func SafeNormalizeVec2(v mgl32.Vec2) mgl32.Vec2 {
	lenSqr := v.LenSqr()
	if lenSqr < 1e-12 {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / math32.Sqrt(lenSqr))
}

// SafeNormalizeVec3 normalizes the given vector, returning the zero vector when
// its length is too small to normalize meaningfully.
func SafeNormalizeVec3(v mgl32.Vec3) mgl32.Vec3 {
	lenSqr := v.LenSqr()
	if lenSqr < 1e-12 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(lenSqr))
}

// ProjectOnPlane projects a vector onto the plane described by the given normal.
func ProjectOnPlane(v, normal mgl32.Vec3) mgl32.Vec3 {
	n := SafeNormalizeVec3(normal)
	return v.Sub(n.Mul(v.Dot(n)))
}

// WrapYawDelta wraps a yaw difference into the (-180, 180] range.
func WrapYawDelta(delta float32) float32 {
	delta = math32.Mod(delta, 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

// DirectionFromYaw returns the horizontal unit direction for the given yaw in
// degrees. Yaw 0 faces +Z and positive yaw turns clockwise viewed from above.
func DirectionFromYaw(yaw float32) mgl32.Vec2 {
	rad := mgl32.DegToRad(yaw)
	return mgl32.Vec2{math32.Sin(rad), math32.Cos(rad)}
}

// YawFromDirection returns the yaw in degrees for a horizontal direction,
// following the DirectionFromYaw convention. A zero direction yields yaw 0.
func YawFromDirection(dir mgl32.Vec2) float32 {
	if dir.LenSqr() < 1e-12 {
		return 0
	}
	return mgl32.RadToDeg(math32.Atan2(dir.X(), dir.Y()))
}

// RotateYawTowards rotates a yaw toward the target along the shorter arc,
// moving at most maxDeg. The target is reached exactly instead of being
// overshot on the final step.
func RotateYawTowards(yaw, target, maxDeg float32) float32 {
	delta := WrapYawDelta(target - yaw)
	if math32.Abs(delta) <= maxDeg {
		return yaw + delta
	}
	if delta > 0 {
		return yaw + maxDeg
	}
	return yaw - maxDeg
}
