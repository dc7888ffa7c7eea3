package util

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const normalizeEpsilon = 1e-6

func Clamp(value, min, max float32) float32 {
	return math32.Min(math32.Max(value, min), max)
}

func InRange(x, min, max float32) bool {
	return x >= min && x <= max
}

func Mix(a, b, factor float32) float32 {
	return a*(1-factor) + factor*b
}

func Lerp3(one, two mgl32.Vec3, factor float32) mgl32.Vec3 {
	return mgl32.Vec3{Mix(one.X(), two.X(), factor), Mix(one.Y(), two.Y(), factor), Mix(one.Z(), two.Z(), factor)}
}

// SafeNormalize reports false for directions too short to normalize without
// blowing up on floating point noise.
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	length := v.Len()
	if length < normalizeEpsilon {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1.0 / length), true
}

func EucledianDistance3D(one, two mgl32.Vec3) float32 {
	return two.Sub(one).Len()
}

// LineToPlaneIntersection returns the parameter along u where the line p+s*u
// crosses the plane through v with normal n. Parallel lines yield MaxFloat32.
func LineToPlaneIntersection(p, u, v, n mgl32.Vec3) float32 {
	NdotU := n.Dot(u)
	if NdotU == 0 {
		return math32.MaxFloat32
	}
	return n.Dot(v.Sub(p)) / NdotU
}
