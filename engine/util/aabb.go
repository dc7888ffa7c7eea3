package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	center  mgl32.Vec3
	extents mgl32.Vec3 // full size per axis
}

func NewAABB(center, extents mgl32.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl32.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}

func (a AABB) Min() mgl32.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl32.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Center() mgl32.Vec3 {
	return a.center
}

func (a AABB) Extents() mgl32.Vec3 {
	return a.extents
}

func (a AABB) Contains(vec3 mgl32.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() >= minVal.X() && vec3.X() <= maxVal.X() &&
		vec3.Y() >= minVal.Y() && vec3.Y() <= maxVal.Y() &&
		vec3.Z() >= minVal.Z() && vec3.Z() <= maxVal.Z()
}

func (a AABB) Overlaps(other AABB) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := other.Min(), other.Max()
	return aMin.X() <= bMax.X() && aMax.X() >= bMin.X() &&
		aMin.Y() <= bMax.Y() && aMax.Y() >= bMin.Y() &&
		aMin.Z() <= bMax.Z() && aMax.Z() >= bMin.Z()
}

// Grown returns the AABB inflated by the given amount on every side.
func (a AABB) Grown(amount float32) AABB {
	return AABB{
		center:  a.center,
		extents: a.extents.Add(mgl32.Vec3{amount * 2, amount * 2, amount * 2}),
	}
}

func (a AABB) MinkowskiDifference(other AABB) AABB {
	minM := other.Min().Sub(a.Max())
	extM := a.extents.Add(other.extents)
	return NewAABBFromMin(minM, extM)
}

// CollisionInfo is the outcome of sweeping the origin through a Minkowski
// box. Result is the hit fraction along the sweep, 1 meaning no contact.
type CollisionInfo struct {
	Result                            float32
	Normal                            mgl32.Vec3
	MinkowskiDifferenceContainsOrigin bool
}

// SweepPoint moves the origin along vel and reports the first crossing of
// the box boundary, one face plane at a time.
// adapted from: https://luisreis.net/blog/aabb_collision_handling/
func SweepPoint(m AABB, vel mgl32.Vec3) CollisionInfo {
	containsOrigin := m.Contains(mgl32.Vec3{})
	h := float32(1.0)
	normal := mgl32.Vec3{}
	var s float32
	nullVec := mgl32.Vec3{}

	// X Min
	s = LineToPlaneIntersection(nullVec, vel, m.Min(), mgl32.Vec3{-1, 0, 0})
	if s >= 0 && vel.X() > 0 && s < h && InRange(s*vel.Y(), m.Min().Y(), m.Max().Y()) && InRange(s*vel.Z(), m.Min().Z(), m.Max().Z()) {
		h = s
		normal = mgl32.Vec3{-1, 0, 0}
	}

	// X Max
	s = LineToPlaneIntersection(nullVec, vel, mgl32.Vec3{m.Max().X(), m.Min().Y(), m.Min().Z()}, mgl32.Vec3{1, 0, 0})
	if s >= 0 && vel.X() < 0 && s < h && InRange(s*vel.Y(), m.Min().Y(), m.Max().Y()) && InRange(s*vel.Z(), m.Min().Z(), m.Max().Z()) {
		h = s
		normal = mgl32.Vec3{1, 0, 0}
	}

	// Y Min
	s = LineToPlaneIntersection(nullVec, vel, m.Min(), mgl32.Vec3{0, -1, 0})
	if s >= 0 && vel.Y() > 0 && s < h && InRange(s*vel.X(), m.Min().X(), m.Max().X()) && InRange(s*vel.Z(), m.Min().Z(), m.Max().Z()) {
		h = s
		normal = mgl32.Vec3{0, -1, 0}
	}

	// Y Max
	s = LineToPlaneIntersection(nullVec, vel, mgl32.Vec3{m.Min().X(), m.Max().Y(), m.Min().Z()}, mgl32.Vec3{0, 1, 0})
	if s >= 0 && vel.Y() < 0 && s < h && InRange(s*vel.X(), m.Min().X(), m.Max().X()) && InRange(s*vel.Z(), m.Min().Z(), m.Max().Z()) {
		h = s
		normal = mgl32.Vec3{0, 1, 0}
	}

	// Z Min
	s = LineToPlaneIntersection(nullVec, vel, m.Min(), mgl32.Vec3{0, 0, -1})
	if s >= 0 && vel.Z() > 0 && s < h && InRange(s*vel.X(), m.Min().X(), m.Max().X()) && InRange(s*vel.Y(), m.Min().Y(), m.Max().Y()) {
		h = s
		normal = mgl32.Vec3{0, 0, -1}
	}

	// Z Max
	s = LineToPlaneIntersection(nullVec, vel, mgl32.Vec3{m.Min().X(), m.Min().Y(), m.Max().Z()}, mgl32.Vec3{0, 0, 1})
	if s >= 0 && vel.Z() < 0 && s < h && InRange(s*vel.X(), m.Min().X(), m.Max().X()) && InRange(s*vel.Y(), m.Min().Y(), m.Max().Y()) {
		h = s
		normal = mgl32.Vec3{0, 0, 1}
	}

	return CollisionInfo{
		Result:                            h,
		Normal:                            normal,
		MinkowskiDifferenceContainsOrigin: containsOrigin,
	}
}

// SweepAABB sweeps a along vel against the static b. A result of 0.5 means
// contact halfway through the displacement, 1 means no contact.
func SweepAABB(a, b AABB, vel mgl32.Vec3) CollisionInfo {
	return SweepPoint(a.MinkowskiDifference(b), vel)
}
