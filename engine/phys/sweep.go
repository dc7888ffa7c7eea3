package phys

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/util"
)

const (
	touchEpsilon        = 1e-5
	hullSweepBisections = 20
)

// sweepSphereSphere is a ray against the Minkowski sum of both spheres.
func (w *World) sweepSphereSphere(from, unit mgl32.Vec3, maxDistance, radius float32, o *Obstacle) (SweepHit, bool) {
	m := from.Sub(o.Position)
	r := radius + o.Shape.Radius
	c := m.Dot(m) - r*r
	if c <= 0 {
		// already overlapping at the start of the sweep
		normal, ok := util.SafeNormalize(m)
		if !ok {
			normal = mgl32.Vec3{0, 1, 0} // zero-distance overlap, push up
		}
		return SweepHit{
			Obstacle: o,
			Distance: 0,
			Normal:   normal,
			Point:    o.Position.Add(normal.Mul(o.Shape.Radius)),
		}, true
	}
	b := m.Dot(unit)
	if b > 0 {
		return SweepHit{}, false // moving away
	}
	discriminant := b*b - c
	if discriminant < 0 {
		return SweepHit{}, false
	}
	t := -b - math32.Sqrt(discriminant)
	if t > maxDistance {
		return SweepHit{}, false
	}
	if t < 0 {
		t = 0
	}
	centerAtHit := from.Add(unit.Mul(t))
	normal, ok := util.SafeNormalize(centerAtHit.Sub(o.Position))
	if !ok {
		normal = mgl32.Vec3{0, 1, 0}
	}
	return SweepHit{
		Obstacle: o,
		Distance: t,
		Normal:   normal,
		Point:    o.Position.Add(normal.Mul(o.Shape.Radius)),
	}, true
}

// sweepSphereBox runs the teacher-style Minkowski sweep: the box grows by
// the probe radius and the sphere center travels through it as a point.
// Corners come out slightly conservative, which errs on the safe side.
func (w *World) sweepSphereBox(from, unit mgl32.Vec3, maxDistance, radius float32, o *Obstacle) (SweepHit, bool) {
	inflated := util.NewAABB(
		o.Position.Sub(from),
		o.Shape.HalfExtents.Add(mgl32.Vec3{radius, radius, radius}).Mul(2),
	)
	velocity := unit.Mul(maxDistance)
	info := util.SweepPoint(inflated, velocity)
	if info.MinkowskiDifferenceContainsOrigin {
		normal, depth, overlapping := penetrationSphereBox(from, radius, o)
		if !overlapping {
			normal, depth = unit.Mul(-1), 0
		}
		return SweepHit{
			Obstacle: o,
			Distance: 0,
			Normal:   normal,
			Point:    from.Sub(normal.Mul(radius - depth)),
		}, true
	}
	if info.Result >= 1 {
		return SweepHit{}, false
	}
	distance := info.Result * maxDistance
	centerAtHit := from.Add(unit.Mul(distance))
	return SweepHit{
		Obstacle: o,
		Distance: distance,
		Normal:   info.Normal,
		Point:    centerAtHit.Sub(info.Normal.Mul(radius)),
	}, true
}

// sweepSphereHull probes the whole sweep as a capsule first and then
// bisects for the first contact. The returned distance sits on the free
// side of the last bisection step, never inside the hull.
func (w *World) sweepSphereHull(from, unit mgl32.Vec3, maxDistance, radius float32, o *Obstacle) (SweepHit, bool) {
	hull := o.GetCollider()
	startProbe := util.SphereCollider{Position: from, Radius: radius}
	if hit, simplex := util.GJK(startProbe, hull); hit {
		points := util.EPA(simplex, startProbe, hull)
		normal, ok := util.SafeNormalize(points.Normal)
		if !ok {
			normal = mgl32.Vec3{0, 1, 0}
		}
		return SweepHit{
			Obstacle: o,
			Distance: 0,
			Normal:   normal,
			Point:    from.Sub(normal.Mul(radius - points.PenetrationDepth)),
		}, true
	}
	fullSweep := util.CapsuleCollider{Start: from, End: from.Add(unit.Mul(maxDistance)), Radius: radius}
	if hit, _ := util.GJK(fullSweep, hull); !hit {
		return SweepHit{}, false
	}
	low, high := float32(0), maxDistance
	for i := 0; i < hullSweepBisections; i++ {
		mid := (low + high) * 0.5
		probe := util.CapsuleCollider{Start: from, End: from.Add(unit.Mul(mid)), Radius: radius}
		if hit, _ := util.GJK(probe, hull); hit {
			high = mid
		} else {
			low = mid
		}
	}
	normal := unit.Mul(-1)
	contactProbe := util.SphereCollider{Position: from.Add(unit.Mul(high)), Radius: radius + touchEpsilon}
	if hit, simplex := util.GJK(contactProbe, hull); hit {
		points := util.EPA(simplex, contactProbe, hull)
		if n, ok := util.SafeNormalize(points.Normal); ok {
			normal = n
		}
	}
	centerAtHit := from.Add(unit.Mul(low))
	return SweepHit{
		Obstacle: o,
		Distance: low,
		Normal:   normal,
		Point:    centerAtHit.Sub(normal.Mul(radius)),
	}, true
}

func penetrationSphereSphere(center mgl32.Vec3, radius float32, o *Obstacle) (mgl32.Vec3, float32, bool) {
	delta := center.Sub(o.Position)
	distance := delta.Len()
	combined := radius + o.Shape.Radius
	if distance >= combined {
		return mgl32.Vec3{}, 0, false
	}
	if distance < touchEpsilon {
		// centers coincide, any direction works, up keeps things on the floor
		return mgl32.Vec3{0, 1, 0}, combined, true
	}
	return delta.Mul(1.0 / distance), combined - distance, true
}

func penetrationSphereBox(center mgl32.Vec3, radius float32, o *Obstacle) (mgl32.Vec3, float32, bool) {
	boxMin := o.Position.Sub(o.Shape.HalfExtents)
	boxMax := o.Position.Add(o.Shape.HalfExtents)
	closest := mgl32.Vec3{
		util.Clamp(center.X(), boxMin.X(), boxMax.X()),
		util.Clamp(center.Y(), boxMin.Y(), boxMax.Y()),
		util.Clamp(center.Z(), boxMin.Z(), boxMax.Z()),
	}
	delta := center.Sub(closest)
	distance := delta.Len()
	if distance >= radius {
		return mgl32.Vec3{}, 0, false
	}
	if distance > touchEpsilon {
		return delta.Mul(1.0 / distance), radius - distance, true
	}
	// center is inside the box, escape through the nearest face
	faceDistances := [6]float32{
		boxMax.X() - center.X(),
		center.X() - boxMin.X(),
		boxMax.Y() - center.Y(),
		center.Y() - boxMin.Y(),
		boxMax.Z() - center.Z(),
		center.Z() - boxMin.Z(),
	}
	faceNormals := [6]mgl32.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	nearest := 0
	for i := 1; i < 6; i++ {
		if faceDistances[i] < faceDistances[nearest] {
			nearest = i
		}
	}
	return faceNormals[nearest], radius + faceDistances[nearest], true
}
