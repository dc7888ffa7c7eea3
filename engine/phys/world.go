package phys

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/carrykit/engine/util"
	"go.uber.org/zap"
)

// SweepHit is the nearest blocking contact of a swept query. It only lives
// for the tick that produced it.
type SweepHit struct {
	Obstacle *Obstacle
	Distance float32
	Normal   mgl32.Vec3
	Point    mgl32.Vec3
}

// World holds the obstacle set and answers the three collision primitives
// the carry core runs on: swept probes, overlap probes and penetration
// queries. All queries are synchronous, there is no spatial index because
// interactable scenes stay small.
type World struct {
	obstacles []*Obstacle
	log       *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{log: log}
}

func (w *World) AddObstacle(o *Obstacle) {
	w.obstacles = append(w.obstacles, o)
}

func (w *World) RemoveObstacle(id uuid.UUID) {
	for i, o := range w.obstacles {
		if o.ID == id {
			w.obstacles = append(w.obstacles[:i], w.obstacles[i+1:]...)
			return
		}
	}
}

func (w *World) GetObstacle(id uuid.UUID) (*Obstacle, bool) {
	for _, o := range w.obstacles {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

func (w *World) GetObstacles() []*Obstacle {
	return w.obstacles
}

func (w *World) blocks(o *Obstacle, mask Layer, exclude Exclusion) bool {
	if o.Trigger {
		return false
	}
	if !o.Layer.Matches(mask) {
		return false
	}
	return !exclude.Contains(o.ID)
}

// SweepSphere casts a sphere of the given radius from 'from' along 'dir'
// and reports the nearest blocking contact within maxDistance. Degenerate
// directions and zero distances return no hit without touching any obstacle.
func (w *World) SweepSphere(from, dir mgl32.Vec3, maxDistance, radius float32, mask Layer, exclude Exclusion) (SweepHit, bool) {
	unit, ok := util.SafeNormalize(dir)
	if !ok || maxDistance <= 0 || radius <= 0 {
		return SweepHit{}, false
	}
	best := SweepHit{Distance: maxDistance}
	found := false
	for _, o := range w.obstacles {
		if !w.blocks(o, mask, exclude) {
			continue
		}
		hit, blocked := w.sweepSphereObstacle(from, unit, maxDistance, radius, o)
		if blocked && (!found || hit.Distance < best.Distance) {
			best = hit
			found = true
		}
	}
	return best, found
}

func (w *World) sweepSphereObstacle(from, unit mgl32.Vec3, maxDistance, radius float32, o *Obstacle) (SweepHit, bool) {
	switch o.Shape.Kind {
	case ShapeSphere:
		return w.sweepSphereSphere(from, unit, maxDistance, radius, o)
	case ShapeHull:
		return w.sweepSphereHull(from, unit, maxDistance, radius, o)
	default:
		return w.sweepSphereBox(from, unit, maxDistance, radius, o)
	}
}

// OverlapSphere returns every blocking obstacle whose bounds intersect a
// probe sphere at the given position. This is the broad phase the resolver
// iterates over; exact separation comes from Penetration.
func (w *World) OverlapSphere(position mgl32.Vec3, radius float32, mask Layer, exclude Exclusion) []*Obstacle {
	if radius <= 0 {
		return nil
	}
	size := radius * 2
	probe := util.NewAABB(position, mgl32.Vec3{size, size, size})
	var result []*Obstacle
	for _, o := range w.obstacles {
		if !w.blocks(o, mask, exclude) {
			continue
		}
		if o.GetAABB().Overlaps(probe) {
			result = append(result, o)
		}
	}
	return result
}

// Penetration returns the direction and depth that move the posed shape out
// of the obstacle, or false when the two do not overlap. Sphere probes
// against spheres and boxes are answered analytically, everything else goes
// through GJK/EPA.
func (w *World) Penetration(shape Shape, position mgl32.Vec3, rotation mgl32.Quat, o *Obstacle) (mgl32.Vec3, float32, bool) {
	if shape.Kind == ShapeSphere {
		switch o.Shape.Kind {
		case ShapeSphere:
			return penetrationSphereSphere(position, shape.Radius, o)
		case ShapeBox:
			return penetrationSphereBox(position, shape.Radius, o)
		}
	}
	probe := shape.Collider(position, rotation)
	other := o.GetCollider()
	hit, simplex := util.GJK(probe, other)
	if !hit {
		return mgl32.Vec3{}, 0, false
	}
	points := util.EPA(simplex, probe, other)
	dir, ok := util.SafeNormalize(points.Normal)
	if !ok {
		return mgl32.Vec3{}, 0, false
	}
	return dir, points.PenetrationDepth, true
}
