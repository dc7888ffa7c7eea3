package phys

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/util"
)

type ShapeKind int32

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeHull
)

// Shape is a tagged variant instead of an interface hierarchy: one type,
// one dispatcher per query, no subclass per shape kind.
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl32.Vec3   // box
	Radius      float32      // sphere
	Points      []mgl32.Vec3 // hull, object space

	boundingRadius float32
}

func NewBoxShape(halfExtents mgl32.Vec3) Shape {
	return Shape{
		Kind:           ShapeBox,
		HalfExtents:    halfExtents,
		boundingRadius: halfExtents.Len(),
	}
}

func NewSphereShape(radius float32) Shape {
	return Shape{
		Kind:           ShapeSphere,
		Radius:         radius,
		boundingRadius: radius,
	}
}

func NewHullShape(points []mgl32.Vec3) Shape {
	radius := float32(0)
	for _, p := range points {
		if length := p.Len(); length > radius {
			radius = length
		}
	}
	return Shape{
		Kind:           ShapeHull,
		Points:         points,
		boundingRadius: radius,
	}
}

// BoundingRadius is the probe radius derived from the shape. Zero means the
// shape has no collidable volume.
func (s Shape) BoundingRadius() float32 {
	return s.boundingRadius
}

// Collider poses the shape in the world for GJK/EPA queries. Boxes stay
// axis aligned, the rotation only applies to hulls.
func (s Shape) Collider(position mgl32.Vec3, rotation mgl32.Quat) util.Collider {
	switch s.Kind {
	case ShapeSphere:
		return util.SphereCollider{Position: position, Radius: s.Radius}
	case ShapeHull:
		return util.NewHullCollider(s.Points, position, rotation)
	default:
		return util.BoxCollider{Position: position, HalfExtents: s.HalfExtents}
	}
}

// AABBAt is the broad-phase bound of the shape at the given position.
func (s Shape) AABBAt(position mgl32.Vec3) util.AABB {
	if s.Kind == ShapeBox {
		return util.NewAABB(position, s.HalfExtents.Mul(2))
	}
	size := s.boundingRadius * 2
	return util.NewAABB(position, mgl32.Vec3{size, size, size})
}

func (s Shape) ToString() string {
	switch s.Kind {
	case ShapeSphere:
		return fmt.Sprintf("Sphere{Radius = %.3f}", s.Radius)
	case ShapeHull:
		return fmt.Sprintf("Hull{Points = %d}", len(s.Points))
	default:
		return fmt.Sprintf("Box{HalfExtents = %v}", s.HalfExtents)
	}
}
