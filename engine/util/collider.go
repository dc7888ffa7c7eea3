package util

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Collider is anything GJK/EPA can query through its support mapping.
type Collider interface {
	FindFurthestPoint(direction mgl32.Vec3) mgl32.Vec3
	Center() mgl32.Vec3
	BoundingRadius() float32
	ToString() string
}

// Support samples the Minkowski difference a-b in the given direction.
func Support(a, b Collider, direction mgl32.Vec3) mgl32.Vec3 {
	return a.FindFurthestPoint(direction).Sub(b.FindFurthestPoint(direction.Mul(-1)))
}

type SphereCollider struct {
	Position mgl32.Vec3
	Radius   float32
}

func (s SphereCollider) FindFurthestPoint(direction mgl32.Vec3) mgl32.Vec3 {
	unit, ok := SafeNormalize(direction)
	if !ok {
		return s.Position.Add(mgl32.Vec3{s.Radius, 0, 0})
	}
	return s.Position.Add(unit.Mul(s.Radius))
}

func (s SphereCollider) Center() mgl32.Vec3 {
	return s.Position
}

func (s SphereCollider) BoundingRadius() float32 {
	return s.Radius
}

func (s SphereCollider) ToString() string {
	return fmt.Sprintf("SphereCollider{Position = %v, Radius = %.3f}", s.Position, s.Radius)
}

// BoxCollider is axis aligned, described by its center and half extents.
type BoxCollider struct {
	Position    mgl32.Vec3
	HalfExtents mgl32.Vec3
}

func (b BoxCollider) FindFurthestPoint(direction mgl32.Vec3) mgl32.Vec3 {
	corner := b.HalfExtents
	if direction.X() < 0 {
		corner[0] = -corner[0]
	}
	if direction.Y() < 0 {
		corner[1] = -corner[1]
	}
	if direction.Z() < 0 {
		corner[2] = -corner[2]
	}
	return b.Position.Add(corner)
}

func (b BoxCollider) Center() mgl32.Vec3 {
	return b.Position
}

func (b BoxCollider) BoundingRadius() float32 {
	return b.HalfExtents.Len()
}

func (b BoxCollider) GetAABB() AABB {
	return NewAABB(b.Position, b.HalfExtents.Mul(2))
}

func (b BoxCollider) ToString() string {
	return fmt.Sprintf("BoxCollider{Position = %v, HalfExtents = %v}", b.Position, b.HalfExtents)
}

// HullCollider is a convex point cloud posed in the world.
type HullCollider struct {
	points   []mgl32.Vec3 // object space
	position mgl32.Vec3
	rotation mgl32.Quat
	radius   float32
}

func NewHullCollider(points []mgl32.Vec3, position mgl32.Vec3, rotation mgl32.Quat) *HullCollider {
	radius := float32(0)
	for _, p := range points {
		if length := p.Len(); length > radius {
			radius = length
		}
	}
	return &HullCollider{
		points:   points,
		position: position,
		rotation: rotation,
		radius:   radius,
	}
}

func (h *HullCollider) FindFurthestPoint(direction mgl32.Vec3) mgl32.Vec3 {
	var maxPoint mgl32.Vec3
	maxDistance := float32(-math32.MaxFloat32)
	for _, point := range h.points {
		vertex := h.position.Add(h.rotation.Rotate(point))
		distance := vertex.Dot(direction)
		if distance > maxDistance {
			maxDistance = distance
			maxPoint = vertex
		}
	}
	return maxPoint
}

func (h *HullCollider) Center() mgl32.Vec3 {
	return h.position
}

func (h *HullCollider) BoundingRadius() float32 {
	return h.radius
}

func (h *HullCollider) ToString() string {
	return fmt.Sprintf("HullCollider{Position = %v, Points = %d}", h.position, len(h.points))
}

// CapsuleCollider is the exact shape of a sphere swept along a segment,
// which is what the world's swept queries probe with.
type CapsuleCollider struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
}

func (c CapsuleCollider) FindFurthestPoint(direction mgl32.Vec3) mgl32.Vec3 {
	base := c.Start
	if direction.Dot(c.End.Sub(c.Start)) > 0 {
		base = c.End
	}
	unit, ok := SafeNormalize(direction)
	if !ok {
		return base
	}
	return base.Add(unit.Mul(c.Radius))
}

func (c CapsuleCollider) Center() mgl32.Vec3 {
	return Lerp3(c.Start, c.End, 0.5)
}

func (c CapsuleCollider) BoundingRadius() float32 {
	return c.End.Sub(c.Start).Len()*0.5 + c.Radius
}

func (c CapsuleCollider) ToString() string {
	return fmt.Sprintf("CapsuleCollider{Start = %v, End = %v, Radius = %.3f}", c.Start, c.End, c.Radius)
}
