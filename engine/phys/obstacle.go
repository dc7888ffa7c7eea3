package phys

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/carrykit/engine/util"
)

// Obstacle is a posed solid in the world. Triggers overlap but never block,
// so the motion queries skip them entirely.
type Obstacle struct {
	ID       uuid.UUID
	Name     string
	Shape    Shape
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Layer    Layer
	Trigger  bool
}

func NewObstacle(name string, shape Shape, position mgl32.Vec3) *Obstacle {
	return &Obstacle{
		ID:       uuid.New(),
		Name:     name,
		Shape:    shape,
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Layer:    LayerStatic,
	}
}

func (o *Obstacle) GetAABB() util.AABB {
	return o.Shape.AABBAt(o.Position)
}

func (o *Obstacle) GetCollider() util.Collider {
	return o.Shape.Collider(o.Position, o.Rotation)
}
