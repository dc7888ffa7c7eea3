package carry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/memmaker/carrykit/engine/util"
)

// Manipulable is an object the drag manager can take exclusive control of.
type Manipulable interface {
	GetID() uuid.UUID
	GetName() string
	GetPosition() mgl32.Vec3
	SetPosition(position mgl32.Vec3)
	GetRotation() mgl32.Quat
	SetRotation(rotation mgl32.Quat)
	GetShape() phys.Shape
	GetColliderIDs() []uuid.UUID
	IsKinematic() bool
	SetKinematic(kinematic bool)
	IsRotationFrozen() bool
	SetRotationFrozen(frozen bool)
	GetVelocity() mgl32.Vec3
	SetVelocity(velocity mgl32.Vec3)
	GetAngularVelocity() mgl32.Vec3
	SetAngularVelocity(velocity mgl32.Vec3)
	IsDead() bool
}

// Body is a manipulable rigid object that doubles as its own obstacle in
// the collision world. The self-exclusion filter hides that obstacle from
// the body's own probes.
type Body struct {
	id              uuid.UUID
	transform       *util.Transform
	shape           phys.Shape
	obstacle        *phys.Obstacle
	world           *phys.World
	kinematic       bool
	rotationFrozen  bool
	velocity        mgl32.Vec3
	angularVelocity mgl32.Vec3
	dead            bool
}

func NewBody(world *phys.World, name string, shape phys.Shape, position mgl32.Vec3) *Body {
	id := uuid.New()
	obstacle := &phys.Obstacle{
		ID:       id,
		Name:     name,
		Shape:    shape,
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Layer:    phys.LayerDynamic,
	}
	world.AddObstacle(obstacle)
	return &Body{
		id:        id,
		transform: util.NewTransform(position, mgl32.QuatIdent(), name),
		shape:     shape,
		obstacle:  obstacle,
		world:     world,
	}
}

func (b *Body) GetID() uuid.UUID {
	return b.id
}

func (b *Body) GetName() string {
	return b.transform.GetName()
}

func (b *Body) GetPosition() mgl32.Vec3 {
	return b.transform.GetPosition()
}

func (b *Body) SetPosition(position mgl32.Vec3) {
	b.transform.SetPosition(position)
	b.obstacle.Position = position
}

func (b *Body) GetRotation() mgl32.Quat {
	return b.transform.GetRotation()
}

func (b *Body) SetRotation(rotation mgl32.Quat) {
	b.transform.SetRotation(rotation)
	b.obstacle.Rotation = rotation
}

func (b *Body) GetShape() phys.Shape {
	return b.shape
}

func (b *Body) GetColliderIDs() []uuid.UUID {
	return []uuid.UUID{b.id}
}

func (b *Body) IsKinematic() bool {
	return b.kinematic
}

func (b *Body) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
}

func (b *Body) IsRotationFrozen() bool {
	return b.rotationFrozen
}

func (b *Body) SetRotationFrozen(frozen bool) {
	b.rotationFrozen = frozen
}

func (b *Body) GetVelocity() mgl32.Vec3 {
	return b.velocity
}

func (b *Body) SetVelocity(velocity mgl32.Vec3) {
	b.velocity = velocity
}

func (b *Body) GetAngularVelocity() mgl32.Vec3 {
	return b.angularVelocity
}

func (b *Body) SetAngularVelocity(velocity mgl32.Vec3) {
	b.angularVelocity = velocity
}

func (b *Body) IsDead() bool {
	return b.dead
}

// Destroy removes the body from the collision world. A manager holding it
// will drop it on the next tick.
func (b *Body) Destroy() {
	if b.dead {
		return
	}
	b.dead = true
	b.world.RemoveObstacle(b.id)
}
