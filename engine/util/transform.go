package util

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position and orientation in world space.
type Transform struct {
	translation mgl32.Vec3
	rotation    mgl32.Quat
	nameOfOwner string
}

func NewTransform(position mgl32.Vec3, rotation mgl32.Quat, name string) *Transform {
	return &Transform{
		translation: position,
		rotation:    rotation,
		nameOfOwner: name,
	}
}

func NewTransformFromForward(position mgl32.Vec3, forward mgl32.Vec3) *Transform {
	t := &Transform{
		translation: position,
		rotation:    mgl32.QuatIdent(),
	}
	t.SetForward(forward)
	return t
}

func (t *Transform) GetName() string {
	return t.nameOfOwner
}

func (t *Transform) GetPosition() mgl32.Vec3 {
	return t.translation
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.translation = position
}

func (t *Transform) GetRotation() mgl32.Quat {
	return t.rotation
}

func (t *Transform) SetRotation(rotation mgl32.Quat) {
	t.rotation = rotation
}

func (t *Transform) GetForward() mgl32.Vec3 {
	return t.rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) SetForward(direction mgl32.Vec3) {
	t.rotation = mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, -1}, direction)
}
