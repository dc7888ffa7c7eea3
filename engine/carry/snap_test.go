package carry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/stretchr/testify/assert"
)

func newFloorWorld() *phys.World {
	world := phys.NewWorld(nil)
	// floor top at y=0
	world.AddObstacle(phys.NewObstacle("floor", phys.NewBoxShape(mgl32.Vec3{10, 0.5, 10}), mgl32.Vec3{0, -0.5, 0}))
	return world
}

func TestSnap_SettlesOntoFloor(t *testing.T) {
	config := DefaultConfig()
	config.SnapToSurface = true
	adherence := NewAdherence(newFloorWorld(), config, nil)
	probe := sphereProbe(0.2)

	// hovering just above the resting height
	result := adherence.Snap(mgl32.Vec3{0, 0.21, 0}, probe)

	// resting height is radius plus skin above the surface
	assert.InDelta(t, 0.202, result.Y(), 1e-3)
	assert.InDelta(t, 0, result.X(), 1e-5)
	assert.InDelta(t, 0, result.Z(), 1e-5)
}

func TestSnap_DisabledIsANoOp(t *testing.T) {
	adherence := NewAdherence(newFloorWorld(), DefaultConfig(), nil)
	position := mgl32.Vec3{0, 0.21, 0}

	result := adherence.Snap(position, sphereProbe(0.2))

	assert.Equal(t, position, result)
}

func TestSnap_NoSurfaceInRange(t *testing.T) {
	config := DefaultConfig()
	config.SnapToSurface = true
	adherence := NewAdherence(newFloorWorld(), config, nil)
	position := mgl32.Vec3{0, 1, 0}

	result := adherence.Snap(position, sphereProbe(0.2))

	assert.Equal(t, position, result)
}

func TestSnap_ZeroRadiusIsANoOp(t *testing.T) {
	config := DefaultConfig()
	config.SnapToSurface = true
	adherence := NewAdherence(newFloorWorld(), config, nil)
	position := mgl32.Vec3{0, 0.21, 0}

	result := adherence.Snap(position, sphereProbe(0))

	assert.Equal(t, position, result)
}
