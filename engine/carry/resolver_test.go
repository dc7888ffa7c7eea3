package carry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/stretchr/testify/assert"
)

func TestResolver_PushesOutOfWall(t *testing.T) {
	world := newWallWorld()
	resolver := NewResolver(world, DefaultConfig(), nil)
	probe := sphereProbe(0.2)

	// overlapping the wall face at x=1.0 by 0.05
	result := resolver.Resolve(mgl32.Vec3{0.85, 0, 0}, probe)

	assert.InDelta(t, 0.798, result.X(), 1e-3)
	assert.LessOrEqual(t, result.X()+probe.Radius, float32(1.0))
}

func TestResolver_ResultIsStable(t *testing.T) {
	world := newWallWorld()
	resolver := NewResolver(world, DefaultConfig(), nil)
	probe := sphereProbe(0.2)

	once := resolver.Resolve(mgl32.Vec3{0.85, 0, 0}, probe)
	twice := resolver.Resolve(once, probe)

	assert.Equal(t, once, twice)
}

func TestResolver_NoOverlapIsANoOp(t *testing.T) {
	world := newWallWorld()
	resolver := NewResolver(world, DefaultConfig(), nil)
	position := mgl32.Vec3{0, 0, 0}

	result := resolver.Resolve(position, sphereProbe(0.2))

	assert.Equal(t, position, result)
}

func TestResolver_ZeroRadiusIsANoOp(t *testing.T) {
	world := newWallWorld()
	resolver := NewResolver(world, DefaultConfig(), nil)
	position := mgl32.Vec3{1.05, 0, 0}

	result := resolver.Resolve(position, sphereProbe(0))

	assert.Equal(t, position, result)
}

func TestResolver_ReturnsBestEffortInTightGap(t *testing.T) {
	world := phys.NewWorld(nil)
	// opposing wall faces at x=-0.15 and x=0.15, too narrow for a box of
	// width 0.4: every pass re-opens the other contact
	world.AddObstacle(phys.NewObstacle("left", phys.NewBoxShape(mgl32.Vec3{0.05, 5, 5}), mgl32.Vec3{-0.2, 0, 0}))
	world.AddObstacle(phys.NewObstacle("right", phys.NewBoxShape(mgl32.Vec3{0.05, 5, 5}), mgl32.Vec3{0.2, 0, 0}))
	resolver := NewResolver(world, DefaultConfig(), nil)
	shape := phys.NewBoxShape(mgl32.Vec3{0.2, 0.2, 0.2})
	probe := Probe{
		Shape:       shape,
		Orientation: mgl32.QuatIdent(),
		Radius:      shape.BoundingRadius(),
		Mask:        phys.MaskAll,
	}

	// the budget runs out without converging, the last position comes back
	result := resolver.Resolve(mgl32.Vec3{0, 0, 0}, probe)

	assert.Less(t, math32.Abs(result.X()), float32(0.5))
	assert.InDelta(t, 0, result.Y(), 1e-4)
	assert.InDelta(t, 0, result.Z(), 1e-4)
}

func TestResolver_TwoContacts(t *testing.T) {
	world := phys.NewWorld(nil)
	// a floor and a wall forming an inside corner at (1.0, 0.0)
	world.AddObstacle(phys.NewObstacle("floor", phys.NewBoxShape(mgl32.Vec3{10, 0.5, 10}), mgl32.Vec3{0, -0.5, 0}))
	world.AddObstacle(phys.NewObstacle("wall", phys.NewBoxShape(mgl32.Vec3{0.05, 5, 5}), mgl32.Vec3{1.05, 0, 0}))
	resolver := NewResolver(world, DefaultConfig(), nil)
	probe := sphereProbe(0.2)

	// overlapping both the floor top and the wall face
	result := resolver.Resolve(mgl32.Vec3{0.9, 0.1, 0}, probe)

	assert.LessOrEqual(t, result.X()+probe.Radius, float32(1.0)+1e-4)
	assert.GreaterOrEqual(t, result.Y()-probe.Radius, float32(0.0)-1e-4)
}
