package carry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWallWorld() *phys.World {
	world := phys.NewWorld(nil)
	// wall occupying x in [1.0, 1.1]
	world.AddObstacle(phys.NewObstacle("wall", phys.NewBoxShape(mgl32.Vec3{0.05, 5, 5}), mgl32.Vec3{1.05, 0, 0}))
	return world
}

func sphereProbe(radius float32) Probe {
	return Probe{
		Shape:       phys.NewSphereShape(radius),
		Orientation: mgl32.QuatIdent(),
		Radius:      radius,
		Mask:        phys.MaskAll,
	}
}

func newTestMover(world *phys.World, config Config) *Mover {
	resolver := NewResolver(world, config, nil)
	return NewMover(world, resolver, config, nil)
}

func TestMover_StopsAtWall(t *testing.T) {
	world := newWallWorld()
	mover := newTestMover(world, DefaultConfig())
	probe := sphereProbe(0.2)

	result := mover.Move(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 0, 0}, probe)

	// surface contact at x=0.8, minus the skin margin of 0.002
	assert.InDelta(t, 0.798, result.X(), 1e-3)
	assert.LessOrEqual(t, result.X()+probe.Radius, float32(1.0))
	assert.InDelta(t, 0, result.Y(), 1e-5)
	assert.InDelta(t, 0, result.Z(), 1e-5)
}

func TestMover_NoTunnelingThroughThinWall(t *testing.T) {
	world := newWallWorld()
	mover := newTestMover(world, DefaultConfig())
	probe := sphereProbe(0.2)

	// a displacement far larger than the wall is thick
	result := mover.Move(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, probe)

	assert.Less(t, result.X(), float32(1.0))
}

func TestMover_ReachesClearTarget(t *testing.T) {
	world := newWallWorld()
	mover := newTestMover(world, DefaultConfig())
	probe := sphereProbe(0.2)
	target := mgl32.Vec3{0.5, 0.1, -0.25}

	result := mover.Move(mgl32.Vec3{0, 0, 0}, target, probe)

	require.InDelta(t, target.X(), result.X(), 1e-5)
	require.InDelta(t, target.Y(), result.Y(), 1e-5)
	require.InDelta(t, target.Z(), result.Z(), 1e-5)
}

func TestMover_ZeroDisplacementIsANoOp(t *testing.T) {
	world := newWallWorld()
	mover := newTestMover(world, DefaultConfig())
	current := mgl32.Vec3{0.3, 0.4, 0.5}

	result := mover.Move(current, current, sphereProbe(0.2))

	assert.Equal(t, current, result)
}

func TestMover_ZeroRadiusIsANoOp(t *testing.T) {
	world := newWallWorld()
	mover := newTestMover(world, DefaultConfig())
	current := mgl32.Vec3{0, 0, 0}

	result := mover.Move(current, mgl32.Vec3{2, 0, 0}, sphereProbe(0))

	assert.Equal(t, current, result)
}

func TestMover_ExclusionIgnoresOwnObstacle(t *testing.T) {
	world := newWallWorld()
	self := phys.NewObstacle("self", phys.NewSphereShape(0.2), mgl32.Vec3{0, 0, 0})
	self.Layer = phys.LayerDynamic
	world.AddObstacle(self)

	mover := newTestMover(world, DefaultConfig())
	probe := sphereProbe(0.2)
	probe.Exclude = phys.ExcludeIDs(self.ID)

	// without the exclusion the probe would be stuck inside itself
	result := mover.Move(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.5, 0, 0}, probe)

	assert.InDelta(t, 0.5, result.X(), 1e-5)
}
