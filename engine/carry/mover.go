package carry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/memmaker/carrykit/engine/util"
	"go.uber.org/zap"
)

// minStepDistance is the sub-step length below which no sweep is issued,
// the direction would be numeric noise.
const minStepDistance = 1e-5

// Probe describes the manipulated object for the duration of one query:
// its shape, locked orientation, bounding radius, collision mask and the
// self-exclusion set.
type Probe struct {
	Shape       phys.Shape
	Orientation mgl32.Quat
	Radius      float32
	Mask        phys.Layer
	Exclude     phys.Exclusion
}

// Mover advances an object towards a target in bounded sub-steps, stopping
// at the first blocking contact. The sub-step count caps how far the object
// can tunnel per tick; obstacles thinner than one sub-step's traversal can
// still be missed when the controller moves fast enough.
type Mover struct {
	world    *phys.World
	resolver *Resolver
	config   Config
	log      *zap.Logger
}

func NewMover(world *phys.World, resolver *Resolver, config Config, log *zap.Logger) *Mover {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mover{
		world:    world,
		resolver: resolver,
		config:   config,
		log:      log,
	}
}

// Move returns the furthest collision-safe position on the way from current
// to target. Zero displacement and zero-radius probes return the current
// position without issuing any queries.
func (m *Mover) Move(current, target mgl32.Vec3, probe Probe) mgl32.Vec3 {
	displacement := target.Sub(current)
	if displacement.Len() < minStepDistance || probe.Radius <= 0 {
		return current
	}
	skin := m.config.Skin(probe.Radius)
	position := current
	steps := m.config.SubSteps
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		subTarget := current.Add(displacement.Mul(float32(i) / float32(steps)))
		stepVector := subTarget.Sub(position)
		stepDistance := stepVector.Len()
		if stepDistance < minStepDistance {
			continue
		}
		direction, ok := util.SafeNormalize(stepVector)
		if !ok {
			continue
		}
		hit, blocked := m.world.SweepSphere(position, direction, stepDistance, probe.Radius, probe.Mask, probe.Exclude)
		if blocked {
			allowed := hit.Distance - skin
			if allowed < 0 {
				allowed = 0
			}
			position = position.Add(direction.Mul(allowed))
			position = m.resolver.Resolve(position, probe)
			break // partial progress for this tick
		}
		// overlaps can creep in without a sweep block, from rotation or
		// resolver drift on earlier ticks, so resolve here as well
		position = m.resolver.Resolve(subTarget, probe)
	}
	return position
}
