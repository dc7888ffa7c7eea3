package carry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"go.uber.org/zap"
)

// Resolver pushes an object out of residual overlaps using per-contact
// penetration vectors. A single pass is not exact with several simultaneous
// contacts, one correction can re-open another, so the passes repeat up to
// the configured budget.
type Resolver struct {
	world  *phys.World
	config Config
	log    *zap.Logger
}

func NewResolver(world *phys.World, config Config, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		world:  world,
		config: config,
		log:    log,
	}
}

// Resolve returns a corrected position with overlaps removed, or the best
// position found when the iteration budget runs out. Budget exhaustion is
// not an error, later ticks get another chance.
func (r *Resolver) Resolve(position mgl32.Vec3, probe Probe) mgl32.Vec3 {
	if probe.Radius <= 0 {
		return position
	}
	overlapping := r.world.OverlapSphere(position, probe.Radius, probe.Mask, probe.Exclude)
	if len(overlapping) == 0 {
		return position
	}
	skin := r.config.Skin(probe.Radius)
	iterations := r.config.ResolveIterations
	if iterations < 1 {
		iterations = 1
	}
	converged := false
	for i := 0; i < iterations; i++ {
		moved := false
		for _, obstacle := range overlapping {
			direction, depth, hit := r.world.Penetration(probe.Shape, position, probe.Orientation, obstacle)
			if hit && depth > 0 {
				position = position.Add(direction.Mul(depth + skin))
				moved = true
			}
		}
		if !moved {
			converged = true
			break
		}
	}
	if !converged {
		r.log.Debug("penetration resolver budget exhausted",
			zap.Int("iterations", iterations),
			zap.Int("contacts", len(overlapping)))
	}
	return position
}
