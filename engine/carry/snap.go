package carry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"go.uber.org/zap"
)

// Adherence settles a resting position flush onto a supporting surface with
// a short downward micro-probe. Purely cosmetic, the mover and resolver are
// already done when it runs.
type Adherence struct {
	world  *phys.World
	config Config
	log    *zap.Logger
}

func NewAdherence(world *phys.World, config Config, log *zap.Logger) *Adherence {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adherence{
		world:  world,
		config: config,
		log:    log,
	}
}

// Snap probes downwards from slightly above the position and, on contact,
// rests the shape on the surface with the skin margin kept. No surface in
// range means no change.
func (a *Adherence) Snap(position mgl32.Vec3, probe Probe) mgl32.Vec3 {
	if !a.config.SnapToSurface || a.config.SnapTolerance <= 0 || probe.Radius <= 0 {
		return position
	}
	tolerance := a.config.SnapTolerance
	start := position.Add(mgl32.Vec3{0, tolerance, 0})
	down := mgl32.Vec3{0, -1, 0}
	hit, blocked := a.world.SweepSphere(start, down, tolerance*2, probe.Radius, probe.Mask, probe.Exclude)
	if !blocked {
		return position
	}
	return hit.Point.Add(hit.Normal.Mul(probe.Radius + a.config.Skin(probe.Radius)))
}
