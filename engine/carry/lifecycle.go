package carry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/memmaker/carrykit/engine/util"
	"go.uber.org/zap"
)

// physicalState is the snapshot taken at acquisition and consumed at
// release. Velocity is recorded for completeness but release zeroes it so
// the object does not get thrown.
type physicalState struct {
	kinematic       bool
	rotationFrozen  bool
	velocity        mgl32.Vec3
	angularVelocity mgl32.Vec3
}

// Session is the ephemeral state of one active drag. It exists only
// between Acquire and Release.
type Session struct {
	anchorDistance    float32
	lockedOrientation mgl32.Quat
	ticks             int
	saved             physicalState
}

func (s *Session) GetAnchorDistance() float32 {
	return s.anchorDistance
}

func (s *Session) GetTicks() int {
	return s.ticks
}

// Manager is the drag lifecycle state machine. Its held slot is the single
// global exclusive lock: at most one manipulable is dragged at a time,
// everyone else gets refused until the slot frees up.
type Manager struct {
	world     *phys.World
	config    Config
	mover     *Mover
	resolver  *Resolver
	adherence *Adherence
	log       *zap.Logger
	mask      phys.Layer

	held    Manipulable
	session *Session
}

func NewManager(world *phys.World, config Config, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	resolver := NewResolver(world, config, log)
	return &Manager{
		world:     world,
		config:    config,
		mover:     NewMover(world, resolver, config, log),
		resolver:  resolver,
		adherence: NewAdherence(world, config, log),
		log:       log,
		mask:      phys.MaskAll,
	}
}

// SetCollisionMask restricts which obstacle layers the held object collides
// with. Triggers are always ignored regardless of the mask.
func (g *Manager) SetCollisionMask(mask phys.Layer) {
	g.mask = mask
}

func (g *Manager) GetHeld() Manipulable {
	return g.held
}

func (g *Manager) IsHolding(m Manipulable) bool {
	return m != nil && g.held == m
}

func (g *Manager) GetSession() *Session {
	return g.session
}

// Acquire takes exclusive control of the manipulable. It refuses silently
// when another object holds the lock and refuses loudly when the candidate
// has no collidable volume. Acquiring the current holder again succeeds
// without touching any state.
func (g *Manager) Acquire(m Manipulable, controllerPosition mgl32.Vec3) bool {
	if m == nil || m.IsDead() {
		return false
	}
	if g.held != nil && g.held != m {
		g.log.Debug("acquire refused, lock is taken",
			zap.String("candidate", m.GetName()),
			zap.String("holder", g.held.GetName()))
		return false
	}
	if g.held == m {
		return true
	}
	if m.GetShape().BoundingRadius() <= 0 {
		g.log.Warn("acquire refused, no collidable volume", zap.String("candidate", m.GetName()))
		return false
	}
	saved := physicalState{
		kinematic:       m.IsKinematic(),
		rotationFrozen:  m.IsRotationFrozen(),
		velocity:        m.GetVelocity(),
		angularVelocity: m.GetAngularVelocity(),
	}
	m.SetVelocity(mgl32.Vec3{})
	m.SetAngularVelocity(mgl32.Vec3{})
	m.SetKinematic(true)
	m.SetRotationFrozen(true)
	g.session = &Session{
		anchorDistance:    util.EucledianDistance3D(controllerPosition, m.GetPosition()),
		lockedOrientation: m.GetRotation(),
		saved:             saved,
	}
	g.held = m
	g.log.Info("acquired", zap.String("name", m.GetName()), zap.Float32("anchor", g.session.anchorDistance))
	return true
}

// Release hands the object back to the scene with its pre-acquisition
// physical state restored and all velocity zeroed. Safe to call for
// objects that were never held or died mid-drag.
func (g *Manager) Release(m Manipulable) {
	if m == nil || g.held == nil || g.held != m {
		return
	}
	session := g.session
	g.held = nil
	g.session = nil
	if m.IsDead() {
		g.log.Debug("released a dead object", zap.String("name", m.GetName()))
		return
	}
	m.SetKinematic(session.saved.kinematic)
	m.SetRotationFrozen(session.saved.rotationFrozen)
	m.SetVelocity(mgl32.Vec3{})
	m.SetAngularVelocity(mgl32.Vec3{})
	g.log.Info("released", zap.String("name", m.GetName()), zap.Int("ticks", session.ticks))
}

// TickDrag drives one simulation step of the held object: the desired
// target comes from the controller's pose and anchor distance, then sweep,
// resolve and adherence run strictly in that order. The returned position
// is applied directly, smoothing is a presentation concern layered outside.
func (g *Manager) TickDrag(m Manipulable, controllerPosition, controllerForward mgl32.Vec3) mgl32.Vec3 {
	if m == nil {
		return mgl32.Vec3{}
	}
	current := m.GetPosition()
	if g.held != m || g.session == nil {
		return current
	}
	if m.IsDead() {
		g.Release(m)
		return current
	}
	forward, ok := util.SafeNormalize(controllerForward)
	if !ok {
		return current
	}
	target := controllerPosition.Add(forward.Mul(g.session.anchorDistance))
	probe := g.probeFor(m)
	position := g.mover.Move(current, target, probe)
	position = g.adherence.Snap(position, probe)
	g.session.ticks++
	m.SetPosition(position)
	m.SetRotation(g.session.lockedOrientation)
	return position
}

func (g *Manager) probeFor(m Manipulable) Probe {
	shape := m.GetShape()
	return Probe{
		Shape:       shape,
		Orientation: g.session.lockedOrientation,
		Radius:      shape.BoundingRadius(),
		Mask:        g.mask,
		Exclude:     phys.ExcludeIDs(m.GetColliderIDs()...),
	}
}
