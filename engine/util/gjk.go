package util

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// gjkMaxIterations bounds the simplex refinement for near-touching pairs
// that would otherwise cycle on floating point noise.
const gjkMaxIterations = 64

type Simplex struct {
	points [4]mgl32.Vec3
	size   uint8
}

func NewSimplex() *Simplex {
	return &Simplex{}
}

func (s *Simplex) PushFront(v mgl32.Vec3) {
	s.points = [4]mgl32.Vec3{v, s.points[0], s.points[1], s.points[2]}
	s.size = s.size + 1
	if s.size > 4 {
		s.size = 4
	}
}

func (s *Simplex) Size() uint8 {
	return s.size
}

func (s *Simplex) SetPoints(vec3s []mgl32.Vec3) *Simplex {
	for i, v := range vec3s {
		s.points[i] = v
	}
	s.size = uint8(len(vec3s))
	return s
}

// GJK reports whether the two colliders intersect. On intersection the
// returned simplex encloses the origin of the Minkowski difference and can
// be fed to EPA for the penetration vector.
// adapted from: https://blog.winter.dev/2020/gjk-algorithm/
func GJK(a, b Collider) (bool, *Simplex) {
	seed := b.Center().Sub(a.Center())
	if _, ok := SafeNormalize(seed); !ok {
		seed = mgl32.Vec3{1, 0, 0}
	}
	support := Support(a, b, seed)
	simplex := NewSimplex()
	simplex.PushFront(support)

	startDir := support.Mul(-1)
	direction := &startDir

	for i := 0; i < gjkMaxIterations; i++ {
		support = Support(a, b, *direction)
		if support.Dot(*direction) <= 0 {
			return false, nil // no collision
		}
		simplex.PushFront(support)
		if NextSimplex(simplex, direction) {
			return true, simplex
		}
	}
	return false, nil
}

func SameDirection(a, b mgl32.Vec3) bool {
	return a.Dot(b) > 0
}

// AnyPerpendicular returns an arbitrary vector orthogonal to v. Needed when
// a simplex edge runs straight through the origin and the triple cross
// product degenerates to zero.
func AnyPerpendicular(v mgl32.Vec3) mgl32.Vec3 {
	axis := mgl32.Vec3{0, 0, 1}
	if math32.Abs(v.Z()) > math32.Abs(v.X()) {
		axis = mgl32.Vec3{1, 0, 0}
	}
	return v.Cross(axis)
}

func NextSimplex(simplex *Simplex, direction *mgl32.Vec3) bool {
	switch simplex.Size() {
	case 2:
		return lineCase(simplex, direction)
	case 3:
		return triangleCase(simplex, direction)
	case 4:
		return tetrahedronCase(simplex, direction)
	}
	return false
}

func tetrahedronCase(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.points[0]
	b := simplex.points[1]
	c := simplex.points[2]
	d := simplex.points[3]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)
	acd := ac.Cross(ad)
	adb := ad.Cross(ab)

	if SameDirection(abc, ao) {
		return triangleCase(simplex.SetPoints([]mgl32.Vec3{a, b, c}), direction)
	} else if SameDirection(acd, ao) {
		return triangleCase(simplex.SetPoints([]mgl32.Vec3{a, c, d}), direction)
	} else if SameDirection(adb, ao) {
		return triangleCase(simplex.SetPoints([]mgl32.Vec3{a, d, b}), direction)
	}

	return true
}

func triangleCase(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.points[0]
	b := simplex.points[1]
	c := simplex.points[2]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	if SameDirection(abc.Cross(ac), ao) {
		if SameDirection(ac, ao) {
			simplex.SetPoints([]mgl32.Vec3{a, c})
			newDir := ac.Cross(ao).Cross(ac)
			if newDir.Len() < normalizeEpsilon {
				newDir = AnyPerpendicular(ac)
			}
			*direction = newDir
		} else {
			return lineCase(simplex.SetPoints([]mgl32.Vec3{a, b}), direction)
		}
	} else {
		if SameDirection(ab.Cross(abc), ao) {
			return lineCase(simplex.SetPoints([]mgl32.Vec3{a, b}), direction)
		} else {
			if SameDirection(abc, ao) {
				*direction = abc
			} else {
				simplex.SetPoints([]mgl32.Vec3{a, c, b})
				newDir := abc.Mul(-1)
				*direction = newDir
			}
		}
	}
	return false
}

func lineCase(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.points[0]
	b := simplex.points[1]
	ab := b.Sub(a)
	ao := a.Mul(-1)
	if SameDirection(ab, ao) {
		newDir := ab.Cross(ao).Cross(ab)
		if newDir.Len() < normalizeEpsilon {
			// the origin lies on the edge itself, any sideways direction works
			newDir = AnyPerpendicular(ab)
		}
		*direction = newDir
	} else {
		simplex.SetPoints([]mgl32.Vec3{a})
		*direction = ao
	}
	return false
}
