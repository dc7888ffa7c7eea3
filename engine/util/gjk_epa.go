package util

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	epaTolerance     = 0.001
	epaMaxIterations = 48
)

// CollisionPoints describes how to separate two overlapping colliders.
// Normal is the direction that moves the first collider out of the second,
// PenetrationDepth how far it has to travel along it.
type CollisionPoints struct {
	Normal           mgl32.Vec3
	PenetrationDepth float32
	HasCollision     bool
}

// EPA expands the GJK termination simplex into a polytope around the origin
// of the Minkowski difference a-b and reads the penetration vector off its
// closest face. The expansion is bounded, so deeply overlapping curved
// shapes get an approximate answer rather than an endless loop.
// adapted from: https://blog.winter.dev/2020/epa-algorithm/
func EPA(simplex *Simplex, a, b Collider) CollisionPoints {
	polytope := []mgl32.Vec3{simplex.points[0], simplex.points[1], simplex.points[2], simplex.points[3]}
	faces := []uint{
		0, 1, 2,
		0, 3, 1,
		0, 2, 3,
		1, 3, 2,
	}
	normals, minFace := GetFaceNormals(polytope, faces)

	var minNormal mgl32.Vec3
	minDistance := float32(math32.MaxFloat32)

	for iteration := 0; minDistance == math32.MaxFloat32; iteration++ {
		minNormal = normals[minFace].Vec3()
		minDistance = normals[minFace].W()

		if iteration >= epaMaxIterations {
			break
		}

		support := Support(a, b, minNormal)
		supportDistance := minNormal.Dot(support)

		if math32.Abs(supportDistance-minDistance) <= epaTolerance {
			continue // the closest face is on the hull, we are done
		}
		minDistance = math32.MaxFloat32

		var uniqueEdges [][2]uint

		for i := 0; i < len(normals); i++ {
			if !SameDirection(normals[i].Vec3(), support.Sub(polytope[faces[i*3]])) {
				continue
			}
			f := uint(i * 3)

			uniqueEdges = addIfUniqueEdge(uniqueEdges, faces, f, f+1)
			uniqueEdges = addIfUniqueEdge(uniqueEdges, faces, f+1, f+2)
			uniqueEdges = addIfUniqueEdge(uniqueEdges, faces, f+2, f)

			faces[f+2] = faces[len(faces)-1]
			faces = faces[:len(faces)-1]
			faces[f+1] = faces[len(faces)-1]
			faces = faces[:len(faces)-1]
			faces[f] = faces[len(faces)-1]
			faces = faces[:len(faces)-1]

			normals[i] = normals[len(normals)-1]
			normals = normals[:len(normals)-1]

			i--
		}

		if len(uniqueEdges) == 0 {
			// numerically stuck, keep the best face we have
			minNormal = normals[minFace].Vec3()
			minDistance = normals[minFace].W()
			break
		}

		var newFaces []uint
		for _, edge := range uniqueEdges {
			newFaces = append(newFaces, edge[0], edge[1], uint(len(polytope)))
		}
		polytope = append(polytope, support)

		newNormals, newMinFace := GetFaceNormals(polytope, newFaces)

		oldMinDistance := float32(math32.MaxFloat32)
		for i := uint(0); i < uint(len(normals)); i++ {
			if normals[i].W() < oldMinDistance {
				oldMinDistance = normals[i].W()
				minFace = i
			}
		}
		if len(newNormals) > 0 && newNormals[newMinFace].W() < oldMinDistance {
			minFace = newMinFace + uint(len(normals))
		}

		normals = append(normals, newNormals...)
		faces = append(faces, newFaces...)
	}

	return CollisionPoints{
		// minNormal points from the origin towards the closest face of a-b,
		// so a escapes by moving against it
		Normal:           minNormal.Mul(-1),
		PenetrationDepth: minDistance + epaTolerance,
		HasCollision:     true,
	}
}

// addIfUniqueEdge keeps only the edges that border the hole torn into the
// polytope. A neighboring face shares an edge in reverse winding, so seeing
// the reverse means both faces are gone and the edge is interior.
func addIfUniqueEdge(edges [][2]uint, faces []uint, a uint, b uint) [][2]uint {
	for i := len(edges) - 1; i >= 0; i-- {
		if edges[i][0] == faces[b] && edges[i][1] == faces[a] {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return append(edges, [2]uint{faces[a], faces[b]})
}

// GetFaceNormals returns outward face normals with their distance from the
// origin in W, plus the index of the closest face.
func GetFaceNormals(polytope []mgl32.Vec3, faces []uint) ([]mgl32.Vec4, uint) {
	var normals []mgl32.Vec4
	minTriangle := uint(0)
	minDistance := float32(math32.MaxFloat32)

	for i := 0; i < len(faces); i += 3 {
		a := polytope[faces[i]]
		b := polytope[faces[i+1]]
		c := polytope[faces[i+2]]
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross.Len() < normalizeEpsilon {
			normals = append(normals, mgl32.Vec4{0, 0, 0, math32.MaxFloat32})
			continue
		}
		normal := cross.Normalize()
		distance := normal.Dot(a)

		if distance < 0 {
			normal = normal.Mul(-1)
			distance = -distance
		}

		normals = append(normals, mgl32.Vec4{normal.X(), normal.Y(), normal.Z(), distance})

		if distance < minDistance {
			minDistance = distance
			minTriangle = uint(i / 3)
		}
	}
	return normals, minTriangle
}
