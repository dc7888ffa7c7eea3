package phys

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ObstaclesFromGLTF imports every mesh node of a glTF document as a convex
// hull obstacle. Concave geometry collides as its convex cover, which is
// good enough for walls, props and furniture shells.
func ObstaclesFromGLTF(filename string, layer Layer) ([]*Obstacle, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open gltf file '%s'", filename)
	}
	var result []*Obstacle
	for _, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		mesh := doc.Meshes[*node.Mesh]
		scale := node.ScaleOrDefault()
		var points []mgl32.Vec3
		for _, primitive := range mesh.Primitives {
			positionIndex, hasPositions := primitive.Attributes["POSITION"]
			if !hasPositions {
				continue
			}
			var vertBuffer [][3]float32
			vertBuffer, err = modeler.ReadPosition(doc, doc.Accessors[positionIndex], vertBuffer)
			if err != nil {
				return nil, errors.Wrapf(err, "could not read positions of mesh '%s'", mesh.Name)
			}
			for _, vertex := range vertBuffer {
				points = append(points, mgl32.Vec3{
					vertex[0] * scale[0],
					vertex[1] * scale[1],
					vertex[2] * scale[2],
				})
			}
		}
		if len(points) == 0 {
			continue
		}
		translation := node.TranslationOrDefault()
		rotation := node.RotationOrDefault()
		result = append(result, &Obstacle{
			ID:       uuid.New(),
			Name:     node.Name,
			Shape:    NewHullShape(points),
			Position: mgl32.Vec3{translation[0], translation[1], translation[2]},
			Rotation: mgl32.Quat{V: mgl32.Vec3{rotation[0], rotation[1], rotation[2]}, W: rotation[3]},
			Layer:    layer,
		})
	}
	return result, nil
}
