package phys

import (
	"compress/gzip"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Scene snapshots are gzipped NBT, one compound per obstacle.

type sceneRecord struct {
	Obstacles []obstacleRecord `nbt:"obstacles"`
}

type obstacleRecord struct {
	ID          string    `nbt:"id"`
	Name        string    `nbt:"name"`
	Kind        int32     `nbt:"kind"`
	Position    []float32 `nbt:"position"`
	Rotation    []float32 `nbt:"rotation"`
	HalfExtents []float32 `nbt:"half_extents"`
	Radius      float32   `nbt:"radius"`
	Points      []float32 `nbt:"points"`
	Layer       int32     `nbt:"layer"`
	Trigger     byte      `nbt:"trigger"`
}

func SaveScene(filename string, world *World) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "could not create scene file '%s'", filename)
	}
	defer file.Close()

	record := sceneRecord{}
	for _, o := range world.GetObstacles() {
		entry := obstacleRecord{
			ID:       o.ID.String(),
			Name:     o.Name,
			Kind:     int32(o.Shape.Kind),
			Position: []float32{o.Position.X(), o.Position.Y(), o.Position.Z()},
			Rotation: []float32{o.Rotation.V.X(), o.Rotation.V.Y(), o.Rotation.V.Z(), o.Rotation.W},
			Layer:    int32(o.Layer),
		}
		if o.Trigger {
			entry.Trigger = 1
		}
		switch o.Shape.Kind {
		case ShapeSphere:
			entry.Radius = o.Shape.Radius
		case ShapeHull:
			entry.Points = make([]float32, 0, len(o.Shape.Points)*3)
			for _, p := range o.Shape.Points {
				entry.Points = append(entry.Points, p.X(), p.Y(), p.Z())
			}
		default:
			entry.HalfExtents = []float32{o.Shape.HalfExtents.X(), o.Shape.HalfExtents.Y(), o.Shape.HalfExtents.Z()}
		}
		record.Obstacles = append(record.Obstacles, entry)
	}

	gzipWriter := gzip.NewWriter(file)
	if err = nbt.NewEncoder(gzipWriter).Encode(record, ""); err != nil {
		return errors.Wrapf(err, "could not encode scene '%s'", filename)
	}
	if err = gzipWriter.Close(); err != nil {
		return errors.Wrapf(err, "could not finish writing scene '%s'", filename)
	}
	return nil
}

func LoadScene(filename string) ([]*Obstacle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open scene file '%s'", filename)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "scene file '%s' is not gzipped", filename)
	}
	var record sceneRecord
	if _, err = nbt.NewDecoder(gzipReader).Decode(&record); err != nil {
		return nil, errors.Wrapf(err, "could not decode scene '%s'", filename)
	}

	obstacles := make([]*Obstacle, 0, len(record.Obstacles))
	for _, entry := range record.Obstacles {
		if len(entry.Position) != 3 {
			return nil, errors.Errorf("obstacle '%s' in scene '%s' has no position", entry.Name, filename)
		}
		var shape Shape
		switch ShapeKind(entry.Kind) {
		case ShapeSphere:
			shape = NewSphereShape(entry.Radius)
		case ShapeHull:
			points := make([]mgl32.Vec3, 0, len(entry.Points)/3)
			for i := 0; i+2 < len(entry.Points); i += 3 {
				points = append(points, mgl32.Vec3{entry.Points[i], entry.Points[i+1], entry.Points[i+2]})
			}
			shape = NewHullShape(points)
		default:
			if len(entry.HalfExtents) != 3 {
				return nil, errors.Errorf("box obstacle '%s' in scene '%s' has no half extents", entry.Name, filename)
			}
			shape = NewBoxShape(mgl32.Vec3{entry.HalfExtents[0], entry.HalfExtents[1], entry.HalfExtents[2]})
		}
		id, idErr := uuid.Parse(entry.ID)
		if idErr != nil {
			id = uuid.New()
		}
		rotation := mgl32.QuatIdent()
		if len(entry.Rotation) == 4 {
			rotation = mgl32.Quat{V: mgl32.Vec3{entry.Rotation[0], entry.Rotation[1], entry.Rotation[2]}, W: entry.Rotation[3]}
		}
		obstacles = append(obstacles, &Obstacle{
			ID:       id,
			Name:     entry.Name,
			Shape:    shape,
			Position: mgl32.Vec3{entry.Position[0], entry.Position[1], entry.Position[2]},
			Rotation: rotation,
			Layer:    Layer(entry.Layer),
			Trigger:  entry.Trigger != 0,
		})
	}
	return obstacles, nil
}
