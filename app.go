package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/carrykit/engine/carry"
	"github.com/memmaker/carrykit/engine/phys"
	"github.com/memmaker/carrykit/engine/util"
	"go.uber.org/zap"
)

// Headless walkthrough: a carried ball is pushed into a wall and the
// engine keeps it on the near side, then the controller retreats and the
// ball follows again.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config := carry.DefaultConfig()
	if _, statErr := os.Stat("carry.yaml"); statErr == nil {
		config, err = carry.LoadConfig("carry.yaml")
		if err != nil {
			logger.Fatal("config rejected", zap.Error(err))
		}
	}
	config.SnapToSurface = true

	world := phys.NewWorld(logger.Named("phys"))
	world.AddObstacle(phys.NewObstacle("floor", phys.NewBoxShape(mgl32.Vec3{10, 0.5, 10}), mgl32.Vec3{0, -0.5, 0}))
	world.AddObstacle(phys.NewObstacle("wall", phys.NewBoxShape(mgl32.Vec3{0.05, 2, 2}), mgl32.Vec3{2.05, 2, 0}))

	ball := carry.NewBody(world, "ball", phys.NewSphereShape(0.2), mgl32.Vec3{0, 0.4, 0})
	manager := carry.NewManager(world, config, logger.Named("carry"))

	controller := util.NewTransformFromForward(mgl32.Vec3{-1, 0.4, 0}, mgl32.Vec3{1, 0, 0})
	if !manager.Acquire(ball, controller.GetPosition()) {
		logger.Fatal("could not acquire the ball")
	}
	for tick := 0; tick < 120; tick++ {
		step := float32(0.05)
		if tick >= 60 {
			step = -0.05 // walk back out of the wall
		}
		controller.SetPosition(controller.GetPosition().Add(mgl32.Vec3{step, 0, 0}))
		applied := manager.TickDrag(ball, controller.GetPosition(), controller.GetForward())
		if tick%10 == 0 {
			logger.Info("tick", zap.Int("n", tick), zap.String("position", fmt.Sprintf("%v", applied)))
		}
	}
	manager.Release(ball)

	if err = phys.SaveScene("scene.nbt.gz", world); err != nil {
		logger.Warn("could not snapshot the scene", zap.Error(err))
	} else {
		logger.Info("scene written", zap.String("file", "scene.nbt.gz"))
	}
}
