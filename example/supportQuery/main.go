package main

import (
	"fmt"

	"github.com/akmonengine/support"
	"github.com/akmonengine/support/shape"
	"github.com/akmonengine/support/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// QueryDebugger instrumente les requêtes de support
type QueryDebugger interface {
	DebugShape(s shape.Shape)
	DebugSupport(s shape.Shape, direction, point vector.Vec3)
}

// SimpleDebugger implémente l'interface pour afficher les infos
type SimpleDebugger struct{}

func (d *SimpleDebugger) DebugShape(s shape.Shape) {
	bounds := s.Bounds()
	fmt.Printf("🔷 %s\n", s.Kind())
	fmt.Printf("   Bounds: min=%v max=%v\n", bounds.Min, bounds.Max)
}

func (d *SimpleDebugger) DebugSupport(s shape.Shape, direction, point vector.Vec3) {
	fmt.Printf("   Direction %v -> support %v (h=%.3f)\n", direction, point, point.Dot(direction))
}

// SetupScene creates one shape of each kind, plus a rotated box and a Minkowski difference
func SetupScene() []shape.Shape {
	box := shape.Aabb{Min: vector.New(0, 0, 0), Max: vector.New(2, 2, 2)}
	capsule := shape.Capsule{Points: [2]vector.Vec3{{0, 0, 0}, {0, 0, 4}}, Radius: 1}

	rotation := shape.NewTransform()
	rotation.Position = vector.New(-5, 5, -5)
	rotation.Rotation = mgl64.QuatRotate(mgl64.DegToRad(45), mgl64.Vec3{0, 0, 1})

	return []shape.Shape{
		shape.Sphere{Center: vector.New(1, 2, 3), Radius: 2},
		box,
		shape.Tetrahedron{Points: [4]vector.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}},
		capsule,
		shape.Transformed{Shape: box, Transform: rotation},
		shape.Difference{A: capsule, B: box},
	}
}

func main() {
	fmt.Println("🧪 Requêtes de support")
	fmt.Println("======================")

	debugger := &SimpleDebugger{}
	directions := []vector.Vec3{
		vector.New(1, 1, 1),
		vector.New(-1, 1, 1),
		vector.New(0, 0, 1),
		vector.New(1, 0, 0),
		vector.Zeros(),
	}

	for _, s := range SetupScene() {
		debugger.DebugShape(s)

		points := support.Batch(2, s, directions)
		for i, point := range points {
			debugger.DebugSupport(s, directions[i], point)
		}
		fmt.Println()
	}
}
