package shape

import (
	"github.com/akmonengine/support/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a position and orientation in 3D space
type Transform struct {
	Position vector.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: vector.Zeros(),
		Rotation: mgl64.QuatIdent(),
	}
}

// Apply maps a local point to world space (rotation then translation)
func (t Transform) Apply(point vector.Vec3) vector.Vec3 {
	return t.Position.Add(vector.FromMgl(t.Rotation.Rotate(point.Mgl())))
}

// ToLocal maps a world direction to local space (inverse rotation only)
func (t Transform) ToLocal(direction vector.Vec3) vector.Vec3 {
	return vector.FromMgl(t.Rotation.Inverse().Rotate(direction.Mgl()))
}

// Transformed places a shape in world space.
// Transform.Rotation must be a non-zero quaternion; use NewTransform as a base.
type Transformed struct {
	Shape     Shape
	Transform Transform
}

func (t Transformed) Kind() Kind {
	return KindTransformed
}

func (t Transformed) Support(direction vector.Vec3) vector.Vec3 {
	// 1. Direction in local space
	localDirection := t.Transform.ToLocal(direction)

	// 2. Support in local space
	localSupport := t.Shape.Support(localDirection)

	// 3. Back to world space (rotation + translation)
	return t.Transform.Apply(localSupport)
}

func (t Transformed) Bounds() Aabb {
	return boundsFromSupport(t)
}
