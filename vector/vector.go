// Package vector provides the 3-component vector used by every support mapping.
//
// Vec3 is a defined type over mgl64.Vec3: the arithmetic comes from mathgl, and
// the package adds the operations support mappings rely on (zero-safe
// normalization, projections, exact collinearity and perpendicularity tests).
//
// All methods are pure and never fail. Comparisons are exact: IsCollinear and
// IsPerpendicular compare against zero without tolerance. Use ApproxEqual when
// a tolerance is wanted.
package vector

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a 3D vector (x, y, z).
type Vec3 mgl64.Vec3

// New creates a vector from its three components.
func New(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zeros returns the zero vector.
func Zeros() Vec3 {
	return Vec3{0, 0, 0}
}

// Ones returns the vector with every component set to 1.
func Ones() Vec3 {
	return Vec3{1, 1, 1}
}

// FromMgl converts a mathgl vector.
func FromMgl(v mgl64.Vec3) Vec3 {
	return Vec3(v)
}

// Mgl converts the vector back to mathgl, e.g. to rotate it with a mgl64.Quat.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3(v.Mgl().Add(other.Mgl()))
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3(v.Mgl().Sub(other.Mgl()))
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float64) Vec3 {
	return v.AddScalar(-s)
}

// Mul scales the vector by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3(v.Mgl().Mul(s))
}

// Div scales the vector by 1/s. Dividing by zero yields infinities or NaN,
// as float division does; Normalized never calls it with zero.
func (v Vec3) Div(s float64) Vec3 {
	return v.Mul(1.0 / s)
}

// MulVec multiplies component-wise.
func (v Vec3) MulVec(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.Mgl().Dot(other.Mgl())
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3(v.Mgl().Cross(other.Mgl()))
}

// NormSq returns the squared length.
func (v Vec3) NormSq() float64 {
	return v.Mgl().LenSqr()
}

// Norm returns the length.
func (v Vec3) Norm() float64 {
	return v.Mgl().Len()
}

// Normalized returns the unit vector with the same direction.
// The zero vector is returned unchanged: mgl64's Normalize would divide by zero.
func (v Vec3) Normalized() Vec3 {
	length := v.Norm()
	if length == 0 {
		return v
	}
	return v.Div(length)
}

// Resized returns a vector of the given length along v, or v itself if it is zero.
func (v Vec3) Resized(length float64) Vec3 {
	return v.Normalized().Mul(length)
}

// ProjectOnto returns the projection of v on other.
// other must not be the zero vector.
func (v Vec3) ProjectOnto(other Vec3) Vec3 {
	return other.Mul(v.Dot(other) / other.NormSq())
}

// ProjectOntoPlane returns the component of v orthogonal to normal (the rejection).
func (v Vec3) ProjectOntoPlane(normal Vec3) Vec3 {
	return v.Sub(v.ProjectOnto(normal))
}

// IsCollinear reports whether the cross product of v and other is exactly zero.
// The zero vector is collinear with everything.
func (v Vec3) IsCollinear(other Vec3) bool {
	return v.Cross(other).NormSq() == 0
}

// IsPerpendicular reports whether the dot product of v and other is exactly zero.
func (v Vec3) IsPerpendicular(other Vec3) bool {
	return v.Dot(other) == 0
}

// ApproxEqual compares component-wise within threshold (mgl64 semantics).
func (v Vec3) ApproxEqual(other Vec3, threshold float64) bool {
	return v.Mgl().ApproxEqualThreshold(other.Mgl(), threshold)
}
