// Package shape implements support mappings for convex primitives.
//
// A support mapping returns the point of a convex shape farthest along a
// direction. It is the only query a GJK/EPA driver needs from a shape: the
// full geometry is never enumerated.
//
// Every shape here is an immutable value type. Support never fails: degenerate
// inputs (zero direction, zero radius, zero-length capsule axis) take an
// explicit branch and return a deterministic point.
package shape

import (
	"math"

	"github.com/akmonengine/support/vector"
)

// Kind identifies the concrete type behind a Shape
type Kind int

const (
	KindSphere Kind = iota
	KindAabb
	KindTetrahedron
	KindCapsule
	KindTransformed
	KindDifference
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindAabb:
		return "aabb"
	case KindTetrahedron:
		return "tetrahedron"
	case KindCapsule:
		return "capsule"
	case KindTransformed:
		return "transformed"
	case KindDifference:
		return "difference"
	}
	return "unknown"
}

// Shape is the interface that all convex shapes implement
type Shape interface {
	Kind() Kind
	// Support returns the point of the shape farthest along direction,
	// in the shape's own coordinate space
	Support(direction vector.Vec3) vector.Vec3
	// Bounds returns the axis-aligned box enclosing the shape
	Bounds() Aabb
}

// Support returns the support point of s along direction.
// Exactly one algorithm runs, selected by the dynamic type of s.
func Support(direction vector.Vec3, s Shape) vector.Vec3 {
	return s.Support(direction)
}

// Sphere is a ball of the given radius around Center
type Sphere struct {
	Center vector.Vec3
	Radius float64
}

func (s Sphere) Kind() Kind {
	return KindSphere
}

// Support returns Center + normalized(direction) * Radius.
// A zero direction leaves the center unchanged.
func (s Sphere) Support(direction vector.Vec3) vector.Vec3 {
	return s.Center.Add(direction.Resized(s.Radius))
}

func (s Sphere) Bounds() Aabb {
	radiusVec := vector.Ones().Mul(s.Radius)

	return Aabb{
		Min: s.Center.Sub(radiusVec),
		Max: s.Center.Add(radiusVec),
	}
}

// Tetrahedron is the convex hull of four affinely independent points
type Tetrahedron struct {
	Points [4]vector.Vec3
}

func (t Tetrahedron) Kind() Kind {
	return KindTetrahedron
}

// Support returns the vertex with the greatest projection on direction.
// On ties, the vertex with the lowest index wins; a zero direction returns Points[0].
//
// This is an exact scan of the four vertices, not a face-normal region
// classification: the support of a convex hull is always one of its vertices.
// A direction perpendicular to an edge therefore returns one of the edge's
// endpoints, never an interior point of the edge.
func (t Tetrahedron) Support(direction vector.Vec3) vector.Vec3 {
	bestIndex := 0
	bestValue := t.Points[0].Dot(direction)

	for i := 1; i < len(t.Points); i++ {
		value := t.Points[i].Dot(direction)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}

	return t.Points[bestIndex]
}

// FaceNormals returns the outward normal of each face, unnormalized.
// Normal i belongs to the face opposite Points[i].
func (t Tetrahedron) FaceNormals() [4]vector.Vec3 {
	var normals [4]vector.Vec3

	for i := range t.Points {
		pivot := t.Points[(i+1)%4]
		arm1 := pivot.Sub(t.Points[(i+2)%4])
		arm2 := pivot.Sub(t.Points[(i+3)%4])
		normal := arm1.Cross(arm2)

		// Must point away from the opposite vertex
		if normal.Dot(t.Points[i].Sub(pivot)) > 0 {
			normal = normal.Neg()
		}
		normals[i] = normal
	}

	return normals
}

// ContainsPoint checks if the point is inside the tetrahedron or on its boundary
func (t Tetrahedron) ContainsPoint(point vector.Vec3) bool {
	normals := t.FaceNormals()

	for i, normal := range normals {
		if point.Sub(t.Points[(i+1)%4]).Dot(normal) > 0 {
			return false
		}
	}

	return true
}

func (t Tetrahedron) Bounds() Aabb {
	min := t.Points[0]
	max := t.Points[0]

	for _, p := range t.Points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}

	return Aabb{Min: min, Max: max}
}

// Capsule is the Minkowski sum of the segment [Points[0], Points[1]] and a
// sphere of the given radius
type Capsule struct {
	Points [2]vector.Vec3
	Radius float64
}

func (c Capsule) Kind() Kind {
	return KindCapsule
}

// Support picks the endpoint facing direction, then offsets it by Radius
// perpendicular to the axis.
//
// When direction is exactly collinear with the axis (or zero), the endpoint is
// returned unchanged: the radius offset is only ever taken perpendicular to
// the axis. A tie (direction perpendicular to the axis) picks Points[0].
func (c Capsule) Support(direction vector.Vec3) vector.Vec3 {
	altitude := c.Points[0].Sub(c.Points[1])

	endpoint := c.Points[0]
	if direction.Dot(altitude) < 0 {
		endpoint = c.Points[1]
	}

	if direction.IsCollinear(altitude) {
		return endpoint
	}

	offset := direction.ProjectOntoPlane(altitude).Resized(c.Radius)
	return endpoint.Add(offset)
}

func (c Capsule) Bounds() Aabb {
	var min, max vector.Vec3
	for axis := 0; axis < 3; axis++ {
		min[axis] = math.Min(c.Points[0][axis], c.Points[1][axis]) - c.Radius
		max[axis] = math.Max(c.Points[0][axis], c.Points[1][axis]) + c.Radius
	}

	return Aabb{Min: min, Max: max}
}
