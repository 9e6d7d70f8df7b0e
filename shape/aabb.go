package shape

import "github.com/akmonengine/support/vector"

// Aabb represents an axis-aligned box, Min <= Max on every axis
type Aabb struct {
	Min vector.Vec3
	Max vector.Vec3
}

func (a Aabb) Kind() Kind {
	return KindAabb
}

// Support returns the corner selected by the sign of each direction component:
// Max where the component is strictly positive, Min otherwise.
//
// A zero component is routed to the Min side. For axis-aligned directions
// several corners are equally valid supports; this always returns the one on
// the negative side of every zero axis.
//
// Coordinates are copied from Min and Max, never rebuilt as center ± half
// extents, so the returned corner is exact.
func (a Aabb) Support(direction vector.Vec3) vector.Vec3 {
	corner := a.Min
	for axis := 0; axis < 3; axis++ {
		if direction[axis] > 0 {
			corner[axis] = a.Max[axis]
		}
	}

	return corner
}

func (a Aabb) Bounds() Aabb {
	return a
}

func (a Aabb) Center() vector.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5).Add(a.Min)
}

func (a Aabb) HalfExtents() vector.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Corners returns the 8 corners, x varying fastest, then y, then z
func (a Aabb) Corners() [8]vector.Vec3 {
	var corners [8]vector.Vec3
	for i := range corners {
		corner := a.Min
		if i&1 != 0 {
			corner[0] = a.Max[0]
		}
		if i&2 != 0 {
			corner[1] = a.Max[1]
		}
		if i&4 != 0 {
			corner[2] = a.Max[2]
		}
		corners[i] = corner
	}

	return corners
}

// ContainsPoint reports whether point lies in the box, boundary included
func (a Aabb) ContainsPoint(point vector.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if !(point[axis] >= a.Min[axis] && point[axis] <= a.Max[axis]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether the closed boxes share at least one point.
// Touching faces, edges or corners count.
func (a Aabb) Overlaps(other Aabb) bool {
	for axis := 0; axis < 3; axis++ {
		if !(a.Max[axis] >= other.Min[axis] && a.Min[axis] <= other.Max[axis]) {
			return false
		}
	}
	return true
}

// Merge returns the smallest AABB enclosing both boxes
func (a Aabb) Merge(other Aabb) Aabb {
	merged := a
	for axis := 0; axis < 3; axis++ {
		merged.Min[axis] = min(a.Min[axis], other.Min[axis])
		merged.Max[axis] = max(a.Max[axis], other.Max[axis])
	}

	return merged
}

// boundsFromSupport builds the AABB of any shape from six axis support queries
func boundsFromSupport(s Shape) Aabb {
	var bounds Aabb
	for axis := 0; axis < 3; axis++ {
		var direction vector.Vec3
		direction[axis] = 1

		bounds.Max[axis] = s.Support(direction)[axis]
		bounds.Min[axis] = s.Support(direction.Neg())[axis]
	}

	return bounds
}
