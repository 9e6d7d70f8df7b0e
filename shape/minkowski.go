package shape

import "github.com/akmonengine/support/vector"

// Difference is the Minkowski difference A - B, the set of all a - b with a in A
// and b in B. The two shapes overlap iff it contains the origin, which is what
// a GJK driver tests by querying its support points.
type Difference struct {
	A Shape
	B Shape
}

func (d Difference) Kind() Kind {
	return KindDifference
}

// Support returns furthestPoint(A, direction) - furthestPoint(B, -direction)
func (d Difference) Support(direction vector.Vec3) vector.Vec3 {
	supportA := d.A.Support(direction)
	supportB := d.B.Support(direction.Neg())
	return supportA.Sub(supportB)
}

func (d Difference) Bounds() Aabb {
	a := d.A.Bounds()
	b := d.B.Bounds()

	return Aabb{
		Min: a.Min.Sub(b.Max),
		Max: a.Max.Sub(b.Min),
	}
}

// MayOverlap is a conservative pre-check for a GJK driver: false means the
// bounds of A and B are disjoint, so A and B cannot overlap.
func (d Difference) MayOverlap() bool {
	return d.A.Bounds().Overlaps(d.B.Bounds())
}
