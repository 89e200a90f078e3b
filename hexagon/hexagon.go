// Package hexagon builds regular hexagons and answers the geometric queries
// the physics engine needs: point containment, closest point on an edge, and
// circle-vs-hexagon collision.
package hexagon

import (
	"math"

	"michelo851a1203/hexabounce/vec"
)

// Edge is a directed segment from A to B carrying the unit normal that points
// toward the hexagon's interior.
type Edge struct {
	A      vec.Vec
	B      vec.Vec
	Normal vec.Vec
}

// Hexagon is a regular hexagon at a point in time. It is immutable once
// constructed; Rotate returns a new value.
type Hexagon struct {
	Center   vec.Vec
	Radius   float64
	Rotation float64
	Vertices [6]vec.Vec
	Edges    [6]Edge
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max vec.Vec
}

// Contact describes a circle-vs-edge collision: the edge hit, the closest
// point on it, and how far the circle has overlapped past it along the
// inward normal.
type Contact struct {
	Edge  Edge
	Point vec.Vec
	Depth float64
}

// New builds a hexagon with vertices at angles rotation + k·60° for k=0..5.
// Edge i connects vertex i to vertex (i+1)%6; its normal is the normalized
// left-hand perpendicular of the edge direction, which points inward for
// this vertex ordering.
func New(center vec.Vec, radius, rotation float64) Hexagon {
	h := Hexagon{Center: center, Radius: radius, Rotation: rotation}
	for i := 0; i < 6; i++ {
		angle := rotation + float64(i)*math.Pi/3
		h.Vertices[i] = vec.New(
			center.X+radius*math.Cos(angle),
			center.Y+radius*math.Sin(angle),
		)
	}
	for i := 0; i < 6; i++ {
		a := h.Vertices[i]
		b := h.Vertices[(i+1)%6]
		dir := b.Sub(a)
		h.Edges[i] = Edge{
			A:      a,
			B:      b,
			Normal: vec.New(-dir.Y, dir.X).Normalize(),
		}
	}
	return h
}

// Rotate returns the hexagon turned by delta radians. The result is rebuilt
// from center, radius, and the summed angle rather than by transforming the
// existing vertices, so repeated rotation accumulates no drift.
func (h Hexagon) Rotate(delta float64) Hexagon {
	return New(h.Center, h.Radius, h.Rotation+delta)
}

// ContainsPoint reports whether p lies inside the hexagon, using an even-odd
// test that casts a horizontal ray rightward from p and counts edge
// crossings. A ray passing exactly through a vertex may misclassify; callers
// tolerate that.
func (h Hexagon) ContainsPoint(p vec.Vec) bool {
	inside := false
	for i := 0; i < 6; i++ {
		a := h.Vertices[i]
		b := h.Vertices[(i+1)%6]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// ClosestPointOnSegment projects p onto the line through a and b and clamps
// the projection parameter to [0,1]. It returns the closest point on the
// segment, the distance to it, and whether the unclamped projection already
// fell on the segment. A zero-length segment collapses to a.
func ClosestPointOnSegment(p, a, b vec.Vec) (closest vec.Vec, dist float64, onSegment bool) {
	ab := b.Sub(a)
	lenSq := ab.MagnitudeSquared()
	if lenSq == 0 {
		return a, p.Distance(a), true
	}
	t := p.Sub(a).Dot(ab) / lenSq
	onSegment = t >= 0 && t <= 1
	t = math.Max(0, math.Min(1, t))
	closest = a.Add(ab.Scale(t))
	return closest, p.Distance(closest), onSegment
}

// CircleCollision tests a circle against the hexagon boundary. All six edges
// are scanned and only the edge with the minimum distance to the circle
// center is reported, as a collision iff that distance is within the radius.
// At a corner where two edges are violated at once, whichever edge wins the
// minimum-distance scan is resolved; the other waits for a later step.
func (h Hexagon) CircleCollision(center vec.Vec, radius float64) (Contact, bool) {
	var nearest Contact
	minDist := math.Inf(1)
	for _, e := range h.Edges {
		point, dist, _ := ClosestPointOnSegment(center, e.A, e.B)
		if dist < minDist {
			minDist = dist
			nearest = Contact{Edge: e, Point: point}
		}
	}
	if minDist > radius {
		return Contact{}, false
	}
	nearest.Depth = radius - minDist
	return nearest, true
}

// Bounds returns the axis-aligned bounding box of the six vertices.
func (h Hexagon) Bounds() AABB {
	box := AABB{Min: h.Vertices[0], Max: h.Vertices[0]}
	for _, v := range h.Vertices[1:] {
		box.Min.X = math.Min(box.Min.X, v.X)
		box.Min.Y = math.Min(box.Min.Y, v.Y)
		box.Max.X = math.Max(box.Max.X, v.X)
		box.Max.Y = math.Max(box.Max.Y, v.Y)
	}
	return box
}
