package hexagon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"michelo851a1203/hexabounce/vec"
)

func TestNewConstruction(t *testing.T) {
	center := vec.New(40, -25)
	h := New(center, 200, 0.7)

	for i, v := range h.Vertices {
		assert.InDelta(t, 200, center.Distance(v), 1e-9, "vertex %d distance", i)
	}

	for i, e := range h.Edges {
		assert.Equal(t, h.Vertices[i], e.A)
		assert.Equal(t, h.Vertices[(i+1)%6], e.B)

		assert.InDelta(t, 1, e.Normal.Magnitude(), 1e-12, "edge %d normal length", i)

		// Normal must be perpendicular to the edge and point toward the center.
		assert.InDelta(t, 0, e.Normal.Dot(e.B.Sub(e.A)), 1e-9, "edge %d perpendicularity", i)
		mid := e.A.Add(e.B).Scale(0.5)
		assert.Greater(t, e.Normal.Dot(center.Sub(mid)), 0.0, "edge %d normal direction", i)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	h := New(vec.New(10, 20), 150, 0.3)
	back := h.Rotate(1.234).Rotate(-1.234)

	for i := range h.Vertices {
		assert.InDelta(t, h.Vertices[i].X, back.Vertices[i].X, 1e-9)
		assert.InDelta(t, h.Vertices[i].Y, back.Vertices[i].Y, 1e-9)
	}
	assert.InDelta(t, h.Rotation, back.Rotation, 1e-12)
}

func TestRotatePreservesCenterAndRadius(t *testing.T) {
	h := New(vec.New(5, 5), 80, 0)
	r := h.Rotate(2.5)
	assert.Equal(t, h.Center, r.Center)
	assert.Equal(t, h.Radius, r.Radius)
	assert.InDelta(t, 2.5, r.Rotation, 1e-12)
}

func TestContainsPoint(t *testing.T) {
	h := New(vec.New(0, 0), 100, 0.4)

	assert.True(t, h.ContainsPoint(vec.New(0, 0)))
	assert.True(t, h.ContainsPoint(vec.New(30, -17)))
	assert.False(t, h.ContainsPoint(vec.New(150, 0)))
	assert.False(t, h.ContainsPoint(vec.New(0, -101)))
	assert.False(t, h.ContainsPoint(vec.New(-99, 99)))
}

func TestClosestPointOnSegment(t *testing.T) {
	a := vec.New(0, 0)
	b := vec.New(10, 0)

	// Projection inside the segment.
	closest, dist, on := ClosestPointOnSegment(vec.New(4, 3), a, b)
	assert.Equal(t, vec.New(4, 0), closest)
	assert.InDelta(t, 3, dist, 1e-12)
	assert.True(t, on)

	// Projection clamped to endpoint a.
	closest, dist, on = ClosestPointOnSegment(vec.New(-3, 4), a, b)
	assert.Equal(t, a, closest)
	assert.InDelta(t, 5, dist, 1e-12)
	assert.False(t, on)

	// Projection clamped to endpoint b.
	closest, _, on = ClosestPointOnSegment(vec.New(14, 0), a, b)
	assert.Equal(t, b, closest)
	assert.False(t, on)
}

func TestClosestPointOnDegenerateSegment(t *testing.T) {
	a := vec.New(2, 2)
	closest, dist, on := ClosestPointOnSegment(vec.New(5, 6), a, a)
	assert.Equal(t, a, closest)
	assert.InDelta(t, 5, dist, 1e-12)
	assert.True(t, on)
}

func TestCircleCollisionAtCenter(t *testing.T) {
	h := New(vec.New(0, 0), 200, 0)
	inradius := 200 * math.Sqrt(3) / 2

	// Inside the inradius: no edge reachable.
	_, hit := h.CircleCollision(vec.New(0, 0), inradius-1)
	assert.False(t, hit)

	// Past the inradius: some edge is penetrated.
	contact, hit := h.CircleCollision(vec.New(0, 0), inradius+5)
	require.True(t, hit)
	assert.InDelta(t, 5, contact.Depth, 1e-9)
}

func TestCircleCollisionNearEdge(t *testing.T) {
	h := New(vec.New(0, 0), 200, 0)
	inradius := 200 * math.Sqrt(3) / 2

	// Ball sitting just past the bottom edge (screen y grows downward, so the
	// bottom edge is at y = +inradius for rotation 0).
	ball := vec.New(0, inradius-5)
	contact, hit := h.CircleCollision(ball, 10)
	require.True(t, hit)
	assert.InDelta(t, 5, contact.Depth, 1e-9)
	assert.InDelta(t, 0, contact.Edge.Normal.X, 1e-9)
	assert.InDelta(t, -1, contact.Edge.Normal.Y, 1e-9)
	assert.InDelta(t, inradius, contact.Point.Y, 1e-9)

	// Same spot, smaller ball: no contact.
	_, hit = h.CircleCollision(ball, 4)
	assert.False(t, hit)
}

func TestBounds(t *testing.T) {
	h := New(vec.New(50, 60), 100, 0)
	box := h.Bounds()
	halfHeight := 100 * math.Sqrt(3) / 2

	assert.InDelta(t, -50, box.Min.X, 1e-9)
	assert.InDelta(t, 150, box.Max.X, 1e-9)
	assert.InDelta(t, 60-halfHeight, box.Min.Y, 1e-9)
	assert.InDelta(t, 60+halfHeight, box.Max.Y, 1e-9)
}
