package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// MaxPolygonVertices matches the engine's polygon vertex limit.
const MaxPolygonVertices = 8

// Polygon is a fixed-capacity vertex list in pixels, relative to the configured origin.
type Polygon struct {
	points [MaxPolygonVertices]Vertex
	count  int
}

// NewPolygon copies at most MaxPolygonVertices vertices.
func NewPolygon(vertices []Vertex) Polygon {
	var p Polygon
	p.count = copy(p.points[:], vertices)
	return p
}

func (p *Polygon) Len() int {
	if p == nil {
		return 0
	}
	return p.count
}

func (p *Polygon) At(i int) Vertex {
	return p.points[i]
}

// Valid reports whether the engine can accept the polygon: at least three
// vertices, no duplicates, no collinear or interior points, a convex winding and
// a non-zero area.
func (p *Polygon) Valid() bool {
	if p == nil || p.count < 3 {
		return false
	}

	verts := make([]cp.Vector, p.count)
	for i := 0; i < p.count; i++ {
		verts[i] = cp.Vector{X: p.points[i].X, Y: p.points[i].Y}
	}
	if math.Abs(cp.AreaForPoly(p.count, verts, 0)) == 0 {
		return false
	}

	// ConvexHull reorders its input.
	hull := append([]cp.Vector(nil), verts...)
	var first int
	if cp.ConvexHull(p.count, hull, &first, 0) != p.count {
		return false
	}

	return convexWinding(verts)
}

// convexWinding checks that every turn along the vertex order has the same sign.
func convexWinding(verts []cp.Vector) bool {
	n := len(verts)
	sign := 0.0
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		c := verts[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			return false
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}
