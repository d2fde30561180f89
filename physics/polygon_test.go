package physics

import "testing"

func TestPolygonValid(t *testing.T) {
	cases := []struct {
		name  string
		verts []Vertex
		want  bool
	}{
		{"square_ccw", []Vertex{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, true},
		{"square_cw", []Vertex{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, true},
		{"triangle", []Vertex{{0, 0}, {10, 0}, {5, 8}}, true},
		{"too_few", []Vertex{{0, 0}, {10, 0}}, false},
		{"collinear", []Vertex{{0, 0}, {5, 0}, {10, 0}}, false},
		{"collinear_edge_point", []Vertex{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}, false},
		{"duplicate", []Vertex{{0, 0}, {10, 0}, {10, 0}, {0, 10}}, false},
		{"concave_arrow", []Vertex{{0, 0}, {10, 5}, {0, 10}, {3, 5}}, false},
		{"self_intersecting", []Vertex{{0, 0}, {10, 10}, {10, 0}, {0, 10}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPolygon(c.verts)
			if got := p.Valid(); got != c.want {
				t.Fatalf("Valid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNewPolygonTruncates(t *testing.T) {
	verts := make([]Vertex, 12)
	p := NewPolygon(verts)
	if p.Len() != MaxPolygonVertices {
		t.Fatalf("expected %d vertices, got %d", MaxPolygonVertices, p.Len())
	}

	var nilPoly *Polygon
	if nilPoly.Valid() || nilPoly.Len() != 0 {
		t.Fatalf("nil polygon should be empty and invalid")
	}
}
