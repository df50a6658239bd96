// Package geom provides the 2D signed-distance primitives used for
// collision testing. All functions are pure; distances are negative when
// the query point lies inside the shape.
//
// Polygon inflation is modeled by subtracting a uniform margin from the
// signed distance to the original boundary rather than constructing an
// offset polygon. For the convex regular polygons produced by
// RegularPolygonVertices this is exact away from vertices.
package geom

import "math"

// Point is a 2D point or vector in world coordinates (cm).
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceToCircle returns the signed distance from p to the circle of
// radius r centered at (cx, cy). Negative means p is inside.
func DistanceToCircle(p Point, cx, cy, r float64) float64 {
	return math.Hypot(p.X-cx, p.Y-cy) - r
}

// PointSegmentDistance returns the distance from p to the segment ab.
// A degenerate segment (a == b) is treated as the point a.
func PointSegmentDistance(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := p.X-a.X, p.Y-a.Y
	denom := abx*abx + aby*aby
	if denom == 0 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / denom
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}

// PointInPolygon reports whether p lies inside the simple polygon given by
// verts, using the ray-crossing test. Points exactly on an edge may report
// either side; callers only consume the result through signed distances,
// where the boundary is distance zero regardless.
func PointInPolygon(p Point, verts []Point) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// DistanceToPolygon returns the signed distance from p to the polygon
// boundary inflated outward by inflate: the minimum point-to-segment
// distance over all edges, negated when p is inside, minus inflate.
// Polygons with fewer than 3 vertices yield a GeometryError.
func DistanceToPolygon(p Point, verts []Point, inflate float64) (float64, error) {
	if len(verts) < 3 {
		return 0, &GeometryError{Op: "DistanceToPolygon", Reason: "polygon has fewer than 3 vertices"}
	}
	dEdge := math.Inf(1)
	n := len(verts)
	for i := 0; i < n; i++ {
		d := PointSegmentDistance(p, verts[i], verts[(i+1)%n])
		if d < dEdge {
			dEdge = d
		}
	}
	if PointInPolygon(p, verts) {
		dEdge = -dEdge
	}
	return dEdge - inflate, nil
}

// RegularPolygonVertices materializes the vertices of a regular polygon
// with the given circumscribed radius: vertex k sits at angle
// rotDeg + k*360/faces (degrees, counter-clockwise from +x), distance R
// from the center.
func RegularPolygonVertices(cx, cy, r float64, faces int, rotDeg float64) []Point {
	verts := make([]Point, faces)
	rot := rotDeg * math.Pi / 180
	for k := 0; k < faces; k++ {
		ang := rot + 2*math.Pi*float64(k)/float64(faces)
		verts[k] = Point{X: cx + r*math.Cos(ang), Y: cy + r*math.Sin(ang)}
	}
	return verts
}
