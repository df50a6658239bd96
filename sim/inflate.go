package sim

import (
	"fmt"

	"github.com/robobench/robobench/sim/geom"
	"github.com/robobench/robobench/sim/scene"
)

// InflatedObstacle is an obstacle expanded by the robot's circumradius
// plus the safety clearance, ready for point-robot collision testing.
// For circles the margin is folded into EffectiveRadiusCM; for polygons
// the original vertices are kept and EffectiveRadiusCM is the uniform
// test margin subtracted from the signed distance to the true boundary.
// Obstacles are constructed once per run and never mutated.
type InflatedObstacle struct {
	Kind              scene.ObstacleKind
	Center            geom.Point
	Vertices          []geom.Point
	EffectiveRadiusCM float64
}

// SignedDistance returns the signed distance from p to the inflated
// obstacle boundary. Negative means the point-robot penetrates the
// obstacle's safety envelope.
func (o *InflatedObstacle) SignedDistance(p geom.Point) (float64, error) {
	switch o.Kind {
	case scene.ObstacleCircle:
		return geom.DistanceToCircle(p, o.Center.X, o.Center.Y, o.EffectiveRadiusCM), nil
	case scene.ObstaclePolygon:
		return geom.DistanceToPolygon(p, o.Vertices, o.EffectiveRadiusCM)
	default:
		return 0, &geom.GeometryError{Op: "SignedDistance", Reason: fmt.Sprintf("unknown obstacle kind %q", o.Kind)}
	}
}

// InflateObstacles builds the inflated collision set from the raw scene
// obstacles. circumradius comes from Circumradius; clearanceCM is the
// scene's safety margin. Invalid geometry is rejected, never clamped.
func InflateObstacles(raw []scene.RawObstacle, circumradius, clearanceCM float64) ([]InflatedObstacle, error) {
	if clearanceCM < 0 {
		return nil, &scene.ConfigurationError{Field: "CLEARANCE_CM", Reason: "must be non-negative"}
	}
	if circumradius < 0 {
		return nil, &scene.ConfigurationError{Field: "circumradius", Reason: "must be non-negative"}
	}

	inflated := make([]InflatedObstacle, 0, len(raw))
	for i, ro := range raw {
		field := fmt.Sprintf("OBSTACLE[%d]", i)
		if ro.RadiusCM < 0 {
			return nil, &scene.ConfigurationError{Field: field, Reason: "radius must be non-negative"}
		}
		switch ro.Kind {
		case scene.ObstacleCircle:
			inflated = append(inflated, InflatedObstacle{
				Kind:              scene.ObstacleCircle,
				Center:            geom.Point{X: ro.CX, Y: ro.CY},
				EffectiveRadiusCM: ro.RadiusCM + circumradius + clearanceCM,
			})
		case scene.ObstaclePolygon:
			if ro.Faces < 3 {
				return nil, &scene.ConfigurationError{Field: field, Reason: "polygon needs at least 3 faces"}
			}
			inflated = append(inflated, InflatedObstacle{
				Kind:              scene.ObstaclePolygon,
				Vertices:          geom.RegularPolygonVertices(ro.CX, ro.CY, ro.RadiusCM, ro.Faces, ro.RotDeg),
				EffectiveRadiusCM: circumradius + clearanceCM,
			})
		default:
			return nil, &scene.ConfigurationError{Field: field, Reason: fmt.Sprintf("unknown obstacle kind %q", ro.Kind)}
		}
	}
	return inflated, nil
}
