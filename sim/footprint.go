package sim

import (
	"fmt"
	"math"

	"github.com/robobench/robobench/sim/scene"
)

// Circumradius reduces a robot footprint to its effective radius: the
// maximum distance from the robot's center to any point on its boundary.
// This single scalar is all the collision model needs; it lets the robot
// be treated as a point against obstacles inflated by the same amount.
//
// Misconfigured footprints are rejected outright. There is no fallback
// shape: a silently substituted radius would change scores without any
// diagnostic.
func Circumradius(fp scene.RobotFootprint) (float64, error) {
	switch fp.Shape {
	case scene.ShapeRect:
		if fp.WidthCM <= 0 {
			return 0, &scene.ConfigurationError{Field: "ROBOT_WIDTH_CM", Reason: "must be positive"}
		}
		if fp.HeightCM <= 0 {
			return 0, &scene.ConfigurationError{Field: "ROBOT_HEIGHT_CM", Reason: "must be positive"}
		}
		return math.Hypot(fp.WidthCM/2, fp.HeightCM/2), nil
	case scene.ShapeCircle:
		if fp.RadiusCM <= 0 {
			return 0, &scene.ConfigurationError{Field: "ROBOT_RADIUS_CM", Reason: "must be positive"}
		}
		return fp.RadiusCM, nil
	case scene.ShapePolygon:
		if fp.PolyFaces < 3 {
			return 0, &scene.ConfigurationError{Field: "ROBOT_POLY_FACES", Reason: "must be at least 3"}
		}
		if fp.PolyRadiusCM <= 0 {
			return 0, &scene.ConfigurationError{Field: "ROBOT_POLY_RADIUS_CM", Reason: "must be positive"}
		}
		// The model stores the circumscribed radius directly.
		return fp.PolyRadiusCM, nil
	default:
		return 0, &scene.ConfigurationError{
			Field:  "ROBOT_SHAPE",
			Reason: fmt.Sprintf("unknown shape %q (want rect, circle or polygon)", fp.Shape),
		}
	}
}
