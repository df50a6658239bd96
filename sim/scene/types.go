// Package scene defines the structured inputs to the benchmark engine: the
// parsed scene description (canvas, start pose, goal, robot footprint,
// obstacles) and the instruction list. Parsers for the environment.txt /
// instructions.txt text formats and a YAML scene format live here too; the
// engine itself only ever sees the structured types.
package scene

// TurnConvention selects the sign mapping from an instruction's literal
// angle to the internal heading delta.
type TurnConvention string

const (
	RightPositive TurnConvention = "right_positive"
	LeftPositive  TurnConvention = "left_positive"
)

// Valid reports whether the convention is one of the two recognized values.
func (tc TurnConvention) Valid() bool {
	return tc == RightPositive || tc == LeftPositive
}

// Pose is a robot pose in world coordinates. Heading 0 points along +y and
// right_positive turns increase heading clockwise (compass bearing).
type Pose struct {
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	HeadingDeg float64 `json:"heading_deg" yaml:"heading_deg"`
}

// Goal is the target region: a disc around (X, Y).
type Goal struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	RadiusCM float64 `yaml:"radius_cm"`
}

// FootprintShape tags the RobotFootprint variant.
type FootprintShape string

const (
	ShapeRect    FootprintShape = "rect"
	ShapeCircle  FootprintShape = "circle"
	ShapePolygon FootprintShape = "polygon"
)

// RobotFootprint is the robot's physical shape. Only the fields of the
// tagged variant are meaningful: WidthCM/HeightCM for rect, RadiusCM for
// circle, PolyFaces/PolyRadiusCM for polygon (PolyRadiusCM is the
// circumscribed radius).
type RobotFootprint struct {
	Shape        FootprintShape `yaml:"shape"`
	WidthCM      float64        `yaml:"width_cm,omitempty"`
	HeightCM     float64        `yaml:"height_cm,omitempty"`
	RadiusCM     float64        `yaml:"radius_cm,omitempty"`
	PolyFaces    int            `yaml:"poly_faces,omitempty"`
	PolyRadiusCM float64        `yaml:"poly_radius_cm,omitempty"`
}

// ObstacleKind tags the RawObstacle variant.
type ObstacleKind string

const (
	ObstacleCircle  ObstacleKind = "circle"
	ObstaclePolygon ObstacleKind = "polygon"
)

// RawObstacle is an obstacle descriptor as parsed from the scene, before
// inflation. For circles RadiusCM is the circle radius; for polygons it is
// the circumscribed radius and Faces/RotDeg complete the shape.
type RawObstacle struct {
	Kind     ObstacleKind `yaml:"kind"`
	CX       float64      `yaml:"cx"`
	CY       float64      `yaml:"cy"`
	RadiusCM float64      `yaml:"radius_cm"`
	Faces    int          `yaml:"faces,omitempty"`
	RotDeg   float64      `yaml:"rot_deg,omitempty"`
}

// Scene is the full parsed scene description consumed by the engine.
type Scene struct {
	ScreenWidth    int            `yaml:"screen_width"`
	ScreenHeight   int            `yaml:"screen_height"`
	Start          Pose           `yaml:"start"`
	Goal           Goal           `yaml:"goal"`
	Robot          RobotFootprint `yaml:"robot"`
	ClearanceCM    float64        `yaml:"clearance_cm"`
	TurnConvention TurnConvention `yaml:"turn_convention"`
	Obstacles      []RawObstacle  `yaml:"obstacles"`
}

// Default returns a Scene populated with the same defaults the text parser
// applies: an 800x600 canvas, origin start, right_positive turns, a 20x20
// rect robot with 5 cm clearance and a 10 cm goal disc at the origin.
func Default() Scene {
	return Scene{
		ScreenWidth:    800,
		ScreenHeight:   600,
		Start:          Pose{},
		Goal:           Goal{RadiusCM: 10},
		Robot:          RobotFootprint{Shape: ShapeRect, WidthCM: 20, HeightCM: 20},
		ClearanceCM:    5,
		TurnConvention: RightPositive,
	}
}

// Validate checks the scene-level invariants that do not depend on the
// robot footprint or obstacle geometry (those are validated by the engine
// when it reduces and inflates them).
func (s *Scene) Validate() error {
	if !s.TurnConvention.Valid() {
		return &ConfigurationError{Field: "TURN_CONVENTION", Reason: "must be right_positive or left_positive"}
	}
	if s.ClearanceCM < 0 {
		return &ConfigurationError{Field: "CLEARANCE_CM", Reason: "must be non-negative"}
	}
	if s.Goal.RadiusCM <= 0 {
		return &ConfigurationError{Field: "GOAL_RADIUS_CM", Reason: "must be positive"}
	}
	return nil
}

// Op tags the Instruction variant.
type Op string

const (
	OpMove Op = "move"
	OpTurn Op = "turn"
)

// Instruction is a single primitive motion command: move(distance_cm) or
// turn(angle_deg). Move distances may be negative (reverse); turn angles
// are interpreted per the scene's turn convention.
type Instruction struct {
	Op    Op
	Value float64
}
