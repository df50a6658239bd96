package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// decomment strips an inline '#' comment and surrounding whitespace.
func decomment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

var envFloatKeys = map[string]bool{
	"START_X": true, "START_Y": true, "START_HEADING_DEG": true,
	"GOAL_X": true, "GOAL_Y": true, "GOAL_RADIUS_CM": true,
	"ROBOT_WIDTH_CM": true, "ROBOT_HEIGHT_CM": true, "ROBOT_RADIUS_CM": true,
	"ROBOT_POLY_RADIUS_CM": true, "CLEARANCE_CM": true,
}

var envIntKeys = map[string]bool{
	"SCREEN_WIDTH": true, "SCREEN_HEIGHT": true, "ROBOT_POLY_FACES": true,
}

// ParseEnvironment parses the environment.txt key=value format: inline '#'
// comments, SCREEN_*/START_*/GOAL_* fields, robot fields with *_CM naming,
// and OBSTACLE lines of the form
//
//	OBSTACLE=circle:cx,cy,r
//	OBSTACLE=polygon:cx,cy,R,faces[,rot_deg]
//
// Unknown keys are logged as warnings and ignored; unparseable lines fail
// with a ConfigurationError naming the line.
func ParseEnvironment(r io.Reader) (Scene, error) {
	s := Default()
	floats := map[string]*float64{
		"START_X": &s.Start.X, "START_Y": &s.Start.Y, "START_HEADING_DEG": &s.Start.HeadingDeg,
		"GOAL_X": &s.Goal.X, "GOAL_Y": &s.Goal.Y, "GOAL_RADIUS_CM": &s.Goal.RadiusCM,
		"ROBOT_WIDTH_CM": &s.Robot.WidthCM, "ROBOT_HEIGHT_CM": &s.Robot.HeightCM,
		"ROBOT_RADIUS_CM": &s.Robot.RadiusCM, "ROBOT_POLY_RADIUS_CM": &s.Robot.PolyRadiusCM,
		"CLEARANCE_CM": &s.ClearanceCM,
	}
	ints := map[string]*int{
		"SCREEN_WIDTH": &s.ScreenWidth, "SCREEN_HEIGHT": &s.ScreenHeight,
		"ROBOT_POLY_FACES": &s.Robot.PolyFaces,
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := decomment(raw)
		if line == "" {
			continue
		}
		k, v, found := strings.Cut(line, "=")
		if !found {
			return Scene{}, &ConfigurationError{
				Field:  fmt.Sprintf("environment line %d", lineNo),
				Reason: fmt.Sprintf("expected key=value, got %q", raw),
			}
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)

		switch {
		case k == "OBSTACLE":
			obs, err := parseObstacle(v)
			if err != nil {
				return Scene{}, &ConfigurationError{
					Field:  fmt.Sprintf("environment line %d", lineNo),
					Reason: err.Error(),
				}
			}
			s.Obstacles = append(s.Obstacles, obs)
		case envFloatKeys[k]:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Scene{}, &ConfigurationError{
					Field:  fmt.Sprintf("environment line %d", lineNo),
					Reason: fmt.Sprintf("%s: invalid number %q", k, v),
				}
			}
			*floats[k] = f
		case envIntKeys[k]:
			// Tolerate "600" as well as "600.0".
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Scene{}, &ConfigurationError{
					Field:  fmt.Sprintf("environment line %d", lineNo),
					Reason: fmt.Sprintf("%s: invalid integer %q", k, v),
				}
			}
			*ints[k] = int(f)
		case k == "ROBOT_SHAPE":
			s.Robot.Shape = FootprintShape(strings.ToLower(v))
		case k == "TURN_CONVENTION":
			s.TurnConvention = TurnConvention(strings.ToLower(v))
		default:
			logrus.Warnf("environment line %d: unknown key %q, ignoring", lineNo, k)
		}
	}
	if err := scanner.Err(); err != nil {
		return Scene{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// parseObstacle parses the value side of an OBSTACLE line.
func parseObstacle(v string) (RawObstacle, error) {
	kind, rest, found := strings.Cut(v, ":")
	if !found {
		return RawObstacle{}, fmt.Errorf("expected OBSTACLE=<type>:<numbers>, got %q", v)
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	parts := strings.Split(rest, ",")
	nums := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return RawObstacle{}, fmt.Errorf("invalid number %q in obstacle %q", part, v)
		}
		nums = append(nums, f)
	}
	switch ObstacleKind(kind) {
	case ObstacleCircle:
		if len(nums) < 3 {
			return RawObstacle{}, fmt.Errorf("circle expects cx,cy,r, got %q", v)
		}
		return RawObstacle{Kind: ObstacleCircle, CX: nums[0], CY: nums[1], RadiusCM: nums[2]}, nil
	case ObstaclePolygon:
		if len(nums) != 4 && len(nums) != 5 {
			return RawObstacle{}, fmt.Errorf("polygon expects cx,cy,R,faces[,rot_deg], got %q", v)
		}
		obs := RawObstacle{
			Kind: ObstaclePolygon, CX: nums[0], CY: nums[1],
			RadiusCM: nums[2], Faces: int(nums[3]),
		}
		if len(nums) == 5 {
			obs.RotDeg = nums[4]
		}
		return obs, nil
	default:
		return RawObstacle{}, fmt.Errorf("unknown obstacle type %q", kind)
	}
}

// ParseInstructions parses the instructions.txt format: one move(<cm>) or
// turn(<deg>) call per line, '#' comments allowed, case and interior
// whitespace ignored. Any other call form fails with an InstructionError
// identifying the offending line.
func ParseInstructions(r io.Reader) ([]Instruction, error) {
	var ops []Instruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := decomment(raw)
		if line == "" {
			continue
		}
		compact := strings.ReplaceAll(strings.ToLower(line), " ", "")
		var op Op
		switch {
		case strings.HasPrefix(compact, "move(") && strings.HasSuffix(compact, ")"):
			op = OpMove
		case strings.HasPrefix(compact, "turn(") && strings.HasSuffix(compact, ")"):
			op = OpTurn
		default:
			return nil, &InstructionError{
				Line: lineNo, Index: -1, Text: strings.TrimSpace(raw),
				Reason: "instruction must be move(<cm>) or turn(<deg>)",
			}
		}
		arg := compact[len("move(") : len(compact)-1]
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, &InstructionError{
				Line: lineNo, Index: -1, Text: strings.TrimSpace(raw),
				Reason: fmt.Sprintf("invalid numeric argument %q", arg),
			}
		}
		ops = append(ops, Instruction{Op: op, Value: val})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading instructions: %w", err)
	}
	return ops, nil
}

// LoadEnvironment reads and parses an environment.txt file.
func LoadEnvironment(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("opening environment: %w", err)
	}
	defer f.Close()
	return ParseEnvironment(f)
}

// LoadInstructions reads and parses an instructions.txt file.
func LoadInstructions(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening instructions: %w", err)
	}
	defer f.Close()
	return ParseInstructions(f)
}
