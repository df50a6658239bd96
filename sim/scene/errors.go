package scene

import "fmt"

// ConfigurationError reports invalid robot or scene geometry: a
// non-positive dimension, negative clearance, a degenerate polygon, or an
// unparseable environment line. Fatal to the run; values are never clamped
// into range.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// InstructionError reports a malformed or unrecognized motion command.
// Line is the 1-based source line for parse failures; Index is the 0-based
// position in the instruction list for simulation failures. Whichever is
// relevant is set; the other is -1.
type InstructionError struct {
	Line   int
	Index  int
	Text   string
	Reason string
}

func (e *InstructionError) Error() string {
	where := fmt.Sprintf("index %d", e.Index)
	if e.Line > 0 {
		where = fmt.Sprintf("line %d", e.Line)
	}
	if e.Text != "" {
		return fmt.Sprintf("instruction %s (%q): %s", where, e.Text, e.Reason)
	}
	return fmt.Sprintf("instruction %s: %s", where, e.Reason)
}
