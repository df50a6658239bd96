package geom

import "fmt"

// GeometryError reports a degenerate shape reaching a distance function.
// Scene validation rejects such shapes upstream, so hitting one of these
// indicates a caller bug rather than bad user input.
type GeometryError struct {
	Op     string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Op, e.Reason)
}
