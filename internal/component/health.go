// internal/component/health.go
package component

// Health tracks current and maximum hit points.
// Value stays within [0, Max] at all times.
type Health struct {
	Value int
	Max   int
}
