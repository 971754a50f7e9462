// internal/component/movement.go
package component

// Position is the entity position component, in arena pixels.
type Position struct {
	X, Y float64
}

// Velocity is the entity velocity component, in arena velocity units.
// Systems multiply by their unit scale when advancing positions.
type Velocity struct {
	X, Y float64
}
