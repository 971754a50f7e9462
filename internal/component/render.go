// internal/component/render.go
package component

import "image/color"

// Renderable describes how an entity is drawn.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
