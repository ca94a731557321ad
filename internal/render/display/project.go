package display

import (
	"image/color"

	"github.com/lightsout/lightsout/internal/vecmath"
)

// project maps a world offset from the camera onto the map view. facing is
// the horizontal look direction and points up the screen.
func project(rel, facing vecmath.Vector, scale float64) (x, y float64) {
	right := vecmath.Vec(-facing.Z(), 0, facing.X())
	return rel.Dot(right) * scale, -rel.Dot(facing) * scale
}

// shade scales an 0xRRGGBB colour by k in [0, 1].
func shade(c uint32, k float64) color.RGBA {
	k = min(max(k, 0), 1)
	return color.RGBA{
		R: uint8(float64(c>>16&0xff) * k),
		G: uint8(float64(c>>8&0xff) * k),
		B: uint8(float64(c&0xff) * k),
		A: 0xff,
	}
}
