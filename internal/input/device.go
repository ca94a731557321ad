// Package input defines the polled keyboard and mouse interface the player
// reads, and a scriptable Virtual device for tests and headless runs.
package input

// Axis and key names used by the game.
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"

	KeyFlashlight = "f"
	KeyUse        = "e"
)

// Device is polled once per tick or frame.
type Device interface {
	// Axis returns a value in [-1, 1].
	Axis(name string) float64
	IsKeyDown(key string) bool
	// IsKeyNewlyPressed is true only on the first poll after the key went down.
	IsKeyNewlyPressed(key string) bool
	// FlushMouseDelta returns the motion accumulated since the last flush and
	// resets it to zero.
	FlushMouseDelta() (dx, dy float64)
}
