package common

// Logical screen size. The window may be any size; ebiten scales to it.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Aspect returns width over height, or 1 for a degenerate size.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
