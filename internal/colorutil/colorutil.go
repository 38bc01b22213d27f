package colorutil

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// Palette of common colors.
var (
	White  = RGB{255, 255, 255}
	Black  = RGB{0, 0, 0}
	Red    = RGB{255, 0, 0}
	Green  = RGB{0, 255, 0}
	Blue   = RGB{0, 0, 255}
	Yellow = RGB{255, 255, 0}
	Purple = RGB{255, 0, 255}
	Cyan   = RGB{0, 255, 255}
)

// Darken scales each channel by factor, clamped to [0, 1].
// Used for flat-shading intensity modulation.
func Darken(c RGB, factor float64) RGB {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return RGB{
		R: uint8(float64(c.R)*factor + 0.5),
		G: uint8(float64(c.G)*factor + 0.5),
		B: uint8(float64(c.B)*factor + 0.5),
	}
}

// Invert returns the channel-wise complement.
func Invert(c RGB) RGB {
	return RGB{255 - c.R, 255 - c.G, 255 - c.B}
}
