package terminal

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeIndex maps 0-255 to the nearest cube level 0-5
func cubeIndex(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 finds the nearest xterm 256-color palette index for an RGB value.
// Only the cube and the grayscale ramp are considered; indices 0-15 are
// user-themed and have no fixed RGB value.
func RGBTo256(c RGB) Color8 {
	r, g, b := c.R, c.G, c.B
	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cube := Color8(16 + 36*cr + 6*cg + cb)

	// Check if grayscale is a better match (when r ≈ g ≈ b)
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if maxDiff >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	step := (gray - 8) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := 8 + step*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return Color8(grayscaleStart + step)
	}
	return cube
}
