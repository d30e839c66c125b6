package core

// Color represents a foreground color for a screen cell.
// Hosts map these to terminal or RGBA colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorPipe
	ColorPipeCap
	ColorBird
	ColorText
	ColorAccent
	ColorDim
	ColorDanger
)

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorGround:
		return "ground"
	case ColorPipe:
		return "pipe"
	case ColorPipeCap:
		return "pipe-cap"
	case ColorBird:
		return "bird"
	case ColorText:
		return "text"
	case ColorAccent:
		return "accent"
	case ColorDim:
		return "dim"
	case ColorDanger:
		return "danger"
	default:
		return "unknown"
	}
}
