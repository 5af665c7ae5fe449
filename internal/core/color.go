package core

// Color is a foreground colour for a screen cell.
// Frontends map it to ANSI 256 codes or RGBA.
type Color uint8

// Predefined colours for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-green":   ColorBrightGreen,
	"bright-magenta": ColorBrightMagenta,
	"bright-white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"brown":          ColorBrown,
	"gray":           ColorGray,
}

// ParseColor looks up a colour by name. Unknown names report false.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
