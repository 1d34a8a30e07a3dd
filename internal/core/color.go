package core

// Color represents a foreground color for a tile.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for tiles.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorBrightRed
	ColorMagenta
	ColorBrightMagenta
	ColorCyan
	ColorBrightCyan
	ColorGreen
	ColorBrightYellow
)

// tileColors is indexed by log2 of the tile value.
var tileColors = []Color{
	ColorGray,          // empty
	ColorWhite,         // 2
	ColorYellow,        // 4
	ColorOrange,        // 8
	ColorRed,           // 16
	ColorBrightRed,     // 32
	ColorMagenta,       // 64
	ColorBrightMagenta, // 128
	ColorCyan,          // 256
	ColorBrightCyan,    // 512
	ColorGreen,         // 1024
	ColorBrightYellow,  // 2048
}

// TileColor returns the color for a tile value. Zero is an empty cell;
// values beyond 2048 share its color.
func TileColor(value int) Color {
	exp := 0
	for v := value; v > 1; v >>= 1 {
		exp++
	}
	if exp >= len(tileColors) {
		return tileColors[len(tileColors)-1]
	}
	return tileColors[exp]
}
