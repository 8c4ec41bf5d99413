package domain

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// Palette is the fixed set of avatar colors handed out when a participant
// has no usable color.
var Palette = [...]string{
	"#F56565", // red
	"#ED8936", // orange
	"#ECC94B", // yellow
	"#48BB78", // green
	"#38B2AC", // teal
	"#4299E1", // blue
	"#667EEA", // indigo
	"#9F7AEA", // purple
	"#ED64A6", // pink
	"#A0AEC0", // gray
	"#68D391", // light green
	"#63B3ED", // light blue
}

var hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// ColorStatus tags how an incoming color was handled.
type ColorStatus string

const (
	ColorAccepted  ColorStatus = "ACCEPTED"
	ColorCorrected ColorStatus = "CORRECTED"
)

// ColorCheck is the outcome of CheckColor. Original is the raw input,
// Color is the value that gets stored.
type ColorCheck struct {
	Status   ColorStatus
	Original string
	Color    string
}

// Corrected reports whether the input was replaced by a palette color.
func (c ColorCheck) Corrected() bool { return c.Status == ColorCorrected }

// IsValidColor reports whether s is a #RGB or #RRGGBB hex color.
func IsValidColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// NormalizeColor upper-cases a valid hex color. Invalid input is returned unchanged.
func NormalizeColor(s string) string {
	if !IsValidColor(s) {
		return s
	}
	return strings.ToUpper(s)
}

// RandomColor returns a random palette entry.
func RandomColor() string {
	return Palette[rand.IntN(len(Palette))]
}

// CheckColor validates a requested color. Valid input is normalized and
// accepted; empty or malformed input is replaced with a random palette color.
func CheckColor(raw string) ColorCheck {
	trimmed := strings.TrimSpace(raw)
	if IsValidColor(trimmed) {
		return ColorCheck{Status: ColorAccepted, Original: raw, Color: NormalizeColor(trimmed)}
	}
	return ColorCheck{Status: ColorCorrected, Original: raw, Color: RandomColor()}
}
