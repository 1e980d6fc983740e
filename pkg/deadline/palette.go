package deadline

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/study/pkg/errdefs"
)

// Palette is the fixed set of deadline colors, cycled on creation.
var Palette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4",
	"#46f0f0", "#f032e6", "#bcf60c", "#fabebe", "#008080", "#e6beff",
}

// PaletteColor returns the palette entry for n, wrapping around.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}

// ResolveColor accepts either a palette index token ("0".."11") or a hex
// color and returns the normalised lower-case hex form.
func ResolveColor(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errdefs.Validation("color", "required")
	}
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n >= len(Palette) {
			return "", errdefs.Validation("color", "palette index out of range")
		}
		return Palette[n], nil
	}
	if !strings.HasPrefix(token, "#") {
		token = "#" + token
	}
	c, err := colorful.Hex(token)
	if err != nil {
		return "", errdefs.Validation("color", "must be #rrggbb or a palette index")
	}
	return c.Hex(), nil
}

// NearestPalette returns the index of the palette entry closest to hex.
// -1 is returned when hex cannot be parsed.
func NearestPalette(hex string) int {
	c, err := colorful.Hex(hex)
	if err != nil {
		return -1
	}
	best, dist := -1, 0.0
	for i, p := range Palette {
		pc, _ := colorful.Hex(p)
		d := c.DistanceLab(pc)
		if best == -1 || d < dist {
			best, dist = i, d
		}
	}
	return best
}
