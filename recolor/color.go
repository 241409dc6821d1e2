/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package recolor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/froststrap/colrfont/internal/truetype"
)

// ErrInvalidColor is returned for color strings that are not 6 hex digits.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHexColor parses a color of the form "RRGGBB", optionally prefixed with '#'.
// Surrounding whitespace is ignored.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimLeft(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: hex color must be 6 characters long, got %q", ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColor, s)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// String returns `c` as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Record returns `c` as a fully opaque palette entry.
func (c Color) Record() truetype.ColorRecord {
	return truetype.ColorRecord{Blue: c.B, Green: c.G, Red: c.R, Alpha: 0xFF}
}
