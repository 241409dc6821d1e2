/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

var (
	errTypeCheck     = errors.New("type check error")
	errRangeCheck    = errors.New("range check error")
	errRequiredField = errors.New("required field missing")

	// ErrUnsupportedFormat is returned for inputs that are not a single sfnt font, e.g. font
	// collections or WOFF files.
	ErrUnsupportedFormat = errors.New("unsupported font format")
	// ErrUnknownGlyph is returned when a color layer refers to a glyph name not in the font.
	ErrUnknownGlyph = errors.New("unknown glyph")
)

// sfnt version tags.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionAppleTT  = 0x74727565 // 'true'
	sfntVersionCFF      = 0x4F54544F // 'OTTO'
	sfntVersionTTC      = 0x74746366 // 'ttcf'
	sfntVersionWOFF     = 0x774F4646 // 'wOFF'
	sfntVersionWOFF2    = 0x774F4632 // 'wOF2'
)

// headMagicNumber is the fixed value of head.magicNumber.
const headMagicNumber = 0x5F0F3CF5

// checksumMagic is the base for head.checksumAdjustment.
const checksumMagic = 0xB1B0AFBA

// notdefGlyph is the reserved glyph shown for missing characters.
const notdefGlyph GlyphName = ".notdef"
