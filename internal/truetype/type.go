/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strings"
)

// GlyphName is a representation of a glyph name, e.g. from the post table.
type GlyphName string

// GlyphIndex or Glyph ID (GID) represent each glyph within a font.
type GlyphIndex uint16

/*
Types in sfnt fonts:
https://docs.microsoft.com/en-us/typography/opentype/spec/otff

Data Type	Description
--------------------------------------------------------
uint8	  8-bit unsigned integer.
int8	  8-bit signed integer.
uint16	  16-bit unsigned integer.
int16	  16-bit signed integer.
uint32	  32-bit unsigned integer.
Fixed	  32-bit signed fixed-point number (16.16)
FWORD	  int16 that describes a quantity in font design units.
UFWORD	  uint16 that describes a quantity in font design units.
LONGDATETIME
          Date represented in number of seconds since 12:00 midnight, January 1, 1904.
          The value is represented as a signed 64-bit integer.
Tag	      Array of four uint8s (length = 32 bits) used to identify a table.
Offset16  Short offset to a table, same as uint16, NULL offset = 0x0000
Offset32  Long offset to a table, same as uint32, NULL offset = 0x00000000
*/

type fixed int32
type fword int16
type ufword uint16
type longdatetime int64
type tag [4]uint8
type offset16 uint16
type offset32 uint32

// String returns the tag with padding spaces trimmed, e.g. "cvt " -> "cvt".
func (t tag) String() string {
	return strings.TrimSpace(string(t[:]))
}

// Parts returns the integral and decimal portions of `f`.
func (f fixed) Parts() (uint16, uint16) {
	return uint16(uint32(f) >> 16), uint16(uint32(f) & 0xFFFF)
}

// Float64 returns `f` as a float64.
func (f fixed) Float64() float64 {
	l, r := f.Parts()
	return float64(int16(l)) + float64(r)/65536.0
}

// makeTag returns the tag for `s`, trimmed or padded with spaces to 4 bytes.
func makeTag(s string) tag {
	t := tag{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}
