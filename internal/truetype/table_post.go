/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"errors"

	"github.com/froststrap/colrfont/common"
)

// postTable represents a PostScript (post) table.
// Only the glyph names are of interest here, the table itself is written back verbatim.
//
// - version 1.0 is used when the font file contains exactly the 258 glyphs in the standard Macintosh order.
// - version 2.0 is used for fonts that contain some glyphs not in the standard set or have different ordering.
// - version 2.5 can handle nonstandard ordering of the standard mac glyphs via offsets.
// - other versions (3.0) do not contain glyph names.
type postTable struct {
	version      fixed
	italicAngle  fixed
	isFixedPitch uint32

	// version 2.0 and 2.5.
	numGlyphs      uint16
	glyphNameIndex []uint16 // 2.0, len = numGlyphs
	offsets        []int8   // 2.5, len = numGlyphs

	// glyphNames[GlyphID] -> GlyphName. Empty if the version has no names.
	glyphNames []GlyphName
}

/*
 See https://docs.microsoft.com/en-us/typography/opentype/spec/post for details regarding the format.
*/

func (f *font) parsePost(r *byteReader) (*postTable, error) {
	if f.maxp == nil {
		common.Log.Debug("Required maxp table missing")
		return nil, errRequiredField
	}

	tr, has, err := f.seekToTable(r, "post")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("post table not present")
		return nil, nil
	}

	start := r.Offset()

	t := &postTable{}
	var underlinePosition, underlineThickness fword
	err = r.read(&t.version, &t.italicAngle, &underlinePosition, &underlineThickness, &t.isFixedPitch)
	if err != nil {
		return nil, err
	}
	// minMemType42, maxMemType42, minMemType1, maxMemType1.
	if err = r.Skip(4 * 4); err != nil {
		return nil, err
	}

	switch uint32(t.version) {
	case 0x00010000: // 1.0
		n := int(f.maxp.numGlyphs)
		if n > len(macGlyphNames) {
			n = len(macGlyphNames)
		}
		t.glyphNames = append([]GlyphName(nil), macGlyphNames[:n]...)

	case 0x00020000: // 2.0
		err = r.read(&t.numGlyphs)
		if err != nil {
			return nil, err
		}
		if t.numGlyphs != f.maxp.numGlyphs {
			common.Log.Debug("post numGlyphs != maxp.numGlyphs (%d != %d)", t.numGlyphs, f.maxp.numGlyphs)
			return nil, errRangeCheck
		}
		err = r.readSlice(&t.glyphNameIndex, int(t.numGlyphs))
		if err != nil {
			return nil, err
		}
		numNew := 0
		for _, ni := range t.glyphNameIndex {
			if ni >= 258 && int(ni)-258 >= numNew {
				numNew = int(ni) - 258 + 1
			}
		}
		common.Log.Trace("post: %d custom names", numNew)

		var names []GlyphName
		for i := 0; i < numNew; i++ {
			if r.Offset()-start >= int64(tr.length) {
				common.Log.Debug("ERROR: Reading outside post table (%d >= %d)", r.Offset()-start, tr.length)
				return nil, errors.New("reading outside table")
			}
			var numChars uint8
			err = r.read(&numChars)
			if err != nil {
				return nil, err
			}
			var name []byte
			err = r.readBytes(&name, int(numChars))
			if err != nil {
				return nil, err
			}
			names = append(names, GlyphName(name))
		}

		t.glyphNames = make([]GlyphName, int(t.numGlyphs))
		for i, ni := range t.glyphNameIndex {
			if ni < 258 {
				t.glyphNames[i] = macGlyphNames[ni]
				continue
			}
			t.glyphNames[i] = names[ni-258]
			common.Log.Trace("GID %d -> '%s'", i, t.glyphNames[i])
		}

	case 0x00025000: // 2.5
		err = r.read(&t.numGlyphs)
		if err != nil {
			return nil, err
		}
		if t.numGlyphs != f.maxp.numGlyphs {
			common.Log.Debug("post numGlyphs != maxp.numGlyphs (%d != %d)", t.numGlyphs, f.maxp.numGlyphs)
			return nil, errRangeCheck
		}
		err = r.readSlice(&t.offsets, int(t.numGlyphs))
		if err != nil {
			return nil, err
		}
		t.glyphNames = make([]GlyphName, int(t.numGlyphs))
		for i := 0; i < int(t.numGlyphs); i++ {
			nameIndex := i + int(t.offsets[i])
			if nameIndex < 0 || nameIndex > 257 {
				common.Log.Debug("ERROR: name index outside range (%d)", nameIndex)
				continue
			}
			t.glyphNames[i] = macGlyphNames[nameIndex]
		}

	case 0x00030000: // 3.0
		common.Log.Debug("post version 3.0 - no glyph names")
	default:
		common.Log.Debug("Unsupported version of post (0x%X) - no glyph names loaded", uint32(t.version))
	}

	return t, nil
}
