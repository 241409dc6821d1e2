/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/froststrap/colrfont/common"
)

// Font wraps font for outside access.
type Font struct {
	br *byteReader
	*font
}

// LayerRecord is a single COLR layer: glyph `Name` filled with CPAL palette entry `PaletteIndex`.
type LayerRecord struct {
	Name         GlyphName
	PaletteIndex uint16
}

// Parse parses the font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{
		br:   r,
		font: fnt,
	}, nil
}

// ParseFile parses the font from file given by path. The file is read into memory and not
// kept open, so the result can be written back to the same path.
func ParseFile(filePath string) (*Font, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(b))
}

// Validate validates the checksums of the font in `rs`.
func Validate(rs io.ReadSeeker) error {
	br := newByteReader(rs)
	fnt, err := parseFont(br)
	if err != nil {
		return err
	}

	return fnt.validate(br)
}

// ValidateFile validates the font given by `filePath`.
func ValidateFile(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	return Validate(f)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// GlyphOrder returns the glyph names of the font indexed by glyph ID.
func (f *Font) GlyphOrder() []GlyphName {
	return append([]GlyphName(nil), f.glyphs...)
}

// FamilyName returns the font family name from the name table, or "" if there is none.
func (f *Font) FamilyName() string {
	return f.GetNameByID(nameIDFamily)
}

// HasTable returns true if the font contains table `tableName`.
func (f *Font) HasTable(tableName string) bool {
	_, has := f.data[makeTag(tableName)]
	return has
}

// RemoveTable removes table `tableName` from the font, if present.
func (f *Font) RemoveTable(tableName string) {
	f.removeTable(tableName)
}

// Palettes returns the CPAL palettes of the font, or nil if it has no (readable) CPAL table.
func (f *Font) Palettes() [][]ColorRecord {
	if f.cpal == nil {
		return nil
	}
	return f.cpal.palettes()
}

// SetPalettes replaces the CPAL table with a version 0 table holding `palettes`.
func (f *Font) SetPalettes(palettes [][]ColorRecord) error {
	t, err := newCpalTable(palettes)
	if err != nil {
		return err
	}
	b, err := t.bytes()
	if err != nil {
		return err
	}
	f.cpal = t
	f.setTable("CPAL", b)
	return nil
}

// ColorLayers returns the COLR version 0 layers of the font by base glyph name, or nil if it
// has no (readable) COLR table.
func (f *Font) ColorLayers() map[GlyphName][]LayerRecord {
	if f.colr == nil {
		return nil
	}
	layers := make(map[GlyphName][]LayerRecord, len(f.colr.baseGlyphRecords))
	for _, rec := range f.colr.baseGlyphRecords {
		base := f.glyphName(GlyphIndex(rec.glyphID))
		for _, l := range f.colr.layers(rec) {
			layers[base] = append(layers[base], LayerRecord{
				Name:         f.glyphName(GlyphIndex(l.glyphID)),
				PaletteIndex: l.paletteIndex,
			})
		}
	}
	return layers
}

// SetColorLayers replaces the COLR table with a version 0 table holding `layers`, keyed by base
// glyph name. Every glyph name must exist in the font.
func (f *Font) SetColorLayers(layers map[GlyphName][]LayerRecord) error {
	byGID := make(map[GlyphIndex][]layerRecord, len(layers))
	for base, ls := range layers {
		gid, ok := f.glyphIndex[base]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGlyph, base)
		}
		for _, l := range ls {
			lgid, ok := f.glyphIndex[l.Name]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownGlyph, l.Name)
			}
			byGID[gid] = append(byGID[gid], layerRecord{glyphID: uint16(lgid), paletteIndex: l.PaletteIndex})
		}
	}

	t, err := newColrTable(byGID)
	if err != nil {
		return err
	}
	b, err := t.bytes()
	if err != nil {
		return err
	}
	common.Log.Trace("COLR: %d base glyphs, %d layers", t.numBaseGlyphRecords, t.numLayerRecords)
	f.colr = t
	f.setTable("COLR", b)
	return nil
}

// glyphName returns the name of glyph `gid`, or a generated name if out of range.
func (f *Font) glyphName(gid GlyphIndex) GlyphName {
	if int(gid) < len(f.glyphs) {
		return f.glyphs[gid]
	}
	return GlyphName(fmt.Sprintf("gid%d", gid))
}

// Write writes the font to `w`.
func (f *Font) Write(w io.Writer) error {
	bw := newByteWriter(w)
	err := f.write(bw)
	if err != nil {
		return err
	}
	return bw.flush()
}

// Bytes returns the serialized font.
func (f *Font) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
