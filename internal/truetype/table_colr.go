/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"sort"

	"github.com/froststrap/colrfont/common"
)

// colrTable represents the Color table (COLR), version 0 part.
// A base glyph is drawn as a stack of layer glyphs, each filled with a CPAL palette entry.
// Version 1 paint graphs are not loaded; the version 0 records are still read from such tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/colr
type colrTable struct {
	version                uint16
	numBaseGlyphRecords    uint16
	baseGlyphRecordsOffset offset32
	layerRecordsOffset     offset32
	numLayerRecords        uint16

	baseGlyphRecords []baseGlyphRecord // sorted by glyphID.
	layerRecords     []layerRecord
}

type baseGlyphRecord struct {
	glyphID         uint16
	firstLayerIndex uint16
	numLayers       uint16
}

type layerRecord struct {
	glyphID      uint16
	paletteIndex uint16
}

// colrHeaderSize is the size of the version 0 header.
const colrHeaderSize = 2 + 2 + 4 + 4 + 2

func (f *font) parseColr(r *byteReader) (*colrTable, error) {
	tr, has, err := f.seekToTable(r, "COLR")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	t := &colrTable{}
	err = r.read(&t.version, &t.numBaseGlyphRecords, &t.baseGlyphRecordsOffset, &t.layerRecordsOffset, &t.numLayerRecords)
	if err != nil {
		return nil, err
	}
	if t.version > 1 {
		common.Log.Debug("Unsupported COLR version %d", t.version)
		return nil, nil
	}

	if int64(t.baseGlyphRecordsOffset)+6*int64(t.numBaseGlyphRecords) > int64(tr.length) ||
		int64(t.layerRecordsOffset)+4*int64(t.numLayerRecords) > int64(tr.length) {
		common.Log.Debug("COLR records outside table")
		return nil, errRangeCheck
	}

	if t.numBaseGlyphRecords > 0 {
		err = r.Seek(int64(tr.offset) + int64(t.baseGlyphRecordsOffset))
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(t.numBaseGlyphRecords); i++ {
			var rec baseGlyphRecord
			err = r.read(&rec.glyphID, &rec.firstLayerIndex, &rec.numLayers)
			if err != nil {
				return nil, err
			}
			t.baseGlyphRecords = append(t.baseGlyphRecords, rec)
		}
	}

	if t.numLayerRecords > 0 {
		err = r.Seek(int64(tr.offset) + int64(t.layerRecordsOffset))
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(t.numLayerRecords); i++ {
			var rec layerRecord
			err = r.read(&rec.glyphID, &rec.paletteIndex)
			if err != nil {
				return nil, err
			}
			t.layerRecords = append(t.layerRecords, rec)
		}
	}

	return t, nil
}

// layers returns the layer records of base glyph `rec`.
func (t *colrTable) layers(rec baseGlyphRecord) []layerRecord {
	end := int(rec.firstLayerIndex) + int(rec.numLayers)
	if end > len(t.layerRecords) {
		common.Log.Debug("COLR layers outside layer records (%d > %d)", end, len(t.layerRecords))
		return nil
	}
	return t.layerRecords[rec.firstLayerIndex:end]
}

// newColrTable returns a version 0 COLR table for `layers`, keyed by base glyph ID.
// Base glyphs without layers are left out.
func newColrTable(layers map[GlyphIndex][]layerRecord) (*colrTable, error) {
	gids := make([]GlyphIndex, 0, len(layers))
	for gid, ls := range layers {
		if len(ls) > 0 {
			gids = append(gids, gid)
		}
	}
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })

	t := &colrTable{}
	for _, gid := range gids {
		ls := layers[gid]
		if len(t.layerRecords)+len(ls) > 0xFFFF {
			common.Log.Debug("Too many COLR layer records")
			return nil, errRangeCheck
		}
		t.baseGlyphRecords = append(t.baseGlyphRecords, baseGlyphRecord{
			glyphID:         uint16(gid),
			firstLayerIndex: uint16(len(t.layerRecords)),
			numLayers:       uint16(len(ls)),
		})
		t.layerRecords = append(t.layerRecords, ls...)
	}

	t.numBaseGlyphRecords = uint16(len(t.baseGlyphRecords))
	t.numLayerRecords = uint16(len(t.layerRecords))
	t.baseGlyphRecordsOffset = colrHeaderSize
	t.layerRecordsOffset = offset32(colrHeaderSize + 6*len(t.baseGlyphRecords))
	return t, nil
}

func (t *colrTable) write(w *byteWriter) error {
	err := w.write(t.version, t.numBaseGlyphRecords, t.baseGlyphRecordsOffset, t.layerRecordsOffset, t.numLayerRecords)
	if err != nil {
		return err
	}
	for _, rec := range t.baseGlyphRecords {
		err = w.write(rec.glyphID, rec.firstLayerIndex, rec.numLayers)
		if err != nil {
			return err
		}
	}
	for _, rec := range t.layerRecords {
		err = w.write(rec.glyphID, rec.paletteIndex)
		if err != nil {
			return err
		}
	}
	return nil
}

// bytes serializes `t`.
func (t *colrTable) bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	if err := t.write(w); err != nil {
		return nil, err
	}
	if err := w.flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
