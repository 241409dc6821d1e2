/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"

	"github.com/froststrap/colrfont/common"
)

// ColorRecord is a CPAL palette entry. Stored on disk in the order blue, green, red, alpha.
type ColorRecord struct {
	Blue  uint8
	Green uint8
	Red   uint8
	Alpha uint8
}

// cpalTable represents the Color Palette table (CPAL).
// Version 1 adds palette types and labels after the version 0 fields; those are not loaded.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cpal
type cpalTable struct {
	version                 uint16
	numPaletteEntries       uint16
	numPalettes             uint16
	numColorRecords         uint16
	colorRecordsArrayOffset offset32
	colorRecordIndices      []uint16 // len = numPalettes.

	colorRecords []ColorRecord // len = numColorRecords.
}

// cpalHeaderSize is the size of the version 0 header without the colorRecordIndices.
const cpalHeaderSize = 2*4 + 4

func (f *font) parseCpal(r *byteReader) (*cpalTable, error) {
	tr, has, err := f.seekToTable(r, "CPAL")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	t := &cpalTable{}
	err = r.read(&t.version, &t.numPaletteEntries, &t.numPalettes, &t.numColorRecords, &t.colorRecordsArrayOffset)
	if err != nil {
		return nil, err
	}
	if t.version > 1 {
		common.Log.Debug("Unsupported CPAL version %d", t.version)
		return nil, nil
	}
	err = r.readSlice(&t.colorRecordIndices, int(t.numPalettes))
	if err != nil {
		return nil, err
	}

	if int64(t.colorRecordsArrayOffset)+4*int64(t.numColorRecords) > int64(tr.length) {
		common.Log.Debug("CPAL color records outside table")
		return nil, errRangeCheck
	}
	err = r.Seek(int64(tr.offset) + int64(t.colorRecordsArrayOffset))
	if err != nil {
		return nil, err
	}
	for i := 0; i < int(t.numColorRecords); i++ {
		var c ColorRecord
		err = r.read(&c.Blue, &c.Green, &c.Red, &c.Alpha)
		if err != nil {
			return nil, err
		}
		t.colorRecords = append(t.colorRecords, c)
	}

	return t, nil
}

// palettes returns the palettes of `t`, each with numPaletteEntries colors.
func (t *cpalTable) palettes() [][]ColorRecord {
	var pals [][]ColorRecord
	for _, first := range t.colorRecordIndices {
		end := int(first) + int(t.numPaletteEntries)
		if end > len(t.colorRecords) {
			common.Log.Debug("CPAL palette outside color records (%d > %d)", end, len(t.colorRecords))
			continue
		}
		pals = append(pals, t.colorRecords[first:end])
	}
	return pals
}

// newCpalTable returns a version 0 CPAL table holding `palettes`. All palettes must have the
// same number of entries.
func newCpalTable(palettes [][]ColorRecord) (*cpalTable, error) {
	t := &cpalTable{
		numPalettes: uint16(len(palettes)),
	}
	if len(palettes) > 0 {
		t.numPaletteEntries = uint16(len(palettes[0]))
	}
	for _, p := range palettes {
		if len(p) != int(t.numPaletteEntries) {
			common.Log.Debug("Palettes of unequal length (%d != %d)", len(p), t.numPaletteEntries)
			return nil, errRangeCheck
		}
		t.colorRecordIndices = append(t.colorRecordIndices, uint16(len(t.colorRecords)))
		t.colorRecords = append(t.colorRecords, p...)
	}
	if len(t.colorRecords) > 0xFFFF {
		return nil, errRangeCheck
	}
	t.numColorRecords = uint16(len(t.colorRecords))
	t.colorRecordsArrayOffset = offset32(cpalHeaderSize + 2*len(t.colorRecordIndices))
	return t, nil
}

func (t *cpalTable) write(w *byteWriter) error {
	err := w.write(t.version, t.numPaletteEntries, t.numPalettes, t.numColorRecords, t.colorRecordsArrayOffset)
	if err != nil {
		return err
	}
	err = w.writeSlice(t.colorRecordIndices)
	if err != nil {
		return err
	}
	for _, c := range t.colorRecords {
		err = w.write(c.Blue, c.Green, c.Red, c.Alpha)
		if err != nil {
			return err
		}
	}
	return nil
}

// bytes serializes `t`.
func (t *cpalTable) bytes() ([]byte, error) {
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
