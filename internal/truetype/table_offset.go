/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"

	"github.com/froststrap/colrfont/common"
)

// offsetTable is the sfnt header preceding the table records.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

// offsetTableSize is the size of the offset table in bytes.
const offsetTableSize = 4 + 4*2

// newOffsetTable returns the offset table for `numTables` tables with the binary search fields
// computed as required by the OpenType format:
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#table-directory
func newOffsetTable(sfntVersion uint32, numTables int) *offsetTable {
	entrySelector := 0
	for 1<<(entrySelector+1) <= numTables {
		entrySelector++
	}
	searchRange := (1 << entrySelector) * tableRecordSize
	return &offsetTable{
		sfntVersion:   sfntVersion,
		numTables:     uint16(numTables),
		searchRange:   uint16(searchRange),
		entrySelector: uint16(entrySelector),
		rangeShift:    uint16(numTables*tableRecordSize - searchRange),
	}
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	switch ot.sfntVersion {
	case sfntVersionTrueType, sfntVersionAppleTT, sfntVersionCFF:
	case sfntVersionTTC:
		return nil, fmt.Errorf("%w: font collection", ErrUnsupportedFormat)
	case sfntVersionWOFF, sfntVersionWOFF2:
		return nil, fmt.Errorf("%w: WOFF", ErrUnsupportedFormat)
	default:
		common.Log.Debug("Unknown sfnt version 0x%08X", ot.sfntVersion)
		return nil, fmt.Errorf("%w: sfnt version 0x%08X", ErrUnsupportedFormat, ot.sfntVersion)
	}

	return ot, nil
}

func (f *font) writeOffsetTable(w *byteWriter) error {
	if f.ot == nil {
		return errRequiredField
	}
	return w.write(f.ot.sfntVersion, f.ot.numTables, f.ot.searchRange, f.ot.entrySelector, f.ot.rangeShift)
}
