/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/froststrap/colrfont/common"
)

// validate font data model `f` in `r`. Checks if required tables are present and whether
// the file and table checksums are correct.
func (f *font) validate(r *byteReader) error {
	if f.trec == nil {
		common.Log.Debug("Table records missing")
		return errRequiredField
	}
	if f.ot == nil {
		common.Log.Debug("Offsets table missing")
		return errRequiredField
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return errRequiredField
	}

	err := r.Seek(0)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r.reader)
	if err != nil {
		return err
	}
	data := buf.Bytes()

	headRec, ok := f.trec.trMap["head"]
	if !ok {
		common.Log.Debug("head not set")
		return errRequiredField
	}
	hoff := int(headRec.offset) + headChecksumAdjustmentOffset
	if hoff+4 > len(data) || headRec.length < headChecksumAdjustmentOffset+4 {
		return errors.New("head too short")
	}
	// Checksums are computed with checksumAdjustment set to 0.
	copy(data[hoff:hoff+4], []byte{0, 0, 0, 0})

	common.Log.Debug("Validating entire font")
	if adjustment := uint32(checksumMagic) - checksum(data); f.head.checksumAdjustment != adjustment {
		common.Log.Debug("checksumAdjustment 0x%08X, expected 0x%08X", f.head.checksumAdjustment, adjustment)
		return errors.New("file checksum mismatch")
	}

	common.Log.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		end := int64(tr.offset) + int64(tr.length)
		if end > int64(len(data)) {
			common.Log.Debug("Table %s outside file (%d > %d)", tr.tableTag, end, len(data))
			return errRangeCheck
		}

		if cs := checksum(data[tr.offset:end]); tr.checksum != cs {
			common.Log.Debug("Invalid checksum for %s (%d != %d)", tr.tableTag, cs, tr.checksum)
			return fmt.Errorf("checksum incorrect: %s", tr.tableTag)
		}
	}

	return nil
}
