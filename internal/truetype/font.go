/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/froststrap/colrfont/common"
)

// font is a data model for sfnt fonts with basic access methods.
// Every table is kept as raw data in `data`; the tables needed here are parsed in addition.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	name *nameTable
	post *postTable
	colr *colrTable
	cpal *cpalTable

	data map[tag][]byte

	glyphs     []GlyphName // by GlyphIndex.
	glyphIndex map[GlyphName]GlyphIndex
}

func (f font) numTables() int {
	return len(f.data)
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.data, err = f.readTableData(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return nil, errRequiredField
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}
	if f.maxp == nil {
		common.Log.Debug("maxp table missing")
		return nil, errRequiredField
	}

	// Only used for names in diagnostics.
	f.name, err = f.parseNameTable(r)
	if err != nil {
		common.Log.Debug("Ignoring broken name table: %v", err)
		f.name = nil
	}

	f.post, err = f.parsePost(r)
	if err != nil {
		return nil, err
	}

	// Existing color tables are replaced on recoloring, a broken one is kept as raw data only.
	f.cpal, err = f.parseCpal(r)
	if err != nil {
		common.Log.Debug("Ignoring broken CPAL table: %v", err)
		f.cpal = nil
	}

	f.colr, err = f.parseColr(r)
	if err != nil {
		common.Log.Debug("Ignoring broken COLR table: %v", err)
		f.colr = nil
	}

	f.setGlyphOrder(f.buildGlyphOrder())
	return f, nil
}

// readTableData loads the raw data of every table in the table records.
func (f *font) readTableData(r *byteReader) (map[tag][]byte, error) {
	data := make(map[tag][]byte, len(f.trec.list))
	for _, tr := range f.trec.list {
		err := r.Seek(int64(tr.offset))
		if err != nil {
			return nil, err
		}
		var b []byte
		err = r.readBytes(&b, int(tr.length))
		if err != nil {
			common.Log.Debug("ERROR: reading table %s (offset %d, length %d): %v", tr.tableTag, tr.offset, tr.length, err)
			return nil, err
		}
		data[tr.tableTag] = b
	}
	return data, nil
}

func (f *font) setGlyphOrder(order []GlyphName) {
	f.glyphs = order
	f.glyphIndex = make(map[GlyphName]GlyphIndex, len(order))
	for gid, name := range order {
		f.glyphIndex[name] = GlyphIndex(gid)
	}
}

// setTable replaces the raw data of table `tableName`.
func (f *font) setTable(tableName string, b []byte) {
	f.data[makeTag(tableName)] = b
}

// removeTable drops table `tableName` from `f`.
func (f *font) removeTable(tableName string) {
	delete(f.data, makeTag(tableName))
	switch tableName {
	case "COLR":
		f.colr = nil
	case "CPAL":
		f.cpal = nil
	}
}

// sortedTags returns the tags of the tables in `f` in ascending order as required for the
// table records.
func (f *font) sortedTags() []tag {
	tags := make([]tag, 0, len(f.data))
	for t := range f.data {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		return bytes.Compare(tags[i][:], tags[j][:]) < 0
	})
	return tags
}

// write serializes `f` to `w`, which must be empty. It is done in two steps:
//  1. Lay out the tables in tag order, 4 byte aligned, and generate the table records with the
//     length and checksum of each table (head checksummed with checksumAdjustment 0).
//  2. Write offset table, table records and tables, then set head.checksumAdjustment from the
//     checksum of the entire file.
func (f *font) write(w *byteWriter) error {
	if f.head == nil {
		return errRequiredField
	}
	if w.bufferedLen() != 0 {
		common.Log.Debug("ERROR: writing font to non-empty buffer")
		return errRangeCheck
	}

	f.head.checksumAdjustment = 0
	hw := newByteWriter(nil)
	if err := f.writeHead(hw); err != nil {
		return err
	}
	f.setTable("head", hw.buffer.Bytes())

	tags := f.sortedTags()
	f.ot = newOffsetTable(f.ot.sfntVersion, len(tags))
	f.trec = &tableRecords{trMap: make(map[string]tableRecord, len(tags))}

	offset := offsetTableSize + tableRecordSize*len(tags)
	for _, t := range tags {
		b := f.data[t]
		tr := tableRecord{
			tableTag: t,
			checksum: checksum(b),
			offset:   offset32(offset),
			length:   uint32(len(b)),
		}
		f.trec.list = append(f.trec.list, tr)
		f.trec.trMap[t.String()] = tr
		offset += (len(b) + 3) &^ 3
	}

	err := f.writeOffsetTable(w)
	if err != nil {
		return err
	}

	err = f.writeTableRecords(w)
	if err != nil {
		return err
	}

	for _, t := range tags {
		w.writeBytes(f.data[t])
		w.pad4()
	}

	adjustment := checksumMagic - w.checksum()
	headRec := f.trec.trMap["head"]
	binary.BigEndian.PutUint32(w.buffer.Bytes()[int(headRec.offset)+headChecksumAdjustmentOffset:], adjustment)
	f.head.checksumAdjustment = adjustment
	common.Log.Trace("Wrote %d tables, %d bytes, checksumAdjustment 0x%08X", len(tags), w.bufferedLen(), adjustment)

	return nil
}
