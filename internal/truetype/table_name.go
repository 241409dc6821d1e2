/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/froststrap/colrfont/common"
)

// nameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
type nameTable struct {
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

// nameIDFamily is the name ID of the font family name.
const nameIDFamily = 1

// GetNameByID returns the first entry according to the name table with `nameID`, preferring
// Windows unicode records. An empty string is returned otherwise (nothing found).
func (f *font) GetNameByID(nameID int) string {
	if f == nil || f.name == nil {
		return ""
	}
	var found *nameRecord
	for _, nr := range f.name.nameRecords {
		if int(nr.nameID) != nameID {
			continue
		}
		if nr.platformID == 3 {
			return nr.Decoded()
		}
		if found == nil {
			found = nr
		}
	}
	if found == nil {
		return ""
	}
	return found.Decoded()
}

// makePrintable replaces unprintable runes with quoted runes, returning printable string.
func makePrintable(str string) string {
	var b strings.Builder
	for _, r := range str {
		if unicode.IsPrint(r) || r == '\n' {
			b.WriteRune(r)
		} else {
			b.WriteString(strconv.QuoteRune(r))
		}
	}
	return b.String()
}

var utf16be = xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)

// Decoded attempts to decode the underlying data and convert to a string.
func (nr nameRecord) Decoded() string {
	switch nr.platformID {
	case 0: // unicode, always UTF-16BE.
		if s, err := utf16be.NewDecoder().Bytes(nr.data); err == nil {
			return makePrintable(string(s))
		}
	case 1: // macintosh
		if nr.encodingID == 0 {
			s, err := charmap.Macintosh.NewDecoder().Bytes(nr.data)
			if err == nil {
				return makePrintable(string(s))
			}
		}
	case 3: // windows
		// Unicode (1), symbol (0) and full repertoire (10) strings are UTF-16BE.
		// https://docs.microsoft.com/en-us/typography/opentype/spec/name
		if nr.encodingID == 0 || nr.encodingID == 1 || nr.encodingID == 10 {
			if s, err := utf16be.NewDecoder().Bytes(nr.data); err == nil {
				return makePrintable(string(s))
			}
		}
	}

	return makePrintable(string(nr.data))
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}

	t := &nameTable{}
	err = r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		common.Log.Debug("ERROR: format > 1 (%d)", t.format)
		return nil, errRangeCheck
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, err
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	for _, nr := range t.nameRecords {
		if int(t.stringOffset)+int(nr.offset)+int(nr.length) > int(tr.length) {
			common.Log.Debug("name string offset outside table")
			return nil, errRangeCheck
		}

		err = r.Seek(int64(t.stringOffset) + int64(tr.offset) + int64(nr.offset))
		if err != nil {
			return nil, err
		}

		err = r.readBytes(&nr.data, int(nr.length))
		if err != nil {
			return nil, err
		}
	}

	common.Log.Trace("Name records: %d", len(t.nameRecords))
	return t, nil
}
