/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeTestFont returns a minimal font with head, maxp, name and a post version 2.0 table naming
// the glyphs `names`.
func makeTestFont(t *testing.T, names []GlyphName) []byte {
	t.Helper()

	f := &font{
		ot: &offsetTable{sfntVersion: sfntVersionCFF},
		head: &headTable{
			majorVersion: 1,
			fontRevision: 0x00010000,
			magicNumber:  headMagicNumber,
			unitsPerEm:   1000,
		},
		maxp: &maxpTable{version: maxpVersion05, numGlyphs: uint16(len(names))},
		data: map[tag][]byte{},
	}

	mw := newByteWriter(nil)
	require.NoError(t, f.writeMaxp(mw))
	f.setTable("maxp", mw.buffer.Bytes())

	f.setTable("post", makePostTable(t, names))
	f.setTable("name", makeNameTable(t, "Test Icons"))

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	require.NoError(t, f.write(w))
	require.NoError(t, w.flush())
	return buf.Bytes()
}

func makePostTable(t *testing.T, names []GlyphName) []byte {
	t.Helper()

	macIndex := map[GlyphName]uint16{}
	for i, n := range macGlyphNames {
		macIndex[n] = uint16(i)
	}

	w := newByteWriter(nil)
	require.NoError(t, w.write(fixed(0x00020000), fixed(0), fword(0), fword(0), uint32(0)))
	require.NoError(t, w.write(uint32(0), uint32(0), uint32(0), uint32(0)))
	require.NoError(t, w.write(uint16(len(names))))

	var custom []GlyphName
	for _, n := range names {
		if i, ok := macIndex[n]; ok {
			w.writeUint16(i)
			continue
		}
		w.writeUint16(uint16(258 + len(custom)))
		custom = append(custom, n)
	}
	for _, n := range custom {
		w.writeBytes(append([]byte{uint8(len(n))}, n...))
	}
	return w.buffer.Bytes()
}

func makeNameTable(t *testing.T, family string) []byte {
	t.Helper()

	var str []byte
	for _, r := range family {
		str = append(str, byte(r>>8), byte(r))
	}

	w := newByteWriter(nil)
	// format 0, one record, strings after the 6 byte header and 12 byte record.
	require.NoError(t, w.write(uint16(0), uint16(1), offset16(6+12)))
	require.NoError(t, w.write(uint16(3), uint16(1), uint16(0x409), uint16(nameIDFamily), uint16(len(str)), offset16(0)))
	w.writeBytes(str)
	return w.buffer.Bytes()
}
