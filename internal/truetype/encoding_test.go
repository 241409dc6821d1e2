/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPostV1 returns a font of `numGlyphs` glyphs whose post table is version 1.0, i.e. named by
// the standard Macintosh order.
func withPostV1(t *testing.T, numGlyphs int) *Font {
	t.Helper()

	names := make([]GlyphName, numGlyphs)
	for i := range names {
		names[i] = GlyphName(fmt.Sprintf("g%d", i))
	}
	fnt, err := Parse(bytes.NewReader(makeTestFont(t, names)))
	require.NoError(t, err)

	w := newByteWriter(nil)
	require.NoError(t, w.write(fixed(0x00010000), fixed(0), fword(0), fword(0), uint32(0)))
	require.NoError(t, w.write(uint32(0), uint32(0), uint32(0), uint32(0)))
	fnt.setTable("post", w.buffer.Bytes())

	data, err := fnt.Bytes()
	require.NoError(t, err)
	fnt, err = Parse(bytes.NewReader(data))
	require.NoError(t, err)
	return fnt
}

func TestMacGlyphNames(t *testing.T) {
	require.Len(t, macGlyphNames, 258)

	seen := map[GlyphName]bool{}
	for _, name := range macGlyphNames {
		assert.False(t, seen[name], "duplicate %q", name)
		seen[name] = true
	}
}

func TestPostV1GlyphOrder(t *testing.T) {
	fnt := withPostV1(t, 4)
	assert.Equal(t, []GlyphName{".notdef", ".null", "nonmarkingreturn", "space"}, fnt.GlyphOrder())

	// Glyphs past the standard set have no post name.
	fnt = withPostV1(t, 260)
	order := fnt.GlyphOrder()
	require.Len(t, order, 260)
	assert.Equal(t, GlyphName("a"), order[68])
	assert.Equal(t, GlyphName("z"), order[93])
	assert.Equal(t, GlyphName("dcroat"), order[257])
	assert.Equal(t, GlyphName("glyph00258"), order[258])
	assert.Equal(t, GlyphName("glyph00259"), order[259])
}

func TestPostV2StandardNames(t *testing.T) {
	// Standard names are stored as indices into the Macintosh set, the rest as custom strings.
	names := []GlyphName{".notdef", "comma", "dcroat", "home", "a"}
	post := makePostTable(t, names)

	// version(4) + fields(28) + numGlyphs(2), then one index per glyph.
	idx := post[34 : 34+2*len(names)]
	assert.Equal(t, []byte{0, 0, 0, 15, 1, 1, 1, 2, 0, 68}, idx)

	fnt, err := Parse(bytes.NewReader(makeTestFont(t, names)))
	require.NoError(t, err)
	assert.Equal(t, names, fnt.GlyphOrder())
}
