/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffsetTable(t *testing.T) {
	testcases := []struct {
		numTables int
		expected  offsetTable
	}{
		{16, offsetTable{sfntVersion: sfntVersionTrueType, numTables: 16, searchRange: 256, entrySelector: 4, rangeShift: 0}},
		{15, offsetTable{sfntVersion: sfntVersionTrueType, numTables: 15, searchRange: 128, entrySelector: 3, rangeShift: 112}},
		{18, offsetTable{sfntVersion: sfntVersionTrueType, numTables: 18, searchRange: 256, entrySelector: 4, rangeShift: 32}},
		{1, offsetTable{sfntVersion: sfntVersionTrueType, numTables: 1, searchRange: 16, entrySelector: 0, rangeShift: 0}},
	}

	for _, tcase := range testcases {
		assert.Equal(t, tcase.expected, *newOffsetTable(sfntVersionTrueType, tcase.numTables))
	}
}

// Test unmarshalling and marshalling offset table.
func TestOffsetTableReadWrite(t *testing.T) {
	fnt := &font{ot: newOffsetTable(sfntVersionCFF, 9)}

	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, fnt.writeOffsetTable(bw))
	require.NoError(t, bw.flush())
	assert.Equal(t, offsetTableSize, buf.Len())

	br := newByteReader(bytes.NewReader(buf.Bytes()))
	ot, err := fnt.parseOffsetTable(br)
	require.NoError(t, err)
	assert.Equal(t, fnt.ot, ot)
}
