/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/froststrap/colrfont/common"
)

// byteWriter encapsulates io.Writer and provides methods to write binary data as fit for sfnt fonts.
// Writes are buffered until flushed. Provides methods to calculate checksum of the current buffer.
type byteWriter struct {
	w   io.Writer
	len int64

	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	_, err := w.w.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// checksum returns the checksum of the current buffer.
func (w *byteWriter) checksum() uint32 {
	return checksum(w.buffer.Bytes())
}

// checksum returns the sfnt table checksum of `data`: the sum of its big endian uint32 words,
// with the final word zero padded.
func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// pad4 zero pads the buffer to a multiple of 4 bytes.
func (w *byteWriter) pad4() {
	for w.buffer.Len()%4 != 0 {
		w.buffer.WriteByte(0)
		w.len++
	}
}

// writeBytes writes raw bytes.
func (w *byteWriter) writeBytes(b []byte) {
	w.buffer.Write(b)
	w.len += int64(len(b))
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		w.writeBytes(t)
	case []uint16:
		for _, val := range t {
			w.writeUint16(val)
		}
	default:
		common.Log.Debug("Write type check error: %T (slice)", t)
		return errTypeCheck
	}
	return nil
}

// write writes a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case uint8:
			w.writeBytes([]byte{t})
		case uint16:
			w.writeUint16(t)
		case int16:
			w.writeUint16(uint16(t))
		case fword:
			w.writeUint16(uint16(t))
		case ufword:
			w.writeUint16(uint16(t))
		case offset16:
			w.writeUint16(uint16(t))
		case uint32:
			w.writeUint32(t)
		case fixed:
			w.writeUint32(uint32(t))
		case offset32:
			w.writeUint32(uint32(t))
		case tag:
			w.writeBytes(t[:])
		case longdatetime:
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(t))
			w.writeBytes(b[:])
		default:
			common.Log.Debug("Write type check error: %T", t)
			return errTypeCheck
		}
	}

	return nil
}

func (w *byteWriter) writeUint16(val uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], val)
	w.writeBytes(b[:])
}

func (w *byteWriter) writeUint32(val uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], val)
	w.writeBytes(b[:])
}
