/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/froststrap/colrfont/common"
)

// byteReader encapsulates io.ReadSeeker with buffering and provides methods to read big endian
// binary data as needed for sfnt fonts.
type byteReader struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
	tmp    [8]byte
}

func newByteReader(rs io.ReadSeeker) *byteReader {
	return &byteReader{
		rs:     rs,
		reader: bufio.NewReader(rs),
	}
}

// Offset returns current offset position of `r`.
func (r *byteReader) Offset() int64 {
	offset, _ := r.rs.Seek(0, io.SeekCurrent)
	offset -= int64(r.reader.Buffered())
	return offset
}

// Seek seeks to offset.
func (r *byteReader) Seek(offset int64) error {
	_, err := r.rs.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	r.reader.Reset(r.rs)
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	_, err := r.reader.Discard(n)
	return err
}

// readBytes reads `length` bytes straight from `r`.
func (r *byteReader) readBytes(bp *[]byte, length int) error {
	*bp = make([]byte, length)
	_, err := io.ReadFull(r.reader, *bp)
	return err
}

// readN reads the next `n` (<= 8) bytes into the scratch buffer.
func (r *byteReader) readN(n int) ([]byte, error) {
	b := r.tmp[:n]
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *byteReader) readUint8() (uint8, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) readUint16() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *byteReader) readUint32() (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *byteReader) readUint64() (uint64, error) {
	b, err := r.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// readSlice reads `length` values into `slice` from `r`.
func (r *byteReader) readSlice(slice interface{}, length int) error {
	for i := 0; i < length; i++ {
		switch t := slice.(type) {
		case *[]uint8:
			val, err := r.readUint8()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		case *[]int8:
			val, err := r.readUint8()
			if err != nil {
				return err
			}
			*t = append(*t, int8(val))
		case *[]uint16:
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		case *[]offset32:
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = append(*t, offset32(val))
		default:
			common.Log.Debug("Unsupported type: %T (readSlice)", t)
			return errTypeCheck
		}
	}
	return nil
}

// read reads a series of fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case *uint8:
			*t, err = r.readUint8()
		case *int8:
			var v uint8
			v, err = r.readUint8()
			*t = int8(v)
		case *uint16:
			*t, err = r.readUint16()
		case *int16:
			var v uint16
			v, err = r.readUint16()
			*t = int16(v)
		case *ufword:
			var v uint16
			v, err = r.readUint16()
			*t = ufword(v)
		case *fword:
			var v uint16
			v, err = r.readUint16()
			*t = fword(v)
		case *offset16:
			var v uint16
			v, err = r.readUint16()
			*t = offset16(v)
		case *uint32:
			*t, err = r.readUint32()
		case *fixed:
			var v uint32
			v, err = r.readUint32()
			*t = fixed(v)
		case *offset32:
			var v uint32
			v, err = r.readUint32()
			*t = offset32(v)
		case *tag:
			var b []byte
			b, err = r.readN(4)
			if err == nil {
				copy(t[:], b)
			}
		case *longdatetime:
			var v uint64
			v, err = r.readUint64()
			*t = longdatetime(v)
		default:
			common.Log.Debug("Unsupported type: %T (read)", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}
	return nil
}
