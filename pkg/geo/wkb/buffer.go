// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkb

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// ErrParse marks errors raised for malformed WKB input.
var ErrParse = errors.New("malformed WKB")

func parseErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrParse)
}

var errUnexpectedEOF = errors.Mark(errors.New("unexpected end of stream"), ErrParse)

// readBuffer is a cursor over WKB input. Scalars are decoded in host byte
// order and reversed when the byte order of the geometry being read differs.
type readBuffer struct {
	data []byte
	pos  int
	swap bool
}

func (b *readBuffer) remaining() int { return len(b.data) - b.pos }

func (b *readBuffer) take(n int) ([]byte, error) {
	if n < 0 || n > b.remaining() {
		return nil, errUnexpectedEOF
	}
	ret := b.data[b.pos : b.pos+n]
	b.pos += n
	return ret, nil
}

// readByteOrder reads a byte order marker and sets up byte swapping for the
// scalars following it.
func (b *readBuffer) readByteOrder() error {
	p, err := b.take(1)
	if err != nil {
		return err
	}
	bo := ByteOrder(p[0])
	if bo != BigEndian && bo != LittleEndian {
		return parseErrorf("unknown byte order %d", p[0])
	}
	host, err := hostByteOrder()
	if err != nil {
		return err
	}
	b.swap = bo != host
	return nil
}

func (b *readBuffer) readUint32() (uint32, error) {
	p, err := b.take(4)
	if err != nil {
		return 0, err
	}
	v := binary.NativeEndian.Uint32(p)
	if b.swap {
		v = bits.ReverseBytes32(v)
	}
	return v, nil
}

// readCount reads an element count. Every element takes at least minSize
// bytes, so a count the remaining input cannot hold fails before anything
// is allocated for it.
func (b *readBuffer) readCount(minSize int) (int, error) {
	n, err := b.readUint32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(minSize) > uint64(b.remaining()) {
		return 0, parseErrorf("count %d exceeds the %d bytes remaining", n, b.remaining())
	}
	return int(n), nil
}

func (b *readBuffer) readDoubles(n int) ([]float64, error) {
	p, err := b.take(8 * n)
	if err != nil {
		return nil, err
	}
	ret := make([]float64, n)
	for i := range ret {
		v := binary.NativeEndian.Uint64(p[8*i:])
		if b.swap {
			v = bits.ReverseBytes64(v)
		}
		ret[i] = math.Float64frombits(v)
	}
	return ret, nil
}

// writeBuffer accumulates WKB output in one byte order. Scalars are packed
// in host byte order and reversed when the requested order differs.
type writeBuffer struct {
	buf   []byte
	order ByteOrder
	swap  bool
}

func newWriteBuffer(bo ByteOrder) (*writeBuffer, error) {
	if bo != BigEndian && bo != LittleEndian {
		return nil, errors.Newf("unknown byte order %d", bo)
	}
	host, err := hostByteOrder()
	if err != nil {
		return nil, err
	}
	return &writeBuffer{order: bo, swap: bo != host}, nil
}

func (b *writeBuffer) writeByteOrder() {
	b.buf = append(b.buf, byte(b.order))
}

func (b *writeBuffer) writeUint32(v uint32) {
	if b.swap {
		v = bits.ReverseBytes32(v)
	}
	b.buf = binary.NativeEndian.AppendUint32(b.buf, v)
}

func (b *writeBuffer) writeCount(n int) {
	b.writeUint32(uint32(n))
}

func (b *writeBuffer) writeDouble(f float64) {
	v := math.Float64bits(f)
	if b.swap {
		v = bits.ReverseBytes64(v)
	}
	b.buf = binary.NativeEndian.AppendUint64(b.buf, v)
}
