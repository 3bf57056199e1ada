// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package wkb

import (
	"encoding/binary"
	"strings"
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// ByteOrder is the value of the byte order marker leading every WKB
// geometry.
type ByteOrder byte

const (
	// BigEndian is the XDR byte order.
	BigEndian ByteOrder = 0
	// LittleEndian is the NDR byte order.
	LittleEndian ByteOrder = 1
)

// DefaultByteOrder is the byte order written when none is requested.
const DefaultByteOrder = LittleEndian

func (bo ByteOrder) String() string {
	switch bo {
	case BigEndian:
		return "XDR"
	case LittleEndian:
		return "NDR"
	default:
		return "unknown"
	}
}

// SafeValue implements the redact.SafeValue interface.
func (ByteOrder) SafeValue() {}

// StringToByteOrder returns the byte order named by s, "ndr" or "xdr" in any
// case. An empty string selects DefaultByteOrder.
func StringToByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "ndr":
		return LittleEndian, nil
	case "xdr":
		return BigEndian, nil
	case "":
		return DefaultByteOrder, nil
	default:
		return 0, errors.Newf("unknown byte order %q, expected ndr or xdr", s)
	}
}

// ErrPlatform marks errors raised when the host cannot encode WKB doubles.
var ErrPlatform = errors.New("unsupported platform")

// hostByteOrder returns the byte order of the running machine. It is
// computed on first use.
var hostByteOrder = sync.OnceValues(func() (ByteOrder, error) {
	if size := unsafe.Sizeof(float64(0)); size != 8 {
		return 0, errors.Mark(errors.Newf("doubles are %d bytes, expected 8", size), ErrPlatform)
	}
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], 0x01020304)
	switch buf {
	case [4]byte{0x01, 0x02, 0x03, 0x04}:
		return BigEndian, nil
	case [4]byte{0x04, 0x03, 0x02, 0x01}:
		return LittleEndian, nil
	default:
		return 0, errors.Mark(errors.Newf("cannot determine host byte order from %x", buf), ErrPlatform)
	}
})
