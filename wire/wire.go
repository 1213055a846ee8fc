package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Errors returned by decoders.
var (
	// ErrShortBuffer is returned when the input ends before the structure
	// being decoded.
	ErrShortBuffer = errors.New("wire: short buffer")

	// ErrMalformed is returned when a reply header or length field is
	// inconsistent with its contents.
	ErrMalformed = errors.New("wire: malformed reply")
)

// ByteOrder reads and appends multi-byte values. binary.BigEndian and
// binary.LittleEndian both implement it.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Sizes of the fixed wire structures in bytes.
const (
	CharInfoSize        = 12
	FontPropSize        = 8
	QueryFontFixedSize  = 60
	TextExtentsSize     = 32
	ListFontsHeaderSize = 32

	// replyCode is the first byte of every reply.
	replyCode = 1
)

func shortBuffer(what string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortBuffer, what, need, have)
}

// appendHeader writes the common reply header: code, a data byte, the
// sequence number and the length in 4-byte units beyond the first 32 bytes.
func appendHeader(b []byte, order ByteOrder, data byte, seq uint16, length uint32) []byte {
	b = append(b, replyCode, data)
	b = order.AppendUint16(b, seq)
	return order.AppendUint32(b, length)
}

// header is a decoded reply header.
type header struct {
	data   byte
	seq    uint16
	length uint32
}

func decodeHeader(b []byte, order ByteOrder, what string) (header, error) {
	if len(b) < 8 {
		return header{}, shortBuffer(what, 8, len(b))
	}
	if b[0] != replyCode {
		return header{}, fmt.Errorf("%w: %s: reply code %d", ErrMalformed, what, b[0])
	}
	return header{
		data:   b[1],
		seq:    order.Uint16(b[2:]),
		length: order.Uint32(b[4:]),
	}, nil
}

func pad4(n int) int {
	return (4 - n%4) % 4
}
