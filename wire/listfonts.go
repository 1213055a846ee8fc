package wire

import (
	"errors"
	"fmt"
)

// ErrNameTooLong is returned when a font name does not fit a STR.
var ErrNameTooLong = errors.New("wire: font name longer than 255 bytes")

// ListFontsReply is the reply to a ListFonts request.
type ListFontsReply struct {
	Sequence uint16
	Names    []string
}

// Append appends the encoded reply to b. Names are written as STRs: a length
// byte followed by the bytes, with the list padded to 4 bytes.
func (r *ListFontsReply) Append(b []byte, order ByteOrder) ([]byte, error) {
	n := 0
	for _, name := range r.Names {
		if len(name) > 255 {
			return b, fmt.Errorf("%w: %q", ErrNameTooLong, name)
		}
		n += 1 + len(name)
	}
	p := pad4(n)

	b = appendHeader(b, order, 0, r.Sequence, uint32((n+p)/4))
	b = order.AppendUint16(b, uint16(len(r.Names)))
	b = append(b, make([]byte, 22)...)
	for _, name := range r.Names {
		b = append(b, byte(len(name)))
		b = append(b, name...)
	}
	return append(b, make([]byte, p)...), nil
}

// DecodeListFontsReply decodes a ListFonts reply.
func DecodeListFontsReply(b []byte, order ByteOrder) (*ListFontsReply, error) {
	h, err := decodeHeader(b, order, "ListFonts reply")
	if err != nil {
		return nil, err
	}
	if len(b) < ListFontsHeaderSize {
		return nil, shortBuffer("ListFonts reply", ListFontsHeaderSize, len(b))
	}
	total := ListFontsHeaderSize + 4*int(h.length)
	if len(b) < total {
		return nil, shortBuffer("ListFonts reply", total, len(b))
	}

	count := int(order.Uint16(b[8:]))
	r := &ListFontsReply{Sequence: h.seq}
	if count > 0 {
		r.Names = make([]string, 0, count)
	}
	data := b[ListFontsHeaderSize:total]
	for range count {
		if len(data) < 1 || len(data) < 1+int(data[0]) {
			return nil, fmt.Errorf("%w: ListFonts reply: %d names overrun the reply length", ErrMalformed, count)
		}
		l := int(data[0])
		r.Names = append(r.Names, string(data[1:1+l]))
		data = data[1+l:]
	}
	return r, nil
}
