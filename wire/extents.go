package wire

// QueryTextExtentsReply is the reply to a QueryTextExtents request.
type QueryTextExtentsReply struct {
	Sequence       uint16
	DrawDirection  uint8
	FontAscent     int16
	FontDescent    int16
	OverallAscent  int16
	OverallDescent int16
	OverallWidth   int32
	OverallLeft    int32
	OverallRight   int32
}

// Append appends the 32-byte encoded reply to b.
func (r *QueryTextExtentsReply) Append(b []byte, order ByteOrder) []byte {
	b = appendHeader(b, order, r.DrawDirection, r.Sequence, 0)
	b = order.AppendUint16(b, uint16(r.FontAscent))
	b = order.AppendUint16(b, uint16(r.FontDescent))
	b = order.AppendUint16(b, uint16(r.OverallAscent))
	b = order.AppendUint16(b, uint16(r.OverallDescent))
	b = order.AppendUint32(b, uint32(r.OverallWidth))
	b = order.AppendUint32(b, uint32(r.OverallLeft))
	b = order.AppendUint32(b, uint32(r.OverallRight))
	return append(b, 0, 0, 0, 0)
}

// DecodeQueryTextExtentsReply decodes a QueryTextExtents reply.
func DecodeQueryTextExtentsReply(b []byte, order ByteOrder) (*QueryTextExtentsReply, error) {
	h, err := decodeHeader(b, order, "QueryTextExtents reply")
	if err != nil {
		return nil, err
	}
	if len(b) < TextExtentsSize {
		return nil, shortBuffer("QueryTextExtents reply", TextExtentsSize, len(b))
	}
	return &QueryTextExtentsReply{
		Sequence:       h.seq,
		DrawDirection:  h.data,
		FontAscent:     int16(order.Uint16(b[8:])),
		FontDescent:    int16(order.Uint16(b[10:])),
		OverallAscent:  int16(order.Uint16(b[12:])),
		OverallDescent: int16(order.Uint16(b[14:])),
		OverallWidth:   int32(order.Uint32(b[16:])),
		OverallLeft:    int32(order.Uint32(b[20:])),
		OverallRight:   int32(order.Uint32(b[24:])),
	}, nil
}
