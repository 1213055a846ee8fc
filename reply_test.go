package xfont

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/xfont/atom"
	"github.com/gogpu/xfont/wire"
)

func TestQueryFontReplyRoundTrip(t *testing.T) {
	atoms := atom.NewTable()
	b := newFakeBackend()
	b.Width = func(r rune) float64 {
		if r == '~' {
			return 40000
		}
		return float64(r % 13)
	}
	f := mustBuild(t, b, "cursor", WithAtoms(atoms), WithDeclaredName("cursor"))

	for _, order := range []wire.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		buf := f.QueryFontReply(9).Append(nil, order)
		r, err := wire.DecodeQueryFontReply(buf, order)
		if err != nil {
			t.Fatalf("DecodeQueryFontReply: %v", err)
		}

		decoded := make([]CharInfo, len(r.CharInfos))
		for i, c := range r.CharInfos {
			decoded[i] = CharInfoFromWire(c)
		}
		if diff := cmp.Diff(f.Chars(), decoded); diff != "" {
			t.Errorf("char table round trip mismatch (-want +got):\n%s", diff)
		}
		if CharInfoFromWire(r.MaxBounds) != f.MaxBounds() || CharInfoFromWire(r.MinBounds) != f.MinBounds() {
			t.Error("bounds changed in the round trip")
		}
		if r.Sequence != 9 || r.MinCharOrByte2 != 32 || r.MaxCharOrByte2 != 255 || r.DefaultChar != 32 {
			t.Errorf("reply header = %+v", r)
		}
		want := []wire.FontProp{{Name: uint32(atom.Font), Value: uint32(atoms.InternAtom("cursor"))}}
		if diff := cmp.Diff(want, r.Properties); diff != "" {
			t.Errorf("properties mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestExtentsReply(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "cursor")

	e := f.TextExtents8([]byte("Ag"))
	buf := e.Reply(5).Append(nil, binary.LittleEndian)
	r, err := wire.DecodeQueryTextExtentsReply(buf, binary.LittleEndian)
	if err != nil {
		t.Fatalf("DecodeQueryTextExtentsReply: %v", err)
	}
	if r.OverallWidth != e.OverallWidth || r.OverallRight != e.OverallRight || r.FontAscent != e.FontAscent {
		t.Errorf("decoded %+v, want %+v", r, e)
	}
}
