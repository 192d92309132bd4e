package rtcp

import (
	"strings"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// appHeaderSize is the fixed portion of an APP body: ssrc(4) + name(4).
const appHeaderSize = 8

// ApplicationDefined is the RTCP APP packet (PT=204). The 5-bit Count field
// is overloaded as an application-specific Subtype.
// See https://tools.ietf.org/html/rfc3550#section-6.7
//
// Grounded in header.go's Format-overloaded-Count convention and laid out
// straight from RFC 3550's APP body description.
type ApplicationDefined struct {
	Subtype Format
	SSRC    uint32
	Name    [4]byte
	Data    []byte
}

// Header returns this packet's RTCP header.
func (a ApplicationDefined) Header() Header {
	return Header{
		Type:   TypeApplicationDefined,
		Count:  uint8(a.Subtype),
		Length: uint16(a.Size()/4 - 1),
	}
}

// DestinationSSRC returns this packet's single SSRC.
func (a ApplicationDefined) DestinationSSRC() []uint32 {
	return []uint32{a.SSRC}
}

// Size returns the on-wire size of this packet, in bytes.
func (a ApplicationDefined) Size() int {
	return headerLength + appHeaderSize + len(a.Data)
}

// Marshal encodes the packet in binary. Data must already be a multiple of
// 4 bytes; RFC 3550 requires APP packets to be word-aligned and this type
// does not pad Data for the caller.
func (a ApplicationDefined) Marshal() ([]byte, error) {
	if len(a.Data)%4 != 0 {
		return nil, errInconsistentLength
	}
	if a.Subtype > countMax {
		return nil, errInvalidHeader
	}

	buf := make([]byte, a.Size())

	h := a.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	w.WriteUint32(a.SSRC)
	if err := w.WriteSlice(a.Name[:]); err != nil {
		return nil, err
	}
	if err := w.WriteSlice(a.Data); err != nil {
		return nil, err
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (a *ApplicationDefined) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeApplicationDefined {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}
	if size < headerLength+appHeaderSize {
		return errPacketTooShort
	}

	a.Subtype = Format(h.Count)

	r := packet.NewReader(rawPacket[headerLength:size])
	a.SSRC = r.ReadUint32()
	copy(a.Name[:], r.ReadSlice(4))
	a.Data = append([]byte(nil), r.ReadRemaining()...)

	return nil
}

// Dump renders a human-readable trace.
func (a ApplicationDefined) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPApplicationDefined", "ssrc=%d name=%q subtype=%d bytes=%d",
		a.SSRC, a.Name[:], a.Subtype, len(a.Data))
	b.WriteString("[/RTCPApplicationDefined]\n")
	return b.String()
}
