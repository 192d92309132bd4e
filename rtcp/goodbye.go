package rtcp

import (
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// Goodbye is the RTCP BYE packet (PT=203).
// See https://tools.ietf.org/html/rfc3550#section-6.6
//
// Grounded in internal/rtp/rtcp.go's rtcpGoodbye, generalized from a single
// SSRC to an ordered source list, with the reason string actually decoded
// rather than left on the wire.
type Goodbye struct {
	Sources []uint32
	Reason  string
}

// Header returns this packet's RTCP header.
func (g Goodbye) Header() Header {
	return Header{
		Type:   TypeGoodbye,
		Count:  uint8(len(g.Sources)),
		Length: uint16(g.Size()/4 - 1),
	}
}

// DestinationSSRC returns the list of departing sources.
func (g Goodbye) DestinationSSRC() []uint32 {
	return g.Sources
}

// Size returns the on-wire size of this packet, in bytes.
func (g Goodbye) Size() int {
	size := headerLength + 4*len(g.Sources)
	if g.Reason != "" {
		size += 1 + len(g.Reason)
		size = (size + 3) / 4 * 4
	}
	return size
}

// Marshal encodes the packet in binary. The reason, if present, is a
// length-prefixed string, zero-padded to a 4-byte boundary within the
// packet.
func (g Goodbye) Marshal() ([]byte, error) {
	if len(g.Sources) > countMax {
		return nil, errTooManySources
	}
	if len(g.Reason) > 255 {
		return nil, errReasonTooLong
	}

	buf := make([]byte, g.Size())

	h := g.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	for _, ssrc := range g.Sources {
		w.WriteUint32(ssrc)
	}
	if g.Reason != "" {
		w.WriteByte(byte(len(g.Reason)))
		if err := w.WriteString(g.Reason); err != nil {
			return nil, err
		}
		w.Align(4)
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (g *Goodbye) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeGoodbye {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}
	minSize := headerLength + 4*int(h.Count)
	if size < minSize {
		return errors.Errorf("rtcp: bye shorter than its declared SSRC count: %d < %d", size, minSize)
	}

	r := packet.NewReader(rawPacket[headerLength:size])
	g.Sources = make([]uint32, h.Count)
	for i := range g.Sources {
		g.Sources[i] = r.ReadUint32()
	}

	g.Reason = ""
	if r.Remaining() > 0 {
		n := int(r.ReadByte())
		if err := r.CheckRemaining(n); err != nil {
			return errTruncated
		}
		g.Reason = r.ReadString(n)
	}

	return nil
}

// Dump renders a human-readable trace.
func (g Goodbye) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPGoodbye", "count=%d reason=%q", len(g.Sources), g.Reason)
	for _, ssrc := range g.Sources {
		fmtLine(&b, "ssrc=%d", ssrc)
	}
	b.WriteString("[/RTCPGoodbye]\n")
	return b.String()
}
