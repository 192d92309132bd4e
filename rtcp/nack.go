package rtcp

import (
	"strings"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// nackSize is the fixed legacy NACK body: ssrc(4) + fsn(2) + blp(2).
const nackSize = headerLength + 8

// NACK is the legacy RTCP NACK packet (PT=193, RFC 2032).
//
// original_source/cca/rtp.cpp reads fsn from offset +4 and blp from offset
// +2, which inverts RFC 2032's layout. This type implements the corrected
// layout: fsn at +4, blp at +6.
type NACK struct {
	SSRC uint32
	FSN  uint16 // first sequence number lost
	BLP  uint16 // bitmask of following losses
}

// Header returns this packet's RTCP header.
func (n NACK) Header() Header {
	return Header{
		Type:   TypeNACK,
		Length: uint16(n.Size()/4 - 1),
	}
}

// DestinationSSRC returns this packet's single SSRC.
func (n NACK) DestinationSSRC() []uint32 {
	return []uint32{n.SSRC}
}

// Size returns the on-wire size of this packet, in bytes.
func (n NACK) Size() int {
	return nackSize
}

// Marshal encodes the packet in binary.
func (n NACK) Marshal() ([]byte, error) {
	buf := make([]byte, n.Size())

	h := n.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	w.WriteUint32(n.SSRC)
	w.WriteUint16(n.FSN)
	w.WriteUint16(n.BLP)

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (n *NACK) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeNACK {
		return errWrongType
	}
	if h.Len() < nackSize || len(rawPacket) < nackSize {
		return errPacketTooShort
	}

	r := packet.NewReader(rawPacket[headerLength:nackSize])
	n.SSRC = r.ReadUint32()
	n.FSN = r.ReadUint16()
	n.BLP = r.ReadUint16()

	return nil
}

// Dump renders a human-readable trace.
func (n NACK) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPNACK", "ssrc=%d fsn=%d blp=0x%04x", n.SSRC, n.FSN, n.BLP)
	b.WriteString("[/RTCPNACK]\n")
	return b.String()
}
