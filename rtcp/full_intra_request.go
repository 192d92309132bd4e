package rtcp

import (
	"strings"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// fullIntraRequestSize is the fixed FIR body: ssrc(4).
const fullIntraRequestSize = headerLength + 4

// FullIntraRequest is the legacy RTCP FIR packet (PT=192, RFC 2032). The
// RFC 5104 PayloadFeedback FIR variant (FormatFIR) supersedes this for new
// deployments; this type exists for interoperability with senders that
// still emit the legacy form.
type FullIntraRequest struct {
	SSRC uint32
}

// Header returns this packet's RTCP header.
func (f FullIntraRequest) Header() Header {
	return Header{
		Type:   TypeFullIntraRequest,
		Length: uint16(f.Size()/4 - 1),
	}
}

// DestinationSSRC returns this packet's single SSRC.
func (f FullIntraRequest) DestinationSSRC() []uint32 {
	return []uint32{f.SSRC}
}

// Size returns the on-wire size of this packet, in bytes.
func (f FullIntraRequest) Size() int {
	return fullIntraRequestSize
}

// Marshal encodes the packet in binary.
func (f FullIntraRequest) Marshal() ([]byte, error) {
	buf := make([]byte, f.Size())

	h := f.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	w.WriteUint32(f.SSRC)

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (f *FullIntraRequest) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeFullIntraRequest {
		return errWrongType
	}
	if h.Len() < fullIntraRequestSize || len(rawPacket) < fullIntraRequestSize {
		return errPacketTooShort
	}

	r := packet.NewReader(rawPacket[headerLength:fullIntraRequestSize])
	f.SSRC = r.ReadUint32()

	return nil
}

// Dump renders a human-readable trace.
func (f FullIntraRequest) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPFullIntraRequest", "ssrc=%d", f.SSRC)
	b.WriteString("[/RTCPFullIntraRequest]\n")
	return b.String()
}
