package rtcp

import (
	"strings"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// ExtendedJitterReport is the RTCP Extended Inter-arrival Jitter Report
// packet (PT=195). It carries no SSRC of its own; Count bounds the sample
// array. See https://tools.ietf.org/html/rfc5450
type ExtendedJitterReport struct {
	Jitters []uint32
}

// Header returns this packet's RTCP header.
func (j ExtendedJitterReport) Header() Header {
	return Header{
		Type:   TypeExtendedJitterReport,
		Count:  uint8(len(j.Jitters)),
		Length: uint16(j.Size()/4 - 1),
	}
}

// DestinationSSRC returns an empty slice: this packet carries no SSRC.
func (j ExtendedJitterReport) DestinationSSRC() []uint32 {
	return nil
}

// Size returns the on-wire size of this packet, in bytes.
func (j ExtendedJitterReport) Size() int {
	return headerLength + 4*len(j.Jitters)
}

// Marshal encodes the packet in binary.
func (j ExtendedJitterReport) Marshal() ([]byte, error) {
	if len(j.Jitters) > countMax {
		return nil, errTooManyReports
	}

	buf := make([]byte, j.Size())

	h := j.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	for _, v := range j.Jitters {
		w.WriteUint32(v)
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (j *ExtendedJitterReport) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeExtendedJitterReport {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}

	r := packet.NewReader(rawPacket[headerLength:size])
	count := int(h.Count)
	if max := r.Remaining() / 4; count > max {
		count = max
	}

	j.Jitters = make([]uint32, count)
	for i := range j.Jitters {
		j.Jitters[i] = r.ReadUint32()
	}

	return nil
}

// Dump renders a human-readable trace.
func (j ExtendedJitterReport) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPExtendedJitterReport", "count=%d", len(j.Jitters))
	for _, v := range j.Jitters {
		fmtLine(&b, "jitter=%d", v)
	}
	b.WriteString("[/RTCPExtendedJitterReport]\n")
	return b.String()
}
