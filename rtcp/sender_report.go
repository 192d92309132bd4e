package rtcp

import (
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// srBodySize is the fixed portion of a Sender Report body, before any
// report blocks: ssrc(4) + ntpSec(4) + ntpFrac(4) + rtpTimestamp(4) +
// packetsSent(4) + octetsSent(4).
const srBodySize = 24

// SenderReport is the RTCP Sender Report packet (PT=200).
// See https://tools.ietf.org/html/rfc3550#section-6.4.1
//
// Grounded in internal/rtp/rtcp.go's rtcpSenderReport, rewritten against
// the ReportBlock type shared with ReceiverReport and with NTPSec/NTPFrac
// kept as separate 32-bit halves, rather than a combined uint64
// ntpTimestamp; SetTimestamp/GetTimestamp (timestamp.go) round-trip to
// within 1 microsecond.
type SenderReport struct {
	SSRC         uint32
	NTPSec       uint32
	NTPFrac      uint32
	RTPTimestamp uint32
	PacketsSent  uint32
	OctetsSent   uint32
	Reports      []ReportBlock
}

// Header returns this packet's RTCP header.
func (sr SenderReport) Header() Header {
	return Header{
		Type:   TypeSenderReport,
		Count:  uint8(len(sr.Reports)),
		Length: uint16(sr.Size()/4 - 1),
	}
}

// DestinationSSRC returns the SSRCs of every source this report describes.
func (sr SenderReport) DestinationSSRC() []uint32 {
	out := make([]uint32, 0, len(sr.Reports))
	for _, rb := range sr.Reports {
		out = append(out, rb.SSRC)
	}
	return out
}

// Size returns the on-wire size of this packet, in bytes.
func (sr SenderReport) Size() int {
	return headerLength + srBodySize + len(sr.Reports)*reportBlockSize
}

// Marshal encodes the packet in binary.
func (sr SenderReport) Marshal() ([]byte, error) {
	if len(sr.Reports) > countMax {
		return nil, errTooManyReports
	}

	size := sr.Size()
	buf := make([]byte, size)

	h := sr.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	w.WriteUint32(sr.SSRC)
	w.WriteUint32(sr.NTPSec)
	w.WriteUint32(sr.NTPFrac)
	w.WriteUint32(sr.RTPTimestamp)
	w.WriteUint32(sr.PacketsSent)
	w.WriteUint32(sr.OctetsSent)
	for _, rb := range sr.Reports {
		rb.writeTo(w)
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary. A header count larger than the
// body can hold is tolerated: only min(count, floor(remaining/24)) report
// blocks are read.
func (sr *SenderReport) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeSenderReport {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}
	if size < headerLength+srBodySize {
		return errors.Errorf("rtcp: sender report too short: %d bytes", size)
	}

	r := packet.NewReader(rawPacket[headerLength:size])
	sr.SSRC = r.ReadUint32()
	sr.NTPSec = r.ReadUint32()
	sr.NTPFrac = r.ReadUint32()
	sr.RTPTimestamp = r.ReadUint32()
	sr.PacketsSent = r.ReadUint32()
	sr.OctetsSent = r.ReadUint32()

	count := int(h.Count)
	if max := r.Remaining() / reportBlockSize; count > max {
		count = max
	}

	sr.Reports = make([]ReportBlock, count)
	for i := range sr.Reports {
		sr.Reports[i].readFrom(r)
	}

	return nil
}

// Dump renders a human-readable trace, mirroring
// original_source/cca/rtp.cpp's RTCPSenderReport::Dump.
func (sr SenderReport) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPSenderReport", "ssrc=%d count=%d", sr.SSRC, len(sr.Reports))
	fmtLine(&b, "ntpSec=%d", sr.NTPSec)
	fmtLine(&b, "ntpFrac=%d", sr.NTPFrac)
	fmtLine(&b, "rtpTimestamp=%d", sr.RTPTimestamp)
	fmtLine(&b, "packetsSent=%d", sr.PacketsSent)
	fmtLine(&b, "octetsSent=%d", sr.OctetsSent)
	for _, rb := range sr.Reports {
		rb.dump(&b)
	}
	b.WriteString("[/RTCPSenderReport]\n")
	return b.String()
}
