package rtcp

import (
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// rrBodySize is the fixed portion of a Receiver Report body before any
// report blocks: the leading ssrc(4).
const rrBodySize = 4

// ReceiverReport is the RTCP Receiver Report packet (PT=201).
// See https://tools.ietf.org/html/rfc3550#section-6.4.2
//
// Grounded in internal/rtp/rtcp.go's rtcpReceiverReport.
type ReceiverReport struct {
	SSRC    uint32
	Reports []ReportBlock
}

// Header returns this packet's RTCP header.
func (rr ReceiverReport) Header() Header {
	return Header{
		Type:   TypeReceiverReport,
		Count:  uint8(len(rr.Reports)),
		Length: uint16(rr.Size()/4 - 1),
	}
}

// DestinationSSRC returns the SSRCs of every source this report describes.
func (rr ReceiverReport) DestinationSSRC() []uint32 {
	out := make([]uint32, 0, len(rr.Reports))
	for _, rb := range rr.Reports {
		out = append(out, rb.SSRC)
	}
	return out
}

// Size returns the on-wire size of this packet, in bytes.
func (rr ReceiverReport) Size() int {
	return headerLength + rrBodySize + len(rr.Reports)*reportBlockSize
}

// Marshal encodes the packet in binary.
func (rr ReceiverReport) Marshal() ([]byte, error) {
	if len(rr.Reports) > countMax {
		return nil, errTooManyReports
	}

	buf := make([]byte, rr.Size())

	h := rr.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	w.WriteUint32(rr.SSRC)
	for _, rb := range rr.Reports {
		rb.writeTo(w)
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary. As with SenderReport, a header
// count that exceeds what fits in the declared size is tolerated, reading
// only as many blocks as fit.
func (rr *ReceiverReport) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeReceiverReport {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}
	if size < headerLength+rrBodySize {
		return errors.Errorf("rtcp: receiver report too short: %d bytes", size)
	}

	r := packet.NewReader(rawPacket[headerLength:size])
	rr.SSRC = r.ReadUint32()

	count := int(h.Count)
	if max := r.Remaining() / reportBlockSize; count > max {
		count = max
	}

	rr.Reports = make([]ReportBlock, count)
	for i := range rr.Reports {
		rr.Reports[i].readFrom(r)
	}

	return nil
}

// Dump renders a human-readable trace.
func (rr ReceiverReport) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPReceiverReport", "ssrc=%d count=%d", rr.SSRC, len(rr.Reports))
	for _, rb := range rr.Reports {
		rb.dump(&b)
	}
	b.WriteString("[/RTCPReceiverReport]\n")
	return b.String()
}
