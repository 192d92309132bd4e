package rtcp

import (
	"strings"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// reportBlockSize is the fixed wire size of a ReportBlock, per
// https://tools.ietf.org/html/rfc3550#section-6.4.1.
const reportBlockSize = 24

// ReportBlock is the 24-byte per-source reception report shared by
// SenderReport and ReceiverReport. Grounded in internal/rtp/rtcp.go's
// rtcpReport, generalized to the exact RFC 3550 bitfield layout (a 24-bit
// signed CumulativeLost, rather than a truncated int).
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                 SSRC_1 (SSRC of first source)                |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	| fraction lost |       cumulative number of packets lost      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           extended highest sequence number received          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      interarrival jitter                     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         last SR (LSR)                        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                   delay since last SR (DLSR)                 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type ReportBlock struct {
	SSRC               uint32
	FractionLost       uint8
	CumulativeLost     int32 // 24-bit signed, sign-extended
	ExtendedHighestSeq uint32
	Jitter             uint32
	LastSenderReport   uint32
	DelaySinceLastSR   uint32
}

func (rb ReportBlock) writeTo(w *packet.Writer) {
	w.WriteUint32(rb.SSRC)
	w.WriteByte(rb.FractionLost)
	w.WriteUint24(uint32(rb.CumulativeLost) & 0xffffff)
	w.WriteUint32(rb.ExtendedHighestSeq)
	w.WriteUint32(rb.Jitter)
	w.WriteUint32(rb.LastSenderReport)
	w.WriteUint32(rb.DelaySinceLastSR)
}

func (rb *ReportBlock) readFrom(r *packet.Reader) {
	rb.SSRC = r.ReadUint32()
	rb.FractionLost = r.ReadByte()
	rb.CumulativeLost = signExtend24(r.ReadUint24())
	rb.ExtendedHighestSeq = r.ReadUint32()
	rb.Jitter = r.ReadUint32()
	rb.LastSenderReport = r.ReadUint32()
	rb.DelaySinceLastSR = r.ReadUint32()
}

// signExtend24 sign-extends a 24-bit two's-complement value (as produced by
// Reader.ReadUint24, which returns it zero-extended in a uint32) to int32.
func signExtend24(v uint32) int32 {
	if v&0x800000 != 0 {
		v |= 0xff000000
	}
	return int32(v)
}

func (rb ReportBlock) dump(b *strings.Builder) {
	fmtLine(b, "[ReportBlock ssrc=%d fractionLost=%d cumulativeLost=%d "+
		"extHighestSeq=%d jitter=%d lsr=%d dlsr=%d/]",
		rb.SSRC, rb.FractionLost, rb.CumulativeLost, rb.ExtendedHighestSeq,
		rb.Jitter, rb.LastSenderReport, rb.DelaySinceLastSR)
}
