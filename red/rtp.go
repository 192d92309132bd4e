// Package red implements the RFC 2198 redundant audio/video payload format:
// decoding the chain of redundancy sub-headers carried at the front of an
// RTP payload, and materializing the primary media block as a standalone
// RTP packet.
package red

// RTPPacket is the minimal view over an RTP data packet that the
// redundancy decoder needs: enough of the fixed header to clone onto a
// freshly split-out primary packet, plus the payload bytes themselves.
//
// Grounded in internal/rtp/rtp.go's rtpHeader (sequence, timestamp, ssrc,
// marker, payloadType), extended with Cycles and ClockRate per
// original_source/cca/rtp.cpp's RTPTimedPacket (SetSeqCycles/SetClockRate),
// which RTPRedundantPacket::CreatePrimaryPacket also clones.
type RTPPacket struct {
	SequenceNumber uint16
	Cycles         uint16 // RTP sequence number rollover count
	Timestamp      uint32
	SSRC           uint32
	Mark           bool
	PayloadType    uint8
	ClockRate      uint32
	Payload        []byte
}
