// MIT License
//
// Copyright (c) 2018 Pions
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rtcp

import (
	"strings"
)

// Packet represents a single RTCP packet, a protocol used for out-of-band
// statistics and control information for an RTP session. The closed set of
// concrete types is enumerated in Unmarshal's dispatch switch; an unknown
// payload type surfaces as *RawPacket.
type Packet interface {
	Header() Header

	// DestinationSSRC returns the SSRC values that this packet refers to.
	DestinationSSRC() []uint32

	Size() int
	Marshal() ([]byte, error)
	Unmarshal(rawPacket []byte) error
	Dump() string
}

// Unmarshal decodes a single RTCP packet (not a compound datagram) and
// returns its concrete type along with the decoded Header. Unknown payload
// types decode successfully into a *RawPacket.
func Unmarshal(rawPacket []byte) (Packet, Header, error) {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return nil, h, err
	}

	p := newPacket(h.Type, h.Count)
	err := p.Unmarshal(rawPacket)
	return p, h, err
}

// newPacket constructs the zero value of the concrete Packet type that
// corresponds to pt (and, for feedback packet types, the FMT carried in
// count). It never returns nil.
func newPacket(pt PacketType, count uint8) Packet {
	switch pt {
	case TypeFullIntraRequest:
		return new(FullIntraRequest)
	case TypeNACK:
		return new(NACK)
	case TypeExtendedJitterReport:
		return new(ExtendedJitterReport)
	case TypeSenderReport:
		return new(SenderReport)
	case TypeReceiverReport:
		return new(ReceiverReport)
	case TypeSourceDescription:
		return new(SourceDescription)
	case TypeGoodbye:
		return new(Goodbye)
	case TypeApplicationDefined:
		return new(ApplicationDefined)
	case TypeTransportSpecificFeedback:
		return &RTPFeedback{FeedbackType: Format(count)}
	case TypePayloadSpecificFeedback:
		return &PayloadFeedback{FeedbackType: Format(count)}
	default:
		return new(RawPacket)
	}
}

// CompoundPacket is an ordered sequence of RTCP packets carried in a single
// UDP datagram, per RFC 3550 section 6.1.
type CompoundPacket []Packet

// Parse decodes buf into a CompoundPacket. It consumes buf in full: every
// header-declared packet size is checked against both the remaining buffer
// and, implicitly, the next header's position, so no packet can straddle
// the end of buf. Packets of an unrecognized payload type are skipped
// (the bytes they occupy are still consumed) rather than appended to the
// result, matching the original RTCP demuxer this codec replaces.
func (c *CompoundPacket) Parse(buf []byte) error {
	var packets CompoundPacket

	remaining := buf
	for len(remaining) > 0 {
		var h Header
		if err := h.Unmarshal(remaining); err != nil {
			return err
		}

		size := h.Len()
		if size > len(remaining) {
			return errTruncated
		}

		if isKnownPacketType(h.Type) {
			p := newPacket(h.Type, h.Count)
			if err := p.Unmarshal(remaining[:size]); err != nil {
				return err
			}
			packets = append(packets, p)
		}

		remaining = remaining[size:]
	}

	*c = packets
	return nil
}

func isKnownPacketType(pt PacketType) bool {
	switch pt {
	case TypeFullIntraRequest, TypeNACK, TypeExtendedJitterReport,
		TypeSenderReport, TypeReceiverReport, TypeSourceDescription, TypeGoodbye,
		TypeApplicationDefined, TypeTransportSpecificFeedback, TypePayloadSpecificFeedback:
		return true
	default:
		return false
	}
}

// Size returns the total on-wire size of the compound packet, in bytes.
func (c CompoundPacket) Size() int {
	size := 0
	for _, p := range c {
		size += p.Size()
	}
	return size
}

// Serialize writes every packet, in order, into buf, which must be at least
// c.Size() bytes. It returns the number of bytes written.
func (c CompoundPacket) Serialize(buf []byte) (int, error) {
	total := c.Size()
	if len(buf) < total {
		return 0, errBufferTooSmall
	}

	offset := 0
	for _, p := range c {
		b, err := p.Marshal()
		if err != nil {
			return 0, err
		}
		offset += copy(buf[offset:], b)
	}
	return offset, nil
}

// Dump renders a human-readable trace of every packet in the compound
// datagram, mirroring the nesting of the original C++ implementation's
// RTCPCompoundPacket::Dump/RTCPPacket::Dump.
func (c CompoundPacket) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPCompoundPacket", "count=%d size=%d", len(c), c.Size())
	for _, p := range c {
		b.WriteString(p.Dump())
	}
	b.WriteString("[/RTCPCompoundPacket]\n")
	return b.String()
}
