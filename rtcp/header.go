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

import "encoding/binary"

// PacketType specifies the type of an RTCP packet.
type PacketType uint8

// RTCP packet types registered with IANA.
// See https://www.iana.org/assignments/rtp-parameters/rtp-parameters.xhtml#rtp-parameters-4
const (
	TypeFullIntraRequest          PacketType = 192 // RFC 2032 (legacy)
	TypeNACK                      PacketType = 193 // RFC 2032 (legacy)
	TypeExtendedJitterReport      PacketType = 195 // RFC 5450
	TypeSenderReport              PacketType = 200 // RFC 3550, 6.4.1
	TypeReceiverReport            PacketType = 201 // RFC 3550, 6.4.2
	TypeSourceDescription         PacketType = 202 // RFC 3550, 6.5
	TypeGoodbye                   PacketType = 203 // RFC 3550, 6.6
	TypeApplicationDefined        PacketType = 204 // RFC 3550, 6.7
	TypeTransportSpecificFeedback PacketType = 205 // RFC 4585, 6.2
	TypePayloadSpecificFeedback   PacketType = 206 // RFC 4585, 6.3
)

// Format carries the meaning of the Header.Count field for feedback and
// application-defined packets, where it is overloaded to hold a message
// subtype rather than a report count.
type Format uint8

// Transport-layer feedback (RTPFeedback) formats. See RFC 4585, 6.2.
const (
	FormatNACK  Format = 1
	FormatTMMBR Format = 3 // RFC 5104, 4.2.1
	FormatTMMBN Format = 4 // RFC 5104, 4.2.2
)

// Payload-specific feedback (PayloadFeedback) formats. See RFC 4585, 6.3 and
// RFC 5104, 4.3.
const (
	FormatPLI  Format = 1
	FormatSLI  Format = 2
	FormatRPSI Format = 3
	FormatFIR  Format = 4
	FormatTSTR Format = 5
	FormatTSTN Format = 6
	FormatVBCM Format = 7
	FormatAFB  Format = 15
)

func (p PacketType) String() string {
	switch p {
	case TypeFullIntraRequest:
		return "FIR"
	case TypeNACK:
		return "NACK"
	case TypeSenderReport:
		return "SR"
	case TypeReceiverReport:
		return "RR"
	case TypeSourceDescription:
		return "SDES"
	case TypeGoodbye:
		return "BYE"
	case TypeApplicationDefined:
		return "APP"
	case TypeTransportSpecificFeedback:
		return "TSFB"
	case TypePayloadSpecificFeedback:
		return "PSFB"
	case TypeExtendedJitterReport:
		return "IJ"
	default:
		return "unknown"
	}
}

const rtcpVersion = 2

// Header is the 4-byte common header shared by every RTCP packet.
// See https://tools.ietf.org/html/rfc3550#section-6.1
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|    RC   |       PT      |             length            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Header struct {
	// If the padding bit is set, this individual RTCP packet contains some
	// additional padding octets at the end, counted by Length but not part
	// of the control information.
	Padding bool

	// Count holds the number of reception reports or sources contained in
	// this packet, or (for feedback and APP packets) the message subtype.
	Count uint8

	// Type is the RTCP packet type for this packet.
	Type PacketType

	// Length is this RTCP packet's size in 32-bit words, minus one,
	// including the header and any padding.
	Length uint16
}

const (
	headerLength = 4
	versionShift = 6
	versionMask  = 0x3
	paddingShift = 5
	paddingMask  = 0x1
	countShift   = 0
	countMask    = 0x1f
	countMax     = (1 << 5) - 1
)

// Len returns the total on-wire size of the packet this header describes,
// in bytes: (Length+1)*4.
func (h Header) Len() int {
	return (int(h.Length) + 1) * 4
}

// SetLength sets Length from a total packet size in bytes. size must be a
// positive multiple of 4.
func (h *Header) SetLength(size int) {
	h.Length = uint16(size/4 - 1)
}

// Marshal encodes the Header in binary.
func (h Header) Marshal() ([]byte, error) {
	rawPacket := make([]byte, headerLength)

	rawPacket[0] |= rtcpVersion << versionShift

	if h.Padding {
		rawPacket[0] |= 1 << paddingShift
	}

	if h.Count > countMax {
		return nil, errInvalidHeader
	}
	rawPacket[0] |= h.Count << countShift

	rawPacket[1] = uint8(h.Type)

	binary.BigEndian.PutUint16(rawPacket[2:], h.Length)

	return rawPacket, nil
}

// Unmarshal decodes the Header from binary.
func (h *Header) Unmarshal(rawPacket []byte) error {
	if len(rawPacket) < headerLength {
		return errPacketTooShort
	}

	version := rawPacket[0] >> versionShift & versionMask
	if version != rtcpVersion {
		return errBadVersion
	}

	h.Padding = (rawPacket[0]>>paddingShift&paddingMask) > 0
	h.Count = rawPacket[0] >> countShift & countMask

	h.Type = PacketType(rawPacket[1])

	h.Length = binary.BigEndian.Uint16(rawPacket[2:])

	return nil
}

// IsRTCP reports whether buf looks like the start of an RTCP packet: at
// least a full header, version 2, and a recognized payload type. Legacy
// FIR/NACK (192/193) are included alongside the RFC 3550/4585 range.
func IsRTCP(buf []byte) bool {
	if len(buf) < headerLength {
		return false
	}
	version := buf[0] >> versionShift & versionMask
	if version != rtcpVersion {
		return false
	}
	switch PacketType(buf[1]) {
	case TypeFullIntraRequest, TypeNACK,
		TypeSenderReport, TypeReceiverReport, TypeSourceDescription, TypeGoodbye,
		TypeApplicationDefined, TypeTransportSpecificFeedback, TypePayloadSpecificFeedback,
		TypeExtendedJitterReport:
		return true
	default:
		return false
	}
}
