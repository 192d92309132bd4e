package red

import "errors"

// RFC 2198 redundancy sub-header layout, non-terminal form:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|F|   block PT  |  timestamp offset         |   block length    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// and terminal form: F(0) | block PT(7), a single byte, naming the primary
// block that fills the remainder of the payload.
// See https://tools.ietf.org/html/rfc2198#section-3

var (
	errEmptyPayload = errors.New("red: empty RTP payload")
	errTruncated    = errors.New("red: truncated redundancy header chain")
)

// RedHeader describes a single redundant block carried ahead of the
// primary payload.
type RedHeader struct {
	// BlockPT is the RTP payload type of this redundant block.
	BlockPT uint8

	// TSOffset is this block's timestamp, expressed as an offset
	// subtracted from the outer packet's RTP timestamp.
	TSOffset uint16

	// Skip is the number of redundant-block payload bytes that precede
	// this block's payload: the running sum of every earlier block's
	// Length.
	Skip uint16

	// Length is the size, in bytes, of this block's payload.
	Length uint16
}

// Packet is a parsed view over an RFC 2198 redundant RTP payload. It
// borrows its payload bytes from the RTPPacket it was parsed from; the
// view is valid only for that packet's lifetime. Use CreatePrimaryPacket
// to copy the primary block out into an independent RTPPacket.
type Packet struct {
	outer *RTPPacket

	Headers     []RedHeader
	PrimaryType uint8

	redundantOffset int
	primaryOffset   int
}

// Parse decodes the redundancy header chain at the front of outer's
// payload. It does not copy outer's payload; the returned Packet borrows
// it.
func Parse(outer *RTPPacket) (*Packet, error) {
	payload := outer.Payload
	if len(payload) == 0 {
		return nil, errEmptyPayload
	}

	var headers []RedHeader
	var skip uint16
	i := 0
	for {
		if i >= len(payload) {
			return nil, errTruncated
		}
		if payload[i]>>7 == 0 {
			break
		}
		if i+4 > len(payload) {
			return nil, errTruncated
		}

		blockPT := payload[i] & 0x7f
		offset := uint16(payload[i+1])<<6 | uint16(payload[i+2])>>2
		length := uint16(payload[i+2]&0x03)<<8 | uint16(payload[i+3])

		headers = append(headers, RedHeader{
			BlockPT:  blockPT,
			TSOffset: offset,
			Skip:     skip,
			Length:   length,
		})
		skip += length
		i += 4
	}

	primaryType := payload[i] & 0x7f
	i++

	primaryOffset := i + int(skip)
	if primaryOffset > len(payload) {
		return nil, errTruncated
	}

	return &Packet{
		outer:           outer,
		Headers:         headers,
		PrimaryType:     primaryType,
		redundantOffset: i,
		primaryOffset:   primaryOffset,
	}, nil
}

// RedundantPayload returns the payload bytes for the i'th redundant block
// named in Headers, borrowed from the outer packet's buffer.
func (p *Packet) RedundantPayload(i int) []byte {
	h := p.Headers[i]
	start := p.redundantOffset + int(h.Skip)
	return p.outer.Payload[start : start+int(h.Length)]
}

// PrimaryPayload returns the primary block's payload bytes, spanning the
// remainder of the outer packet's payload after every redundant block.
func (p *Packet) PrimaryPayload() []byte {
	return p.outer.Payload[p.primaryOffset:]
}

// CreatePrimaryPacket clones the outer packet's timing, sequence, SSRC,
// cycles, mark and clock rate, and substitutes the primary block's payload
// and type. Unlike RedundantPayload/PrimaryPayload, the returned packet
// owns a copy of its payload and outlives the Packet it was created from.
func (p *Packet) CreatePrimaryPacket() *RTPPacket {
	primary := p.PrimaryPayload()
	payload := make([]byte, len(primary))
	copy(payload, primary)

	return &RTPPacket{
		SequenceNumber: p.outer.SequenceNumber,
		Cycles:         p.outer.Cycles,
		Timestamp:      p.outer.Timestamp,
		SSRC:           p.outer.SSRC,
		Mark:           p.outer.Mark,
		ClockRate:      p.outer.ClockRate,
		PayloadType:    p.PrimaryType,
		Payload:        payload,
	}
}
