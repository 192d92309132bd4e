package rtcp

import (
	"strings"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// SliceLossIndication is a single Slice Loss Indication entry.
// See https://tools.ietf.org/html/rfc4585#section-6.3.2
type SliceLossIndication struct {
	First     uint16 // 13 bits
	Number    uint16 // 13 bits
	PictureID uint8  // 6 bits
}

func (s SliceLossIndication) size() int { return 4 }

func (s SliceLossIndication) writeTo(w *packet.Writer) {
	packed := uint32(s.First&0x1fff)<<19 | uint32(s.Number&0x1fff)<<6 | uint32(s.PictureID&0x3f)
	w.WriteUint32(packed)
}

func (s *SliceLossIndication) readFrom(r *packet.Reader) {
	packed := r.ReadUint32()
	s.First = uint16(packed >> 19 & 0x1fff)
	s.Number = uint16(packed >> 6 & 0x1fff)
	s.PictureID = uint8(packed & 0x3f)
}

func (s SliceLossIndication) dump(b *strings.Builder) {
	fmtLine(b, "[SLI first=%d number=%d pictureId=%d/]", s.First, s.Number, s.PictureID)
}

// ReferencePictureSelectionIndication carries an opaque, bit-packed
// reference picture selection bitstring. See RFC 4585 section 6.3.3.
type ReferencePictureSelectionIndication struct {
	PayloadType uint8
	Bitstring   []byte
}

func (r ReferencePictureSelectionIndication) size() int {
	return (2+len(r.Bitstring)+3) / 4 * 4
}

func (rpsi ReferencePictureSelectionIndication) writeTo(w *packet.Writer) error {
	padded := rpsi.size()
	padBits := uint8(padded*8 - 16 - len(rpsi.Bitstring)*8)
	w.WriteByte(padBits)
	w.WriteByte(rpsi.PayloadType)
	if err := w.WriteSlice(rpsi.Bitstring); err != nil {
		return err
	}
	w.Align(4)
	return nil
}

func (rpsi *ReferencePictureSelectionIndication) readFrom(r *packet.Reader) {
	padBits := r.ReadByte()
	rpsi.PayloadType = r.ReadByte()
	remaining := r.Remaining()
	bitstringLen := remaining - int(padBits)/8
	if bitstringLen < 0 {
		bitstringLen = 0
	}
	rpsi.Bitstring = append([]byte(nil), r.ReadSlice(bitstringLen)...)
	r.Align(4)
}

func (rpsi ReferencePictureSelectionIndication) dump(b *strings.Builder) {
	fmtLine(b, "[RPSI payloadType=%d bytes=%d/]", rpsi.PayloadType, len(rpsi.Bitstring))
}

// FullIntraRequestEntry is a single FIR request, naming the source that
// should generate a new key frame. See RFC 5104 section 4.3.1.
type FullIntraRequestEntry struct {
	SSRC  uint32
	SeqNr uint8
}

func (e FullIntraRequestEntry) size() int { return 8 }

func (e FullIntraRequestEntry) writeTo(w *packet.Writer) {
	w.WriteUint32(e.SSRC)
	w.WriteByte(e.SeqNr)
	w.WriteUint24(0)
}

func (e *FullIntraRequestEntry) readFrom(r *packet.Reader) {
	e.SSRC = r.ReadUint32()
	e.SeqNr = r.ReadByte()
	r.Skip(3)
}

func (e FullIntraRequestEntry) dump(b *strings.Builder) {
	fmtLine(b, "[FIR ssrc=%d seqNr=%d/]", e.SSRC, e.SeqNr)
}

// TemporalSpatialTradeoffEntry backs both TSTR (request) and TSTN
// (notification). See RFC 5104 sections 4.3.2 and 4.3.3.
type TemporalSpatialTradeoffEntry struct {
	SSRC  uint32
	SeqNr uint8
	Index uint8 // 5 bits
}

func (e TemporalSpatialTradeoffEntry) size() int { return 8 }

func (e TemporalSpatialTradeoffEntry) writeTo(w *packet.Writer) {
	w.WriteUint32(e.SSRC)
	w.WriteByte(e.SeqNr)
	packed := uint32(e.Index & 0x1f)
	w.WriteUint24(packed)
}

func (e *TemporalSpatialTradeoffEntry) readFrom(r *packet.Reader) {
	e.SSRC = r.ReadUint32()
	e.SeqNr = r.ReadByte()
	packed := r.ReadUint24()
	e.Index = uint8(packed & 0x1f)
}

func (e TemporalSpatialTradeoffEntry) dump(b *strings.Builder) {
	fmtLine(b, "[TSTREntry ssrc=%d seqNr=%d index=%d/]", e.SSRC, e.SeqNr, e.Index)
}

// VideoBackChannelMessage carries an application-defined VBCM payload.
// See RFC 5104 section 4.3.4.
type VideoBackChannelMessage struct {
	SSRC        uint32
	SeqNr       uint8
	PayloadType uint8 // 7 bits
	Payload     []byte
}

func (v VideoBackChannelMessage) size() int {
	return (8+len(v.Payload)+3) / 4 * 4
}

func (v VideoBackChannelMessage) writeTo(w *packet.Writer) error {
	w.WriteUint32(v.SSRC)
	w.WriteByte(v.SeqNr)
	w.WriteByte(v.PayloadType & 0x7f)
	w.WriteUint16(uint16(len(v.Payload)))
	if err := w.WriteSlice(v.Payload); err != nil {
		return err
	}
	w.Align(4)
	return nil
}

func (v *VideoBackChannelMessage) readFrom(r *packet.Reader) error {
	v.SSRC = r.ReadUint32()
	v.SeqNr = r.ReadByte()
	v.PayloadType = r.ReadByte() & 0x7f
	n := int(r.ReadUint16())
	if err := r.CheckRemaining(n); err != nil {
		return errTruncated
	}
	v.Payload = append([]byte(nil), r.ReadSlice(n)...)
	r.Align(4)
	return nil
}

func (v VideoBackChannelMessage) dump(b *strings.Builder) {
	fmtLine(b, "[VBCM ssrc=%d seqNr=%d payloadType=%d bytes=%d/]", v.SSRC, v.SeqNr, v.PayloadType, len(v.Payload))
}

// PayloadFeedback is the RTCP Payload-specific Feedback packet (PT=206).
// See https://tools.ietf.org/html/rfc4585#section-6.3
//
// Grounded in internal/rtp/avpf.go's feedback dispatch, generalized from a
// PLI-only switch to the full PLI/SLI/RPSI/FIR/TSTR/TSTN/VBCM/AFB variant
// set named in RFC 4585 and RFC 5104.
type PayloadFeedback struct {
	FeedbackType Format
	SenderSSRC   uint32
	MediaSSRC    uint32

	SLIs  []SliceLossIndication
	RPSIs []ReferencePictureSelectionIndication
	FIRs  []FullIntraRequestEntry
	TSTs  []TemporalSpatialTradeoffEntry
	VBCMs []VideoBackChannelMessage
	AFB   []byte
}

// Header returns this packet's RTCP header.
func (f PayloadFeedback) Header() Header {
	return Header{
		Type:   TypePayloadSpecificFeedback,
		Count:  uint8(f.FeedbackType),
		Length: uint16(f.Size()/4 - 1),
	}
}

// DestinationSSRC returns the media SSRC this feedback concerns.
func (f PayloadFeedback) DestinationSSRC() []uint32 {
	return []uint32{f.MediaSSRC}
}

// Size returns the on-wire size of this packet, in bytes.
func (f PayloadFeedback) Size() int {
	size := headerLength + feedbackHeaderSize
	switch f.FeedbackType {
	case FormatPLI:
	case FormatSLI:
		for _, s := range f.SLIs {
			size += s.size()
		}
	case FormatRPSI:
		for _, r := range f.RPSIs {
			size += r.size()
		}
	case FormatFIR:
		for _, e := range f.FIRs {
			size += e.size()
		}
	case FormatTSTR, FormatTSTN:
		for _, e := range f.TSTs {
			size += e.size()
		}
	case FormatVBCM:
		for _, v := range f.VBCMs {
			size += v.size()
		}
	case FormatAFB:
		size += len(f.AFB)
	}
	return size
}

// Marshal encodes the packet in binary.
func (f PayloadFeedback) Marshal() ([]byte, error) {
	buf := make([]byte, f.Size())

	h := f.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	w.WriteUint32(f.SenderSSRC)
	w.WriteUint32(f.MediaSSRC)

	switch f.FeedbackType {
	case FormatPLI:
		if len(f.SLIs)+len(f.RPSIs)+len(f.FIRs)+len(f.TSTs)+len(f.VBCMs)+len(f.AFB) != 0 {
			return nil, errEmptyWithBody
		}
	case FormatSLI:
		for _, s := range f.SLIs {
			s.writeTo(w)
		}
	case FormatRPSI:
		for _, r := range f.RPSIs {
			if err := r.writeTo(w); err != nil {
				return nil, err
			}
		}
	case FormatFIR:
		for _, e := range f.FIRs {
			e.writeTo(w)
		}
	case FormatTSTR, FormatTSTN:
		for _, e := range f.TSTs {
			e.writeTo(w)
		}
	case FormatVBCM:
		for _, v := range f.VBCMs {
			if err := v.writeTo(w); err != nil {
				return nil, err
			}
		}
	case FormatAFB:
		if len(f.AFB)%4 != 0 {
			return nil, errInconsistentLength
		}
		if err := w.WriteSlice(f.AFB); err != nil {
			return nil, err
		}
	default:
		return nil, errUnknownFeedbackFMT
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (f *PayloadFeedback) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypePayloadSpecificFeedback {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}
	if size < headerLength+feedbackHeaderSize {
		return errPacketTooShort
	}

	f.FeedbackType = Format(h.Count)

	r := packet.NewReader(rawPacket[headerLength:size])
	f.SenderSSRC = r.ReadUint32()
	f.MediaSSRC = r.ReadUint32()

	f.SLIs, f.RPSIs, f.FIRs, f.TSTs, f.VBCMs, f.AFB = nil, nil, nil, nil, nil, nil

	switch f.FeedbackType {
	case FormatPLI:
		if r.Remaining() != 0 {
			return errEmptyWithBody
		}
	case FormatSLI:
		for r.Remaining() >= 4 {
			var s SliceLossIndication
			s.readFrom(r)
			f.SLIs = append(f.SLIs, s)
		}
	case FormatRPSI:
		for r.Remaining() >= 4 {
			var rpsi ReferencePictureSelectionIndication
			rpsi.readFrom(r)
			f.RPSIs = append(f.RPSIs, rpsi)
		}
	case FormatFIR:
		for r.Remaining() >= 8 {
			var e FullIntraRequestEntry
			e.readFrom(r)
			f.FIRs = append(f.FIRs, e)
		}
	case FormatTSTR, FormatTSTN:
		for r.Remaining() >= 8 {
			var e TemporalSpatialTradeoffEntry
			e.readFrom(r)
			f.TSTs = append(f.TSTs, e)
		}
	case FormatVBCM:
		for r.Remaining() >= 8 {
			var v VideoBackChannelMessage
			if err := v.readFrom(r); err != nil {
				return err
			}
			f.VBCMs = append(f.VBCMs, v)
		}
	case FormatAFB:
		f.AFB = append([]byte(nil), r.ReadRemaining()...)
	default:
		return errUnknownFeedbackFMT
	}

	return nil
}

// Dump renders a human-readable trace.
func (f PayloadFeedback) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPPayloadFeedback", "fmt=%d senderSSRC=%d mediaSSRC=%d",
		f.FeedbackType, f.SenderSSRC, f.MediaSSRC)
	for _, s := range f.SLIs {
		s.dump(&b)
	}
	for _, r := range f.RPSIs {
		r.dump(&b)
	}
	for _, e := range f.FIRs {
		e.dump(&b)
	}
	for _, e := range f.TSTs {
		e.dump(&b)
	}
	for _, v := range f.VBCMs {
		v.dump(&b)
	}
	if f.FeedbackType == FormatAFB {
		fmtLine(&b, "[AFB bytes=%d/]", len(f.AFB))
	}
	b.WriteString("[/RTCPPayloadFeedback]\n")
	return b.String()
}
