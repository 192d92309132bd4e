package rtcp

import (
	"strings"

	errors "golang.org/x/xerrors"

	"github.com/lanikai/rtcpcodec/internal/packet"
)

// ItemType identifies the kind of information carried by an SDES Item.
// See https://tools.ietf.org/html/rfc3550#section-6.5
type ItemType uint8

// SDES item types.
const (
	ItemCNAME ItemType = 1
	ItemNAME  ItemType = 2
	ItemEMAIL ItemType = 3
	ItemPHONE ItemType = 4
	ItemLOC   ItemType = 5
	ItemTOOL  ItemType = 6
	ItemNOTE  ItemType = 7
	ItemPRIV  ItemType = 8
)

func (t ItemType) String() string {
	switch t {
	case ItemCNAME:
		return "CNAME"
	case ItemNAME:
		return "NAME"
	case ItemEMAIL:
		return "EMAIL"
	case ItemPHONE:
		return "PHONE"
	case ItemLOC:
		return "LOC"
	case ItemTOOL:
		return "TOOL"
	case ItemNOTE:
		return "NOTE"
	case ItemPRIV:
		return "PRIV"
	default:
		return "unknown"
	}
}

// Item is a single (type, text) entry within a Description. Unknown types
// are preserved verbatim in Type/Text rather than rejected.
type Item struct {
	Type ItemType
	Text string
}

// Description is the set of SDES items associated with a single SSRC/CSRC.
type Description struct {
	Source uint32
	Items  []Item
}

func (d Description) size() int {
	size := 4 // Source
	for _, item := range d.Items {
		size += 2 + len(item.Text) // type(1) + length(1) + text
	}
	size++ // type==0 terminator
	return (size + 3) / 4 * 4
}

func (d Description) writeTo(w *packet.Writer) error {
	w.WriteUint32(d.Source)
	for _, item := range d.Items {
		if len(item.Text) > 255 {
			return errSDESTextTooLong
		}
		if item.Type == 0 {
			return errSDESMissingType
		}
		w.WriteByte(byte(item.Type))
		w.WriteByte(byte(len(item.Text)))
		if err := w.WriteString(item.Text); err != nil {
			return err
		}
	}
	w.WriteByte(0)
	w.Align(4)
	return nil
}

func (d *Description) readFrom(r *packet.Reader) error {
	d.Source = r.ReadUint32()
	d.Items = nil
	for {
		if r.Remaining() == 0 {
			break
		}
		t := ItemType(r.ReadByte())
		if t == 0 {
			break
		}
		if r.Remaining() == 0 {
			return errTruncated
		}
		n := int(r.ReadByte())
		if err := r.CheckRemaining(n); err != nil {
			return errTruncated
		}
		d.Items = append(d.Items, Item{Type: t, Text: r.ReadString(n)})
	}
	r.Align(4)
	return nil
}

func (d Description) dump(b *strings.Builder) {
	fmtLine(b, "[Description source=%d]", d.Source)
	for _, item := range d.Items {
		fmtLine(b, "\t%s=%q", item.Type, item.Text)
	}
}

// SourceDescription is the RTCP SDES packet (PT=202).
// See https://tools.ietf.org/html/rfc3550#section-6.5
//
// Grounded in internal/rtp/rtcp.go's rtcpSourceDescription/sdesItem,
// generalized from a CNAME-only item to the full ItemType enumeration and
// a multi-chunk Description list.
type SourceDescription struct {
	Descriptions []Description
}

// Header returns this packet's RTCP header.
func (s SourceDescription) Header() Header {
	return Header{
		Type:   TypeSourceDescription,
		Count:  uint8(len(s.Descriptions)),
		Length: uint16(s.Size()/4 - 1),
	}
}

// DestinationSSRC returns the SSRC/CSRC of every chunk in this packet.
func (s SourceDescription) DestinationSSRC() []uint32 {
	out := make([]uint32, 0, len(s.Descriptions))
	for _, d := range s.Descriptions {
		out = append(out, d.Source)
	}
	return out
}

// Size returns the on-wire size of this packet, in bytes.
func (s SourceDescription) Size() int {
	size := headerLength
	for _, d := range s.Descriptions {
		size += d.size()
	}
	return size
}

// Marshal encodes the packet in binary.
func (s SourceDescription) Marshal() ([]byte, error) {
	if len(s.Descriptions) > countMax {
		return nil, errTooManyChunks
	}

	buf := make([]byte, s.Size())

	h := s.Header()
	hdr, err := h.Marshal()
	if err != nil {
		return nil, err
	}
	copy(buf, hdr)

	w := packet.NewWriter(buf[headerLength:])
	for _, d := range s.Descriptions {
		if err := d.writeTo(w); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// Unmarshal decodes the packet from binary.
func (s *SourceDescription) Unmarshal(rawPacket []byte) error {
	var h Header
	if err := h.Unmarshal(rawPacket); err != nil {
		return err
	}
	if h.Type != TypeSourceDescription {
		return errWrongType
	}

	size := h.Len()
	if size > len(rawPacket) {
		return errTruncated
	}

	r := packet.NewReader(rawPacket[headerLength:size])
	s.Descriptions = nil
	for i := 0; i < int(h.Count); i++ {
		if r.Remaining() < 4 {
			return errors.Errorf("rtcp: sdes declares %d chunks but only %d fit", h.Count, len(s.Descriptions))
		}
		var d Description
		if err := d.readFrom(r); err != nil {
			return err
		}
		s.Descriptions = append(s.Descriptions, d)
	}

	return nil
}

// Dump renders a human-readable trace.
func (s SourceDescription) Dump() string {
	var b strings.Builder
	fmtHeader(&b, "RTCPSourceDescription", "count=%d", len(s.Descriptions))
	for _, d := range s.Descriptions {
		d.dump(&b)
	}
	b.WriteString("[/RTCPSourceDescription]\n")
	return b.String()
}
