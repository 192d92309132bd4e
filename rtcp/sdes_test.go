package rtcp

import "testing"

func TestSourceDescriptionRoundTrip(t *testing.T) {
	sd := SourceDescription{
		Descriptions: []Description{
			{
				Source: 1,
				Items: []Item{
					{Type: ItemCNAME, Text: "user@example.com"},
					{Type: ItemTOOL, Text: "rtcpcodec"},
				},
			},
			{
				Source: 2,
				Items: []Item{
					{Type: ItemCNAME, Text: "x"},
				},
			},
		},
	}

	data, err := sd.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data)%4 != 0 {
		t.Fatalf("Marshal produced %d bytes, not a multiple of 4", len(data))
	}
	if len(data) != sd.Size() {
		t.Fatalf("Marshal produced %d bytes, Size() = %d", len(data), sd.Size())
	}

	var decoded SourceDescription
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Descriptions) != 2 {
		t.Fatalf("Descriptions = %d, want 2", len(decoded.Descriptions))
	}
	if decoded.Descriptions[0].Source != 1 || len(decoded.Descriptions[0].Items) != 2 {
		t.Fatalf("Descriptions[0] = %+v", decoded.Descriptions[0])
	}
	if decoded.Descriptions[0].Items[0].Text != "user@example.com" {
		t.Fatalf("Items[0].Text = %q", decoded.Descriptions[0].Items[0].Text)
	}
	if decoded.Descriptions[1].Items[0].Text != "x" {
		t.Fatalf("Descriptions[1].Items[0].Text = %q", decoded.Descriptions[1].Items[0].Text)
	}
}

func TestSourceDescriptionTextTooLong(t *testing.T) {
	sd := SourceDescription{
		Descriptions: []Description{
			{Source: 1, Items: []Item{{Type: ItemCNAME, Text: string(make([]byte, 256))}}},
		},
	}
	if _, err := sd.Marshal(); err != errSDESTextTooLong {
		t.Fatalf("Marshal: err = %v, want errSDESTextTooLong", err)
	}
}

func TestSourceDescriptionUnknownItemPreserved(t *testing.T) {
	sd := SourceDescription{
		Descriptions: []Description{
			{Source: 1, Items: []Item{{Type: ItemType(99), Text: "opaque"}}},
		},
	}
	data, err := sd.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded SourceDescription
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Descriptions[0].Items[0].Type != ItemType(99) {
		t.Fatalf("Type = %v, want 99", decoded.Descriptions[0].Items[0].Type)
	}
}
