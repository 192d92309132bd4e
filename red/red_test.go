package red

import "testing"

func TestParseScenario(t *testing.T) {
	// S6: two redundant blocks (PT 73, 74) at offsets 648/652 with
	// lengths 16/8, followed by a primary block of type 7.
	payload := make([]byte, 0, 9+16+8+12)
	payload = append(payload,
		0xc9, 0x0a, 0x20, 0x10, // red header 1: F=1 PT=73 offset=648 len=16
		0xca, 0x0a, 0x30, 0x08, // red header 2: F=1 PT=74 offset=652 len=8
		0x07, // terminal: F=0 PT=7
	)
	red1 := make([]byte, 16)
	for i := range red1 {
		red1[i] = byte(i + 1)
	}
	red2 := make([]byte, 8)
	for i := range red2 {
		red2[i] = byte(0x80 + i)
	}
	primary := []byte("primary-media-block")
	payload = append(payload, red1...)
	payload = append(payload, red2...)
	payload = append(payload, primary...)

	outer := &RTPPacket{
		SequenceNumber: 1000,
		Cycles:         2,
		Timestamp:      90000,
		SSRC:           0xcafe,
		Mark:           true,
		ClockRate:      90000,
		PayloadType:    73,
		Payload:        payload,
	}

	p, err := Parse(outer)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(p.Headers) != 2 {
		t.Fatalf("Headers = %d, want 2", len(p.Headers))
	}
	if p.Headers[0].BlockPT != 73 || p.Headers[0].TSOffset != 648 || p.Headers[0].Length != 16 || p.Headers[0].Skip != 0 {
		t.Fatalf("Headers[0] = %+v", p.Headers[0])
	}
	if p.Headers[1].BlockPT != 74 || p.Headers[1].TSOffset != 652 || p.Headers[1].Length != 8 || p.Headers[1].Skip != 16 {
		t.Fatalf("Headers[1] = %+v", p.Headers[1])
	}
	if p.PrimaryType != 7 {
		t.Fatalf("PrimaryType = %d, want 7", p.PrimaryType)
	}

	wantPrimarySize := len(payload) - 9 - 24
	if got := len(p.PrimaryPayload()); got != wantPrimarySize {
		t.Fatalf("len(PrimaryPayload()) = %d, want %d", got, wantPrimarySize)
	}
	if string(p.PrimaryPayload()) != string(primary) {
		t.Fatalf("PrimaryPayload() = %q, want %q", p.PrimaryPayload(), primary)
	}

	if string(p.RedundantPayload(0)) != string(red1) {
		t.Fatalf("RedundantPayload(0) = %v, want %v", p.RedundantPayload(0), red1)
	}
	if string(p.RedundantPayload(1)) != string(red2) {
		t.Fatalf("RedundantPayload(1) = %v, want %v", p.RedundantPayload(1), red2)
	}

	primaryPacket := p.CreatePrimaryPacket()
	if primaryPacket.SequenceNumber != outer.SequenceNumber || primaryPacket.Cycles != outer.Cycles ||
		primaryPacket.SSRC != outer.SSRC || primaryPacket.Mark != outer.Mark ||
		primaryPacket.ClockRate != outer.ClockRate || primaryPacket.Timestamp != outer.Timestamp {
		t.Fatalf("CreatePrimaryPacket did not clone outer timing/identity: %+v", primaryPacket)
	}
	if primaryPacket.PayloadType != 7 {
		t.Fatalf("PayloadType = %d, want 7", primaryPacket.PayloadType)
	}
	if string(primaryPacket.Payload) != string(primary) {
		t.Fatalf("Payload = %q, want %q", primaryPacket.Payload, primary)
	}
}

func TestParseNoRedundancy(t *testing.T) {
	// A single terminal header with no redundant blocks: just the
	// primary payload.
	payload := append([]byte{0x07}, []byte("just-primary")...)
	outer := &RTPPacket{PayloadType: 7, Payload: payload}

	p, err := Parse(outer)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Headers) != 0 {
		t.Fatalf("Headers = %v, want none", p.Headers)
	}
	if string(p.PrimaryPayload()) != "just-primary" {
		t.Fatalf("PrimaryPayload() = %q", p.PrimaryPayload())
	}
}

func TestParseEmptyPayload(t *testing.T) {
	if _, err := Parse(&RTPPacket{}); err != errEmptyPayload {
		t.Fatalf("Parse: err = %v, want errEmptyPayload", err)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	// F=1 but fewer than 4 bytes follow.
	if _, err := Parse(&RTPPacket{Payload: []byte{0xc9, 0x0a}}); err != errTruncated {
		t.Fatalf("Parse: err = %v, want errTruncated", err)
	}
}
