package rtcp

import "testing"

func TestExtendedJitterReportRoundTrip(t *testing.T) {
	j := ExtendedJitterReport{Jitters: []uint32{10, 20, 30}}

	data, err := j.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != j.Size() {
		t.Fatalf("Marshal produced %d bytes, Size() = %d", len(data), j.Size())
	}

	var decoded ExtendedJitterReport
	if err := decoded.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Jitters) != 3 {
		t.Fatalf("Jitters = %v", decoded.Jitters)
	}
	for i, want := range j.Jitters {
		if decoded.Jitters[i] != want {
			t.Errorf("Jitters[%d] = %d, want %d", i, decoded.Jitters[i], want)
		}
	}
}

func TestExtendedJitterReportNoSSRC(t *testing.T) {
	j := ExtendedJitterReport{Jitters: []uint32{1}}
	if got := j.DestinationSSRC(); len(got) != 0 {
		t.Errorf("DestinationSSRC() = %v, want empty", got)
	}
}
