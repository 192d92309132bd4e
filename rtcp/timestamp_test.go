package rtcp

import "testing"

func TestNTPTimestampRoundTrip(t *testing.T) {
	for _, test := range []struct {
		Sec  int64
		Usec uint32
	}{
		{0, 0},
		{1700000000, 123456},
		{1, 999999},
		{1893456000, 1},
	} {
		var sr SenderReport
		sr.SetTimestamp(test.Sec, test.Usec)

		gotSec, gotUsec := sr.GetTimestamp()
		if gotSec != test.Sec {
			t.Errorf("SetTimestamp(%d, %d): seconds = %d, want %d", test.Sec, test.Usec, gotSec, test.Sec)
		}

		diff := int64(gotUsec) - int64(test.Usec)
		if diff < -1 || diff > 1 {
			t.Errorf("SetTimestamp(%d, %d): microseconds = %d, want within 1 of %d", test.Sec, test.Usec, gotUsec, test.Usec)
		}
	}
}
