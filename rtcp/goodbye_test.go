package rtcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoodbyeParseReasonScenario(t *testing.T) {
	// BYE with one source and a zero-padded reason string: ssrc(4) +
	// len(1) + "Hello"(5), padded to a 4-byte boundary (2 bytes), for a
	// 12-byte body and length word (16/4)-1 = 3.
	data := []byte{
		0x81, 0xcb, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x05, 0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x00, 0x00,
	}

	var g Goodbye
	require.NoError(t, g.Unmarshal(data))
	require.Equal(t, []uint32{1}, g.Sources)
	require.Equal(t, "Hello", g.Reason)
}

func TestGoodbyeRoundTrip(t *testing.T) {
	for _, test := range []struct {
		Name string
		G    Goodbye
	}{
		{"no reason", Goodbye{Sources: []uint32{1, 2, 3}}},
		{"with reason", Goodbye{Sources: []uint32{42}, Reason: "session ended"}},
		{"empty", Goodbye{}},
	} {
		t.Run(test.Name, func(t *testing.T) {
			data, err := test.G.Marshal()
			require.NoError(t, err)
			require.Equal(t, test.G.Size(), len(data))
			require.Zero(t, len(data)%4)

			var decoded Goodbye
			require.NoError(t, decoded.Unmarshal(data))
			require.Equal(t, test.G.Reason, decoded.Reason)
			require.ElementsMatch(t, test.G.Sources, decoded.Sources)
		})
	}
}

func TestGoodbyeReasonTooLong(t *testing.T) {
	g := Goodbye{Reason: string(make([]byte, 256))}
	_, err := g.Marshal()
	require.Equal(t, errReasonTooLong, err)
}
