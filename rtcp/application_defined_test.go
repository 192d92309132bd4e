package rtcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationDefinedRoundTrip(t *testing.T) {
	a := ApplicationDefined{
		Subtype: 5,
		SSRC:    0xdeadbeef,
		Name:    [4]byte{'T', 'E', 'S', 'T'},
		Data:    []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}

	data, err := a.Marshal()
	require.NoError(t, err)
	require.Len(t, data, a.Size())

	var decoded ApplicationDefined
	require.NoError(t, decoded.Unmarshal(data))
	require.Equal(t, a.Subtype, decoded.Subtype)
	require.Equal(t, a.SSRC, decoded.SSRC)
	require.Equal(t, a.Name, decoded.Name)
	require.Equal(t, a.Data, decoded.Data)
}

func TestApplicationDefinedRejectsUnalignedData(t *testing.T) {
	a := ApplicationDefined{Data: []byte{1, 2, 3}}
	_, err := a.Marshal()
	require.Equal(t, errInconsistentLength, err)
}
