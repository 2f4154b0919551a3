package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/simplevector/vector"
)

func TestBinary_ExplicitByteMatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, vector.Of[int16](1, -2, 0x0304)))

	expected := []byte{
		'S', 'V', 'E', 'C',
		0x03, 0, 0, 0, 0, 0, 0, 0, // count = 3
		0x01, 0x00, // 1
		0xFE, 0xFF, // -2
		0x04, 0x03, // 0x0304
	}
	assert.Equal(t, expected, buf.Bytes())
}

func TestBinary_RoundTrip(t *testing.T) {
	type celsius float32

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBinary(&buf, vector.New[uint32]()))
		assert.Equal(t, binaryHeaderSize, buf.Len())

		v, err := ReadBinary[uint32](&buf)
		require.NoError(t, err)
		assert.True(t, v.IsEmpty())
	})

	t.Run("multi chunk", func(t *testing.T) {
		src := vector.New[int64]()
		for i := 0; i < 3*chunkBytes/8+5; i++ {
			require.NoError(t, src.PushBack(int64(i*i-7)))
		}
		var buf bytes.Buffer
		require.NoError(t, WriteBinary(&buf, src))
		assert.Equal(t, binaryHeaderSize+8*src.Size(), buf.Len())

		dst, err := ReadBinary[int64](&buf)
		require.NoError(t, err)
		assert.True(t, vector.Equal(src, dst))
	})

	t.Run("named float", func(t *testing.T) {
		src := vector.Of[celsius](-40, 0, 36.6)
		var buf bytes.Buffer
		require.NoError(t, WriteBinary(&buf, src))
		dst, err := ReadBinary[celsius](&buf)
		require.NoError(t, err)
		assert.Equal(t, src.Slice(), dst.Slice())
	})
}

func TestReadBinary_Malformed(t *testing.T) {
	var good bytes.Buffer
	require.NoError(t, WriteBinary(&good, vector.Of[uint16](1, 2, 3)))
	data := good.Bytes()

	cases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"short header", data[:6]},
		{"bad magic", append([]byte("XVEC"), data[4:]...)},
		{"truncated payload", data[:len(data)-1]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadBinary[uint16](bytes.NewReader(tc.input))
			assert.ErrorIs(t, err, ErrBadBinary)
		})
	}

	_, err := ReadBinary[uint16](bytes.NewReader(data[:len(data)-1]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadBinary_HugeCountNeedsData(t *testing.T) {
	hdr := []byte{'S', 'V', 'E', 'C', 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}
	_, err := ReadBinary[int8](bytes.NewReader(hdr))
	assert.ErrorIs(t, err, ErrBadBinary)
}

func BenchmarkWriteBinary(b *testing.B) {
	v, _ := vector.NewFilled[float64](8192, 1.5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = WriteBinary(io.Discard, v)
	}
}
