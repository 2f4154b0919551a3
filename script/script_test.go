package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/simplevector/codec"
	"github.com/quickwritereader/simplevector/vector"
)

const scenario = `
codec = "json"

[log]
level = "debug"
format = "console"

[[op]]
kind = "push-back"
value = 1

[[op]]
kind = "push-back"
value = 2

[[op]]
kind = "push-back"
value = 3

[[op]]
kind = "insert"
index = 1
value = 9

[[op]]
kind = "erase"
index = 2
`

func TestParseAndRun(t *testing.T) {
	s, err := Parse(scenario)
	require.NoError(t, err)
	assert.Equal(t, "json", s.Codec)
	assert.Equal(t, "debug", s.Log.Level)
	require.Len(t, s.Ops, 5)
	assert.Equal(t, Op{Kind: OpInsert, Index: 1, Value: 9}, s.Ops[3])

	v, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 9, 3}, v.Slice())

	out, err := Encode(s.Codec, v)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,9,3]`, out)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[op]]
kind = "resize"
count = 3

[[op]]
kind = "set"
index = 2
value = 7

[[op]]
kind = "reserve"
count = 10

[[op]]
kind = "pop-back"
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, codec.JSON.Name(), s.Codec, "codec defaults to json")

	v, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, v.Slice())
	assert.Equal(t, 10, v.Capacity())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name   string
		ops    []Op
		target error
	}{
		{"unknown op", []Op{{Kind: "shuffle"}}, ErrUnknownOp},
		{"insert past end", []Op{{Kind: OpInsert, Index: 1}}, ErrBadIndex},
		{"erase empty", []Op{{Kind: OpErase}}, ErrBadIndex},
		{"at past end", []Op{{Kind: OpPushBack}, {Kind: OpAt, Index: 1}}, vector.ErrOutOfRange},
		{"set past end", []Op{{Kind: OpSet, Index: 0}}, vector.ErrOutOfRange},
		{"negative resize", []Op{{Kind: OpResize, Count: -1}}, vector.ErrNegativeSize},
		{"huge resize", []Op{{Kind: OpResize, Count: 1 << 40}}, ErrBadCount},
		{"huge reserve", []Op{{Kind: OpReserve, Count: DefaultMaxCount + 1}}, ErrBadCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Script{Ops: tc.ops}
			_, err := s.Run()
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestRun_MaxCount(t *testing.T) {
	s, err := Parse(`
max-count = 4

[[op]]
kind = "reserve"
count = 4

[[op]]
kind = "resize"
count = 5
`)
	require.NoError(t, err)
	assert.Equal(t, 4, s.MaxCount)

	v, err := s.Run()
	require.ErrorIs(t, err, ErrBadCount)
	assert.Contains(t, err.Error(), "op 1 (resize)")
	assert.Equal(t, 4, v.Capacity())
	assert.True(t, v.IsEmpty())
}

func TestRun_ClearAndAt(t *testing.T) {
	s := &Script{Ops: []Op{
		{Kind: OpPushBack, Value: 4},
		{Kind: OpAt, Index: 0},
		{Kind: OpClear},
		{Kind: OpPushBack, Value: 5},
	}}
	v, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, v.Slice())
	assert.Equal(t, 1, v.Capacity())
}

func TestEncode(t *testing.T) {
	v := vector.Of[int64](1, 2)

	out, err := Encode("jsoniter", v)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, out)

	out, err = Encode("msgpack", v)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "92"), "fixarray of two, got %s", out)

	out, err = Encode(BinaryCodec, v)
	require.NoError(t, err)
	assert.Equal(t, "53564543"+"0200000000000000"+"0100000000000000"+"0200000000000000", out)

	_, err = Encode("yaml", v)
	assert.ErrorIs(t, err, codec.ErrUnknownCodec)
}
