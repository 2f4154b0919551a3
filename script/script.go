// Package script replays a TOML list of container operations against a
// vector.Vector[int64].
package script

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/quickwritereader/simplevector/codec"
	"github.com/quickwritereader/simplevector/logutil"
	"github.com/quickwritereader/simplevector/vector"
)

// Op kinds.
const (
	OpPushBack = "push-back"
	OpPopBack  = "pop-back"
	OpInsert   = "insert"
	OpErase    = "erase"
	OpResize   = "resize"
	OpReserve  = "reserve"
	OpClear    = "clear"
	OpAt       = "at"
	OpSet      = "set"
)

// BinaryCodec names the fixed-width stream format, which is not a
// codec.Codec because it only carries numeric vectors.
const BinaryCodec = "binary"

// DefaultMaxCount bounds resize and reserve counts when a script sets no
// max-count of its own.
const DefaultMaxCount = 1 << 24

var (
	ErrUnknownOp = errors.New("script: unknown op")
	ErrBadIndex  = errors.New("script: index out of range")
	ErrBadCount  = errors.New("script: count out of range")
)

// Op is one step. Index is used by insert, erase, at and set; Value by
// push-back, insert and set; Count by resize and reserve.
type Op struct {
	Kind  string `toml:"kind"`
	Index int    `toml:"index"`
	Value int64  `toml:"value"`
	Count int    `toml:"count"`
}

// Script is a decoded op script. MaxCount limits resize and reserve counts;
// zero means DefaultMaxCount.
type Script struct {
	Codec    string            `toml:"codec"`
	MaxCount int               `toml:"max-count"`
	Log      logutil.LogConfig `toml:"log"`
	Ops      []Op              `toml:"op"`
}

// Load reads a script from a TOML file.
func Load(path string) (*Script, error) {
	var s Script
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s.setDefaults()
	return &s, nil
}

// Parse reads a script from TOML text.
func Parse(data string) (*Script, error) {
	var s Script
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	s.setDefaults()
	return &s, nil
}

func (s *Script) setDefaults() {
	if s.Codec == "" {
		s.Codec = codec.JSON.Name()
	}
}

// Run applies every op in order to a fresh vector. Positions and counts are
// validated first, so a bad script fails with an error rather than a
// contract violation or an oversized allocation.
func (s *Script) Run() (*vector.Vector[int64], error) {
	limit := s.MaxCount
	if limit <= 0 {
		limit = DefaultMaxCount
	}
	v := vector.New[int64]()
	for i, op := range s.Ops {
		if err := apply(v, op, limit); err != nil {
			return v, fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
		if ce := logutil.Check(zap.DebugLevel, "script op applied"); ce != nil {
			ce.Write(
				zap.Int("step", i),
				zap.String("kind", op.Kind),
				zap.Int("size", v.Size()),
				zap.Int("capacity", v.Capacity()),
			)
		}
	}
	return v, nil
}

func apply(v *vector.Vector[int64], op Op, limit int) error {
	switch op.Kind {
	case OpPushBack:
		return v.PushBack(op.Value)
	case OpPopBack:
		v.PopBack()
	case OpInsert:
		if op.Index < 0 || op.Index > v.Size() {
			return fmt.Errorf("%w: insert at %d, size %d", ErrBadIndex, op.Index, v.Size())
		}
		_, err := v.Insert(op.Index, op.Value)
		return err
	case OpErase:
		if op.Index < 0 || op.Index >= v.Size() {
			return fmt.Errorf("%w: erase at %d, size %d", ErrBadIndex, op.Index, v.Size())
		}
		v.Erase(op.Index)
	case OpResize:
		if op.Count > limit {
			return fmt.Errorf("%w: resize to %d, limit %d", ErrBadCount, op.Count, limit)
		}
		return v.Resize(op.Count)
	case OpReserve:
		if op.Count > limit {
			return fmt.Errorf("%w: reserve %d, limit %d", ErrBadCount, op.Count, limit)
		}
		return v.Reserve(op.Count)
	case OpClear:
		v.Clear()
	case OpAt:
		_, err := v.At(op.Index)
		return err
	case OpSet:
		p, err := v.AtRef(op.Index)
		if err != nil {
			return err
		}
		*p = op.Value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Kind)
	}
	return nil
}

// Encode renders v with the named codec. Binary output is hex encoded so it
// stays printable.
func Encode(name string, v *vector.Vector[int64]) (string, error) {
	if name == BinaryCodec {
		var buf bytes.Buffer
		if err := codec.WriteBinary(&buf, v); err != nil {
			return "", err
		}
		return hex.EncodeToString(buf.Bytes()), nil
	}
	c, err := codec.Lookup(name)
	if err != nil {
		return "", err
	}
	data, err := c.Marshal(v)
	if err != nil {
		return "", err
	}
	if name == codec.MsgPack.Name() {
		return hex.EncodeToString(data), nil
	}
	return string(data), nil
}
