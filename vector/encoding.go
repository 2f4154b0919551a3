package vector

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
)

// decodeReserveLimit caps how many slots a decoder reserves from a length
// prefix it has not yet seen data for.
const decodeReserveLimit = 1024

var (
	_ json.Marshaler        = (*Vector[int])(nil)
	_ json.Unmarshaler      = (*Vector[int])(nil)
	_ msgpack.CustomEncoder = (*Vector[int])(nil)
	_ msgpack.CustomDecoder = (*Vector[int])(nil)
)

// MarshalJSON encodes the live elements as a JSON array.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.size == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Slice())
}

// UnmarshalJSON replaces the contents with the decoded array. null decodes to
// an empty vector. On error the receiver is unchanged.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.MoveAssign(New[T]())
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	tmp, err := of(items)
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.release()
	return nil
}

// EncodeMsgpack writes the live elements as a msgpack array.
func (v *Vector[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(v.size); err != nil {
		return err
	}
	for _, x := range v.Slice() {
		if err := enc.Encode(x); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack replaces the contents with the decoded array. A nil array
// decodes to an empty vector. On error the receiver is unchanged.
func (v *Vector[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		v.MoveAssign(New[T]())
		return nil
	}
	tmp, err := NewReserved[T](Reserve(min(n, decodeReserveLimit)))
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		var x T
		if err := dec.Decode(&x); err != nil {
			return err
		}
		if err := tmp.PushBack(x); err != nil {
			return err
		}
	}
	v.Swap(tmp)
	tmp.release()
	return nil
}
