// Package codec names the wire encodings a Vector can be written in.
package codec

import (
	"errors"
	"fmt"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/simplevector/utils"
)

var ErrUnknownCodec = errors.New("codec: unknown codec")

// Codec marshals arbitrary values. Vectors take part through their
// MarshalJSON/UnmarshalJSON and EncodeMsgpack/DecodeMsgpack methods.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return goccyjson.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return goccyjson.Unmarshal(data, v) }

type jsoniterCodec struct {
	api jsoniter.API
}

func (jsoniterCodec) Name() string                         { return "jsoniter" }
func (c jsoniterCodec) Marshal(v any) ([]byte, error)      { return c.api.Marshal(v) }
func (c jsoniterCodec) Unmarshal(data []byte, v any) error { return c.api.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

var (
	JSON     Codec = jsonCodec{}
	JSONIter Codec = jsoniterCodec{api: jsoniter.ConfigCompatibleWithStandardLibrary}
	MsgPack  Codec = msgpackCodec{}
)

var registry = map[string]Codec{
	JSON.Name():     JSON,
	JSONIter.Name(): JSONIter,
	MsgPack.Name():  MsgPack,
}

// Lookup finds a codec by name.
func Lookup(name string) (Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// Names lists the registered codecs in sorted order.
func Names() []string {
	return utils.SortKeys(registry)
}
