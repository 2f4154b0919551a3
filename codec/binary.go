package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/quickwritereader/simplevector/utils"
	"github.com/quickwritereader/simplevector/vector"
)

// Fixed lists the element types the binary stream format can carry.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

var ErrBadBinary = errors.New("codec: malformed binary vector")

const (
	binaryMagic      = "SVEC"
	binaryHeaderSize = len(binaryMagic) + 8
	chunkBytes       = 4096
)

var chunks = utils.NewChunkPool()

// WriteBinary streams v as the magic "SVEC", a little-endian uint64 element
// count, then the elements in little-endian order.
func WriteBinary[T Fixed](w io.Writer, v *vector.Vector[T]) error {
	hdr := chunks.Get(binaryHeaderSize)
	defer chunks.Put(hdr)
	copy(hdr, binaryMagic)
	binary.LittleEndian.PutUint64(hdr[len(binaryMagic):], uint64(v.Size()))
	if _, err := w.Write(hdr); err != nil {
		return err
	}

	var zero T
	per := chunkBytes / binary.Size(zero)
	scratch := chunks.Get(chunkBytes)
	defer chunks.Put(scratch)

	items := v.Slice()
	for len(items) > 0 {
		n := min(per, len(items))
		buf, err := binary.Append(scratch[:0], binary.LittleEndian, items[:n])
		if err != nil {
			return err
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
		items = items[n:]
	}
	return nil
}

// ReadBinary decodes a stream written by WriteBinary. Storage grows with the
// elements actually read, not with the declared count.
func ReadBinary[T Fixed](r io.Reader) (*vector.Vector[T], error) {
	hdr := chunks.Get(binaryHeaderSize)
	defer chunks.Put(hdr)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrBadBinary, err)
	}
	if !bytes.HasPrefix(hdr, []byte(binaryMagic)) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadBinary, hdr[:len(binaryMagic)])
	}
	count := binary.LittleEndian.Uint64(hdr[len(binaryMagic):])
	if count > math.MaxInt {
		return nil, fmt.Errorf("%w: count %d", ErrBadBinary, count)
	}

	var zero T
	size := binary.Size(zero)
	per := chunkBytes / size
	scratch := chunks.Get(chunkBytes)
	defer chunks.Put(scratch)

	v := vector.New[T]()
	for remaining := int(count); remaining > 0; {
		n := min(per, remaining)
		buf := scratch[:n*size]
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: after %d of %d elements: %w", ErrBadBinary, v.Size(), count, err)
		}
		at := v.Size()
		if err := v.Resize(at + n); err != nil {
			return nil, err
		}
		if _, err := binary.Decode(buf, binary.LittleEndian, v.Slice()[at:]); err != nil {
			return nil, err
		}
		remaining -= n
	}
	return v, nil
}
