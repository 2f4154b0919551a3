package utils

import (
	"math/bits"
	"sync"
)

const (
	minChunkShift = 6  // 64 B
	maxChunkShift = 16 // 64 KiB
	numChunkClass = maxChunkShift - minChunkShift + 1
)

// ChunkClass returns the size class holding n bytes, or -1 when n is not
// poolable.
func ChunkClass(n int) int {
	if n <= 0 || n > 1<<maxChunkShift {
		return -1
	}
	shift := bits.Len(uint(n - 1))
	if shift < minChunkShift {
		return 0
	}
	return shift - minChunkShift
}

// ChunkSize is the byte size of class.
func ChunkSize(class int) int {
	return 1 << (class + minChunkShift)
}

// ChunkPool recycles scratch byte chunks in power-of-two size classes from
// 64 B to 64 KiB. Requests outside that range are served by make and never
// retained.
type ChunkPool struct {
	pools [numChunkClass]sync.Pool
}

func NewChunkPool() *ChunkPool {
	var cp ChunkPool
	for i := range cp.pools {
		size := ChunkSize(i)
		cp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &cp
}

// Get returns a chunk of length n. Its contents are unspecified.
func (cp *ChunkPool) Get(n int) []byte {
	class := ChunkClass(n)
	if class < 0 {
		return make([]byte, n)
	}
	p := cp.pools[class].Get().(*[]byte)
	return (*p)[:n]
}

// GetZeroed is Get with the chunk cleared.
func (cp *ChunkPool) GetZeroed(n int) []byte {
	buf := cp.Get(n)
	clear(buf)
	return buf
}

// Put hands a chunk back. Chunks whose capacity is not an exact class size
// are dropped.
func (cp *ChunkPool) Put(buf []byte) {
	c := cap(buf)
	class := ChunkClass(c)
	if class < 0 || ChunkSize(class) != c {
		return
	}
	buf = buf[:c]
	cp.pools[class].Put(&buf)
}
