// Package safelist carries ordered sequences of records across a
// process boundary as a single opaque blob. The sequence is flattened
// at construction time and materialized at most once: extraction
// decodes the blob and clears it, so a second extraction observes an
// empty list. Sending one untyped blob instead of a typed list keeps
// transports with per-element payload accounting happy and removes the
// type-confusion surface of letting a peer pick the decoder for a
// declared element type.
package safelist

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/quartzbyte/safelist/internal/common"
)

var (
	ErrTruncated = errors.New("truncated blob")
	ErrOversize  = errors.New("declared length exceeds remaining blob")
)

// Codec converts one element to and from its binary form. Decode must
// treat its input as hostile: bounds-check every read and never
// allocate proportional to an unvalidated length field.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// List holds either a not-yet-decoded blob or nothing. It never holds
// decoded elements; the only way to get T values back out is Extract.
// The zero value is an empty list.
type List[T any] struct {
	mu  sync.Mutex
	buf []byte
}

// New encodes items into a fresh List. A nil or empty slice produces a
// list with no blob, indistinguishable from an already-consumed one.
// The input slice is not retained.
//
// Encoding an in-memory element is expected to always succeed; a codec
// that fails here is a programming error and New panics.
func New[T any](items []T, codec Codec[T]) *List[T] {
	l := &List[T]{}
	if len(items) == 0 {
		return l
	}
	buf := common.WriteVarUint(nil, uint64(len(items)))
	for i := range items {
		enc, err := codec.Encode(items[i])
		if err != nil {
			panic(fmt.Sprintf("safelist: encode element %d: %v", i, err))
		}
		buf = common.WriteVarBytes(buf, enc)
	}
	l.buf = buf
	return l
}

// FromBlob wraps bytes received from a peer without interpreting them.
// A nil blob is valid and yields an empty list on extraction. Validity
// of non-nil bytes is deferred until Extract.
func FromBlob[T any](blob []byte) *List[T] {
	return &List[T]{buf: blob}
}

// Blob returns the marshalled form for transmission, or nil when the
// list is empty or already consumed. The blob is the container's only
// observable serialized state. The returned slice is a copy; mutating
// it cannot corrupt what a later Extract decodes.
func (l *List[T]) Blob() []byte {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return bytes.Clone(l.buf)
}

// Extract decodes the blob held by from and clears it in the same
// step, so concurrent extractions can never both see data. It is a
// free function because from itself may be nil.
//
// Every degenerate input maps to an empty non-nil slice: nil container,
// consumed container, absent blob, malformed or truncated blob. Callers
// never see an error from this path; garbage from a peer reads the same
// as an empty payload.
func Extract[T any](from *List[T], codec Codec[T]) []T {
	if from == nil {
		return []T{}
	}
	from.mu.Lock()
	buf := from.buf
	from.buf = nil
	from.mu.Unlock()
	if buf == nil {
		return []T{}
	}
	items, err := decodeBlob(buf, codec)
	if err != nil {
		return []T{}
	}
	return items
}

func decodeBlob[T any](data []byte, codec Codec[T]) ([]T, error) {
	count, n := common.ReadVarUint(data)
	if n == 0 {
		return nil, ErrTruncated
	}
	data = data[n:]
	// Cap the initial allocation by what the blob could possibly hold:
	// every element costs at least its one-byte length prefix. A hostile
	// count field buys nothing past that.
	hint := count
	if hint > uint64(len(data)) {
		hint = uint64(len(data))
	}
	out := make([]T, 0, hint)
	for i := uint64(0); i < count; i++ {
		enc, n := common.ReadVarBytes(data)
		if n == 0 {
			return nil, ErrOversize
		}
		v, err := codec.Decode(enc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		data = data[n:]
	}
	return out, nil
}
