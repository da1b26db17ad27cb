package safelist

import (
	"github.com/fxamacker/cbor/v2"
)

// FuncCodec adapts a pair of functions into a Codec.
type FuncCodec[T any] struct {
	EncodeFunc func(T) ([]byte, error)
	DecodeFunc func([]byte) (T, error)
}

func (c FuncCodec[T]) Encode(v T) ([]byte, error)    { return c.EncodeFunc(v) }
func (c FuncCodec[T]) Decode(data []byte) (T, error) { return c.DecodeFunc(data) }

// cborEncMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items, so
// the same element always produces identical bytes.
var cborEncMode cbor.EncMode

// cborDecMode accepts standard CBOR with hard limits on nesting and
// container sizes. The blob comes from a peer; limits keep a hostile
// element from claiming huge containers up front.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("safelist: CBOR encoder initialization failed: " + err.Error())
	}
	cborDecMode, err = cbor.DecOptions{
		MaxNestedLevels:  16,
		MaxArrayElements: 1 << 16,
		MaxMapPairs:      1 << 16,
	}.DecMode()
	if err != nil {
		panic("safelist: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborCodec[T any] struct{}

func (cborCodec[T]) Encode(v T) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

func (cborCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := cborDecMode.Unmarshal(data, &v)
	return v, err
}

// CBOR returns a ready-made self-describing Codec for any
// CBOR-marshalable record type. Useful when a record type has no
// hand-written binary form.
func CBOR[T any]() Codec[T] {
	return cborCodec[T]{}
}
