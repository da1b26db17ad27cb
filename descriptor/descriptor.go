// Package descriptor defines the service descriptor record and a
// safelist façade with the descriptor decoder bound in. Call sites
// build and consume descriptor lists through this package only, so a
// container declared to carry descriptors can never be decoded with
// another type's strategy.
package descriptor

import (
	"encoding/binary"
	"errors"

	"github.com/quartzbyte/safelist"
	"github.com/quartzbyte/safelist/internal/common"
)

var errTrailingBytes = errors.New("trailing bytes after descriptor")

// Descriptor identifies one remotely registered service implementation.
type Descriptor struct {
	ID        uint32
	Component string
	Locale    string
	Mode      string
	Auxiliary bool
}

type binaryCodec struct{}

// Binary is the canonical wire codec for Descriptor: little-endian ID,
// varint-prefixed strings in field order, one flag byte.
func Binary() safelist.Codec[Descriptor] {
	return binaryCodec{}
}

func (binaryCodec) Encode(d Descriptor) ([]byte, error) {
	buf := make([]byte, 0, 8+len(d.Component)+len(d.Locale)+len(d.Mode))
	buf = binary.LittleEndian.AppendUint32(buf, d.ID)
	buf = common.WriteVarBytes(buf, []byte(d.Component))
	buf = common.WriteVarBytes(buf, []byte(d.Locale))
	buf = common.WriteVarBytes(buf, []byte(d.Mode))
	if d.Auxiliary {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return buf, nil
}

func (binaryCodec) Decode(data []byte) (Descriptor, error) {
	var d Descriptor
	if len(data) < 4 {
		return d, safelist.ErrTruncated
	}
	d.ID = binary.LittleEndian.Uint32(data)
	data = data[4:]
	for _, dst := range []*string{&d.Component, &d.Locale, &d.Mode} {
		p, n := common.ReadVarBytes(data)
		if n == 0 {
			return Descriptor{}, safelist.ErrTruncated
		}
		*dst = string(p)
		data = data[n:]
	}
	if len(data) < 1 {
		return Descriptor{}, safelist.ErrTruncated
	}
	if len(data) > 1 {
		return Descriptor{}, errTrailingBytes
	}
	d.Auxiliary = data[0] != 0
	return d, nil
}
