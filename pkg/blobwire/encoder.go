package blobwire

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// EncodeBlob builds a frame around blob. A nil blob becomes an absent
// marker frame; any non-nil blob (including empty) becomes a payload
// frame. With compress set, the payload is zstd-compressed when that
// actually shrinks it.
func EncodeBlob(blob []byte, compress bool) []byte {
	if blob == nil {
		return encodeFrame(TypeAbsent, 0, nil)
	}
	var flags byte
	payload := blob
	if compress {
		if c := zstdEncoder.EncodeAll(blob, make([]byte, 0, len(blob))); len(c) < len(blob) {
			payload = c
			flags |= FlagCompressed
		}
	}
	return encodeFrame(TypeBlob, flags, payload)
}

func encodeFrame(typ byte, flags byte, payload []byte) []byte {
	total := headerSize + len(payload) + trailerSize
	out := make([]byte, 0, total)
	out = append(out, magic0, magic1, typ)
	out = binary.LittleEndian.AppendUint32(out, uint32(total))
	out = append(out, flags)
	out = append(out, payload...)
	crc := crc32.ChecksumIEEE(out[2:])
	return binary.LittleEndian.AppendUint32(out, crc)
}

// WriteBlob frames blob and writes it to w in one call.
func WriteBlob(w io.Writer, blob []byte, compress bool) error {
	_, err := w.Write(EncodeBlob(blob, compress))
	return err
}
