// Package blobwire frames opaque blobs for transport. A frame is the
// entire on-wire representation of a safelist container: either one
// length-delimited payload or an explicit absent marker. Framing is
// integrity-checked with a CRC-32 trailer; payloads may be zstd
// compressed.
//
// Frame layout:
//
//	magic   [2]byte
//	type    byte    (TypeBlob | TypeAbsent)
//	length  uint32  little-endian, total frame size including CRC
//	flags   byte
//	payload ...     (TypeBlob only)
//	crc     uint32  little-endian, CRC-32 (IEEE) over type..payload
package blobwire

import (
	"errors"

	"github.com/klauspost/compress/zstd"
)

const (
	magic0 = 0xB7
	magic1 = 0x5E
)

// headerSize covers magic, type, length and flags; trailerSize the CRC.
const (
	headerSize  = 8
	trailerSize = 4
)

const (
	TypeBlob   byte = 0x01
	TypeAbsent byte = 0x02
)

// FlagCompressed marks a zstd-compressed payload.
const FlagCompressed byte = 0x01

var (
	ErrBadMagic       = errors.New("blobwire: bad magic")
	ErrBadFrameType   = errors.New("blobwire: unknown frame type")
	ErrLengthMismatch = errors.New("blobwire: length mismatch")
	ErrCRCMismatch    = errors.New("blobwire: crc mismatch")
	ErrFrameTooLarge  = errors.New("blobwire: frame exceeds size limit")
	ErrTruncated      = errors.New("blobwire: truncated frame")
	ErrAbsentPayload  = errors.New("blobwire: absent frame carries payload")
)

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic("blobwire: zstd encoder init: " + err.Error())
	}
	// Cap decoder memory so a hostile frame cannot claim an arbitrary
	// window; payloads are further bounded by the frame size limit.
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(64<<20))
	if err != nil {
		panic("blobwire: zstd decoder init: " + err.Error())
	}
}
