package blobwire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// DecodeBlob validates a complete frame and returns the carried blob.
// An absent marker frame decodes to a nil blob. The frame is untrusted:
// magic, declared length, type and CRC are all checked before the
// payload is touched, and a compressed payload is decompressed under
// the decoder's memory cap.
func DecodeBlob(frame []byte) ([]byte, error) {
	if len(frame) < headerSize+trailerSize {
		return nil, ErrTruncated
	}
	if frame[0] != magic0 || frame[1] != magic1 {
		return nil, ErrBadMagic
	}
	typ := frame[2]
	if length := binary.LittleEndian.Uint32(frame[3:]); length != uint32(len(frame)) {
		return nil, ErrLengthMismatch
	}
	body := frame[2 : len(frame)-trailerSize]
	want := binary.LittleEndian.Uint32(frame[len(frame)-trailerSize:])
	if crc32.ChecksumIEEE(body) != want {
		return nil, ErrCRCMismatch
	}
	flags := frame[7]
	payload := frame[headerSize : len(frame)-trailerSize]
	switch typ {
	case TypeAbsent:
		if len(payload) != 0 {
			return nil, ErrAbsentPayload
		}
		return nil, nil
	case TypeBlob:
		if flags&FlagCompressed != 0 {
			blob, err := zstdDecoder.DecodeAll(payload, nil)
			if err != nil {
				return nil, fmt.Errorf("blobwire: decompress payload: %w", err)
			}
			return blob, nil
		}
		// Copy so the blob does not alias the frame buffer.
		return append([]byte{}, payload...), nil
	default:
		return nil, ErrBadFrameType
	}
}

// ReadBlob reads one frame from r and decodes it. maxSize bounds the
// declared frame length before any payload allocation happens; frames
// claiming more are rejected without reading further.
func ReadBlob(r io.Reader, maxSize uint32) ([]byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("blobwire: read header: %w", err)
	}
	if header[0] != magic0 || header[1] != magic1 {
		return nil, ErrBadMagic
	}
	length := binary.LittleEndian.Uint32(header[3:])
	if length > maxSize {
		return nil, ErrFrameTooLarge
	}
	if length < headerSize+trailerSize {
		return nil, ErrLengthMismatch
	}
	frame := make([]byte, length)
	copy(frame, header)
	if _, err := io.ReadFull(r, frame[headerSize:]); err != nil {
		return nil, fmt.Errorf("blobwire: read frame body: %w", err)
	}
	return DecodeBlob(frame)
}
