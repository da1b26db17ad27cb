package common

// MaxVarintLen is the longest legal encoding of a uint64 varint.
const MaxVarintLen = 10

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// A return of 0 consumed bytes means b is truncated, longer than
// MaxVarintLen, or overflows uint64. Input is untrusted; callers must
// check the consumed count before using the value.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		if i == MaxVarintLen {
			return 0, 0
		}
		if c < 0x80 {
			if i == MaxVarintLen-1 && c > 1 {
				return 0, 0 // would overflow uint64
			}
			return x | uint64(c)<<s, i + 1
		}
		x |= uint64(c&0x7F) << s
		s += 7
	}
	return 0, 0
}

// WriteVarBytes appends a varint length prefix followed by p.
func WriteVarBytes(buf []byte, p []byte) []byte {
	buf = WriteVarUint(buf, uint64(len(p)))
	return append(buf, p...)
}

// ReadVarBytes decodes a length-prefixed byte run from b, returning the
// payload (a subslice of b with clipped capacity) and total bytes
// consumed. Returns 0 consumed bytes when the prefix is malformed or
// the declared length exceeds the remaining input.
func ReadVarBytes(b []byte) ([]byte, int) {
	size, n := ReadVarUint(b)
	if n == 0 {
		return nil, 0
	}
	rest := b[n:]
	if size > uint64(len(rest)) {
		return nil, 0
	}
	end := n + int(size)
	return b[n:end:end], end
}
