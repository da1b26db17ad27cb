package common

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestVarUintRoundTrip(t *testing.T) {
	condition := func(x uint64) bool {
		buf := WriteVarUint(nil, x)
		got, n := ReadVarUint(buf)
		return n == len(buf) && got == x
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestVarUintMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":           {},
		"all continue":    {0x80, 0x80, 0x80},
		"eleven bytes":    {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01},
		"uint64 overflow": {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F},
	}
	for name, b := range cases {
		_, n := ReadVarUint(b)
		require.Zero(t, n, name)
	}
}

func TestVarUintMaxValue(t *testing.T) {
	buf := WriteVarUint(nil, ^uint64(0))
	require.Len(t, buf, MaxVarintLen)
	got, n := ReadVarUint(buf)
	require.Equal(t, MaxVarintLen, n)
	require.Equal(t, ^uint64(0), got)
}

func TestVarBytesRoundTrip(t *testing.T) {
	payloads := [][]byte{nil, {}, {0x00}, []byte("hello world")}
	for _, p := range payloads {
		buf := WriteVarBytes(nil, p)
		got, n := ReadVarBytes(buf)
		require.Equal(t, len(buf), n)
		require.Equal(t, len(p), len(got))
	}
}

func TestVarBytesTruncated(t *testing.T) {
	buf := WriteVarBytes(nil, []byte("abcdef"))
	for i := range buf {
		_, n := ReadVarBytes(buf[:i])
		require.Zero(t, n, "prefix length %d", i)
	}
}

func TestVarBytesClippedCapacity(t *testing.T) {
	buf := WriteVarBytes(nil, []byte("abc"))
	buf = append(buf, 0xAA, 0xBB)
	got, n := ReadVarBytes(buf)
	require.Equal(t, 4, n)
	require.Equal(t, len(got), cap(got))
}
