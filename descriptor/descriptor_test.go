package descriptor

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Descriptor{
	{ID: 1, Component: "com.vendor.ime/.LatinService", Locale: "en_US", Mode: "keyboard"},
	{ID: 2, Component: "com.vendor.ime/.VoiceService", Locale: "en_US", Mode: "voice", Auxiliary: true},
	{ID: 3, Component: "com.vendor.ime/.HandwritingService", Locale: "ja_JP", Mode: "handwriting"},
}

func TestSafeListRoundTrip(t *testing.T) {
	l := NewSafeList(sample)
	blob := l.Blob()
	require.NotNil(t, blob)
	got := ExtractFrom(l)
	require.Equal(t, sample, got)
	require.Empty(t, ExtractFrom(l))
}

func TestSafeListFromBlob(t *testing.T) {
	two := sample[:2]
	blob := NewSafeList(two).Blob()
	l := SafeListFromBlob(blob)
	got := ExtractFrom(l)
	require.Len(t, got, 2)
	require.Equal(t, "com.vendor.ime/.LatinService", got[0].Component)
	require.True(t, got[1].Auxiliary)
	require.Nil(t, l.Blob())
}

func TestSafeListNilInputs(t *testing.T) {
	require.Empty(t, ExtractFrom(nil))
	require.Empty(t, ExtractFrom(NewSafeList(nil)))
	require.Empty(t, ExtractFrom(SafeListFromBlob(nil)))
}

func TestSafeListAdversarialBlob(t *testing.T) {
	blobs := [][]byte{
		{0xFF},
		{0x03, 0x00},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F},
		[]byte("not a safelist blob at all"),
	}
	for _, blob := range blobs {
		out := ExtractFrom(SafeListFromBlob(blob))
		require.NotNil(t, out)
		require.Empty(t, out)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	c := Binary()
	condition := func(d Descriptor) bool {
		enc, err := c.Encode(d)
		require.NoError(t, err)
		got, err := c.Decode(enc)
		require.NoError(t, err)
		return assert.ObjectsAreEqual(d, got)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestCodecTrailingBytes(t *testing.T) {
	c := Binary()
	enc, err := c.Encode(sample[0])
	require.NoError(t, err)
	_, err = c.Decode(append(enc, 0xAA))
	require.Error(t, err)
	// A whole list whose element carries a garbage suffix reads as empty.
	blob := []byte{0x01}
	blob = append(blob, byte(len(enc)+1))
	blob = append(blob, enc...)
	blob = append(blob, 0xAA)
	require.Empty(t, ExtractFrom(SafeListFromBlob(blob)))
}

func TestCodecTruncated(t *testing.T) {
	c := Binary()
	enc, err := c.Encode(sample[0])
	require.NoError(t, err)
	for i := range enc {
		_, err := c.Decode(enc[:i])
		require.Error(t, err, "prefix length %d", i)
	}
}
