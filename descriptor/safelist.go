package descriptor

import (
	"github.com/quartzbyte/safelist"
)

// SafeList is the consume-once blob carrier for Descriptor sequences.
type SafeList = safelist.List[Descriptor]

// NewSafeList flattens list into a SafeList. A nil or empty list is
// fine and yields an empty extraction.
func NewSafeList(list []Descriptor) *SafeList {
	return safelist.New(list, Binary())
}

// SafeListFromBlob reconstructs a SafeList from bytes received over
// the boundary. The bytes are not validated here; extraction decides.
func SafeListFromBlob(blob []byte) *SafeList {
	return safelist.FromBlob[Descriptor](blob)
}

// ExtractFrom decodes and consumes from. Each returned Descriptor is
// an independent copy of the original; any subsequent call returns an
// empty list.
func ExtractFrom(from *SafeList) []Descriptor {
	return safelist.Extract(from, Binary())
}
