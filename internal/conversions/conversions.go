// Package conversions holds zero copy conversions between string and []byte.
package conversions

import (
	"unsafe"
)

// ByteSlice2String coverts bs to a string. It is no longer safe to modify bs after this.
// This prevents having to make a copy of bs.
func ByteSlice2String(bs []byte) string {
	if len(bs) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(bs), len(bs))
}

// UnsafeGetBytes retrieves the underlying []byte held in string "s" without doing
// a copy. Do not modify the []byte or suffer the consequences.
func UnsafeGetBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
