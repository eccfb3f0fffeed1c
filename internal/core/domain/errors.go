package domain

import "go.trai.ch/zerr"

var (
	// ErrIndexOutOfRange is returned when a code unit index falls outside
	// [0, Len()).
	ErrIndexOutOfRange = zerr.New("string index out of range")

	// ErrInvalidSliceRange is returned when a slice range violates
	// 0 <= start <= end <= Len().
	ErrInvalidSliceRange = zerr.New("invalid string slice range")
)
