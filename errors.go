// Copyright 2024 <climacell.com>. All rights reserved.
// Typed decode errors, each pinned to an absolute file offset

package tiff

import "fmt"

// PositionedError is implemented by every fatal decode error. Position
// is the absolute byte offset at which the violation was detected.
type PositionedError interface {
	error
	Pos() int64
}

func posSuffix(pos int64) string {
	return fmt.Sprintf(" (0x%08x)", pos)
}

// UnknownByteOrderError reports a header that starts with neither "II"
// nor "MM".
type UnknownByteOrderError struct {
	Position int64
	Marker   []byte
}

func (e *UnknownByteOrderError) Error() string {
	return fmt.Sprintf("unknown byte order %q%s", e.Marker, posSuffix(e.Position))
}

func (e *UnknownByteOrderError) Pos() int64 { return e.Position }

// WrongMagicNumberError reports a header whose magic number is not 42.
type WrongMagicNumberError struct {
	Position int64
	Expected uint64
	Found    uint64
}

func (e *WrongMagicNumberError) Error() string {
	return fmt.Sprintf("wrong magic number: expected %d; found %d%s",
		e.Expected, e.Found, posSuffix(e.Position))
}

func (e *WrongMagicNumberError) Pos() int64 { return e.Position }

// FirstIFDOffsetTooLowError reports a first-IFD offset that points
// inside the 8-byte header.
type FirstIFDOffsetTooLowError struct {
	Position int64
	Minimum  int64
	Offset   int64
}

func (e *FirstIFDOffsetTooLowError) Error() string {
	return fmt.Sprintf("first IFD offset must be at least %d; found %d%s",
		e.Minimum, e.Offset, posSuffix(e.Position))
}

func (e *FirstIFDOffsetTooLowError) Pos() int64 { return e.Position }

// EmptyIFDError reports a directory with a zero entry count.
type EmptyIFDError struct {
	Position int64
	IFD      int
}

func (e *EmptyIFDError) Error() string {
	return fmt.Sprintf("IFD %d must have at least one entry%s",
		e.IFD, posSuffix(e.Position))
}

func (e *EmptyIFDError) Pos() int64 { return e.Position }

// DuplicateTagError reports a tag that appears twice within one
// directory.
type DuplicateTagError struct {
	Position int64
	Tag      TagType
	IFD      int
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("tag %d (%s) is already in IFD %d; no duplicates allowed%s",
		e.Tag, e.Tag.Name(), e.IFD, posSuffix(e.Position))
}

func (e *DuplicateTagError) Pos() int64 { return e.Position }

// OffsetsWithoutBytecountsError reports an offset-array tag whose
// bytecount sibling is missing.
type OffsetsWithoutBytecountsError struct {
	Position  int64
	OffsetTag TagType
	CountTag  TagType
}

func (e *OffsetsWithoutBytecountsError) Error() string {
	return fmt.Sprintf("can't have tag %d (%s) without also having tag %d (%s)%s",
		e.OffsetTag, e.OffsetTag.Name(), e.CountTag, e.CountTag.Name(),
		posSuffix(e.Position))
}

func (e *OffsetsWithoutBytecountsError) Pos() int64 { return e.Position }

// OffsetsDontMatchBytecountsError reports offset and bytecount arrays
// of differing lengths.
type OffsetsDontMatchBytecountsError struct {
	Position  int64
	OffsetTag TagType
	CountTag  TagType
	Offsets   int
	Counts    int
}

func (e *OffsetsDontMatchBytecountsError) Error() string {
	return fmt.Sprintf("array lengths must match between tags %d (%s, %d values) and %d (%s, %d values)%s",
		e.OffsetTag, e.OffsetTag.Name(), e.Offsets,
		e.CountTag, e.CountTag.Name(), e.Counts,
		posSuffix(e.Position))
}

func (e *OffsetsDontMatchBytecountsError) Pos() int64 { return e.Position }

// UnexpectedEOFError reports a read that ran past the end of the file.
type UnexpectedEOFError struct {
	Position int64
}

func (e *UnexpectedEOFError) Error() string {
	return "unexpected end of file" + posSuffix(e.Position)
}

func (e *UnexpectedEOFError) Pos() int64 { return e.Position }

// FloatWidthError reports an IEEE-754 field of a width we have no bit
// masks for.
type FloatWidthError struct {
	Position int64
	Width    int
}

func (e *FloatWidthError) Error() string {
	return fmt.Sprintf("don't know how to decode a %d-byte float%s",
		e.Width, posSuffix(e.Position))
}

func (e *FloatWidthError) Pos() int64 { return e.Position }

// OverlapError reports an attempt to claim a byte range that is empty,
// negative, or intersects an already claimed range. This is a logic
// error in the caller, not a malformed file.
type OverlapError struct {
	Start  int64
	End    int64
	Reason string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("can't claim range [%d:%d): %s", e.Start, e.End, e.Reason)
}

// MissingRequiredFieldError reports access to a required tag that has
// neither a stored value nor a default.
type MissingRequiredFieldError struct {
	Tag TagType
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required tag %d (%s) has no value", e.Tag, e.Tag.Name())
}

// TagNotFoundError reports access to an optional tag that has neither
// a stored value nor a default.
type TagNotFoundError struct {
	Tag TagType
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag %d (%s) not found", e.Tag, e.Tag.Name())
}
