// Copyright 2024 <climacell.com>. All rights reserved.
// Advisory findings: defects worth reporting but not worth aborting on

package tiff

import "fmt"

// OutOfOrderTagEntry records a directory entry whose tag number is
// lower than an earlier tag in the same directory. The TIFF spec
// requires ascending order, but readers cope fine.
type OutOfOrderTagEntry struct {
	IFD     int
	Tag     TagType
	PrevMax TagType
}

func (e OutOfOrderTagEntry) String() string {
	return fmt.Sprintf("IFD %d: tag %d (%s) after tag %d",
		e.IFD, e.Tag, e.Tag.Name(), e.PrevMax)
}

// UnknownTypeEntry records a directory entry with a type code outside
// 1-12. The entry is skipped; Position is its absolute offset so a
// human can go look.
type UnknownTypeEntry struct {
	IFD      int
	Tag      TagType
	Code     uint16
	Position int64
}

func (e UnknownTypeEntry) String() string {
	return fmt.Sprintf("IFD %d: tag %d (%s) has unknown type code %d%s",
		e.IFD, e.Tag, e.Tag.Name(), e.Code, posSuffix(e.Position))
}

// InvalidStringEntry records an ASCII field with no trailing NUL.
// Confirmed means the recovery pass found a NUL-terminated string in
// the surrounding free bytes that matches the stored value exactly;
// otherwise Suggestions holds the candidates it found instead.
type InvalidStringEntry struct {
	IFD         int
	Tag         TagType
	Confirmed   bool
	Suggestions [][]byte
}

func (e InvalidStringEntry) String() string {
	if e.Confirmed {
		return fmt.Sprintf("IFD %d: tag %d (%s) is an unterminated string (confirmed by recovery)",
			e.IFD, e.Tag, e.Tag.Name())
	}
	return fmt.Sprintf("IFD %d: tag %d (%s) is an unterminated string (%d suggestions)",
		e.IFD, e.Tag, e.Tag.Name(), len(e.Suggestions))
}

// NonIntegerStripEntry records a strip offsets or bytecounts field
// whose decoded values are not unsigned integers, so its strip ranges
// cannot be claimed. Those data bytes stay unaccounted for.
type NonIntegerStripEntry struct {
	IFD      int
	Tag      TagType
	Kind     ValueKind
	Position int64
}

func (e NonIntegerStripEntry) String() string {
	return fmt.Sprintf("IFD %d: tag %d (%s) holds %s, strip ranges left unclaimed%s",
		e.IFD, e.Tag, e.Tag.Name(), e.Kind, posSuffix(e.Position))
}

// Diagnostics collects every advisory finding from a decode. A file
// can be fully decoded and still carry a pile of these.
type Diagnostics struct {
	OutOfOrderTags   []OutOfOrderTagEntry
	UnknownTypes     []UnknownTypeEntry
	InvalidStrings   []InvalidStringEntry
	NonIntegerStrips []NonIntegerStripEntry
}

// Empty reports whether the decode produced no findings at all.
func (d *Diagnostics) Empty() bool {
	return len(d.OutOfOrderTags) == 0 &&
		len(d.UnknownTypes) == 0 &&
		len(d.InvalidStrings) == 0 &&
		len(d.NonIntegerStrips) == 0
}
