// Copyright 2024 <climacell.com>. All rights reserved.
// Byte-range accounting: every structural element claims its span

package tiff

import "sort"

// ClaimKind says which structural element claimed a byte range.
type ClaimKind uint8

const (
	ClaimHeader ClaimKind = iota + 1
	ClaimDirectory
	ClaimFieldValue
	ClaimStrip
)

var claimKindNames = map[ClaimKind]string{
	ClaimHeader:     "header",
	ClaimDirectory:  "directory",
	ClaimFieldValue: "field value",
	ClaimStrip:      "strip",
}

func (k ClaimKind) String() string {
	if name, ok := claimKindNames[k]; ok {
		return name
	}
	return "unclaimed"
}

// Claim records which structural element owns a byte range. IFD, Tag
// and Strip are meaningful only for the kinds that set them.
type Claim struct {
	Kind  ClaimKind
	IFD   int
	Tag   TagType
	Strip int
}

// RangeSpan is one claimed range: [Start, End) owned by Claim.
type RangeSpan struct {
	Start int64
	End   int64
	Claim Claim
}

// RangeMap is a sorted, non-overlapping interval map over a file's
// byte offsets. Ranges can be inserted but never modified or removed;
// inserting over an existing range is an error. A sentinel [0:0) keeps
// the search arithmetic simple.
type RangeMap struct {
	spans []RangeSpan
}

func NewRangeMap() *RangeMap {
	return &RangeMap{spans: []RangeSpan{{}}}
}

// search returns the largest index whose span starts at or before x,
// looking only at indexes >= lo. The sentinel guarantees a hit.
func (m *RangeMap) search(x int64, lo int) int {
	n := len(m.spans) - lo
	i := sort.Search(n, func(i int) bool {
		return m.spans[lo+i].Start > x
	})
	return lo + i - 1
}

// Insert claims [start, end) for the given claim. It fails with an
// OverlapError if the range is empty, starts at a negative offset, or
// intersects a range already claimed.
func (m *RangeMap) Insert(start, end int64, c Claim) error {
	if start < 0 {
		return &OverlapError{Start: start, End: end, Reason: "negative offset"}
	}
	if start >= end {
		return &OverlapError{Start: start, End: end, Reason: "empty range"}
	}

	i := m.search(start, 0)
	if start >= m.spans[i].End && i >= m.search(end-1, i) {
		// Nothing claimed in [start, end); i is also the exact
		// insertion point that keeps the slice sorted.
		m.spans = append(m.spans, RangeSpan{})
		copy(m.spans[i+2:], m.spans[i+1:])
		m.spans[i+1] = RangeSpan{Start: start, End: end, Claim: c}
		return nil
	}

	return &OverlapError{Start: start, End: end, Reason: "range already claimed"}
}

// Lookup returns the claim covering the given offset, if any.
func (m *RangeMap) Lookup(offset int64) (Claim, bool) {
	if offset < 0 {
		return Claim{}, false
	}
	i := m.search(offset, 0)
	if offset < m.spans[i].End {
		return m.spans[i].Claim, true
	}
	return Claim{}, false
}

// ContainsAny reports whether any byte of [start, end) is claimed.
// This is deliberately an existence test, not a coverage test.
func (m *RangeMap) ContainsAny(start, end int64) bool {
	if start < 0 {
		start = 0
	}
	if start >= end {
		return false
	}
	i := m.search(start, 0)
	if start < m.spans[i].End {
		return true
	}
	return i < m.search(end-1, i)
}

// FirstClaimedAtOrAfter returns the smallest claimed offset >= the
// input, or false if the input is past the end of every known range.
// String recovery uses this to know where the free bytes after an
// unterminated field stop.
func (m *RangeMap) FirstClaimedAtOrAfter(offset int64) (int64, bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= m.Len() {
		return 0, false
	}
	i := m.search(offset, 0)
	if offset < m.spans[i].End {
		return offset, true
	}
	return m.spans[i+1].Start, true
}

// Len returns the end offset of the last claimed range: the length the
// file would have if every byte through the largest claim were filled.
func (m *RangeMap) Len() int64 {
	return m.spans[len(m.spans)-1].End
}

// Spans returns a copy of all claimed ranges in ascending order.
func (m *RangeMap) Spans() []RangeSpan {
	out := make([]RangeSpan, len(m.spans)-1)
	copy(out, m.spans[1:])
	return out
}

// Overlapping returns the claimed ranges intersecting [start, end),
// clipped to that window.
func (m *RangeMap) Overlapping(start, end int64) []RangeSpan {
	if start < 0 {
		start = 0
	}
	var out []RangeSpan
	for _, s := range m.spans[1:] {
		if s.End <= start {
			continue
		}
		if s.Start >= end {
			break
		}
		clipped := s
		if clipped.Start < start {
			clipped.Start = start
		}
		if clipped.End > end {
			clipped.End = end
		}
		out = append(out, clipped)
	}
	return out
}
