// Copyright 2024 <climacell.com>. All rights reserved.
// Forensic TIFF reader: decodes the IFD chain while accounting for
// every byte the structure claims

package tiff

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/climacell/go-middleware/backbone"
	"github.com/pkg/errors"
)

// Maximum allowed memory allocation per IFD entry (10MB) - circuit breaker
const MaxIFDEntrySize = 10 * 1024 * 1024

// Maximum IFDs in a chain before we assume a cycle or corruption
const MaxIFDCount = 1000

const HeaderSize = 8
const MagicNumber = 42

// Fields up to this many bytes are stored inline in the entry itself.
const inlineValueSize = 4

const directoryEntrySize = 12

// stripTagPairs are the tag pairs known to hold parallel offset and
// bytecount arrays. Each pair claims one byte range per array element.
var stripTagPairs = [][2]TagType{
	{TagType_StripOffsets, TagType_StripByteCounts},
	{TagType_FreeOffsets, TagType_FreeByteCounts},
	{TagType_TileOffsets, TagType_TileByteCounts},
}

// Header is the 8-byte TIFF header.
type Header struct {
	ByteOrder binary.ByteOrder
	FirstIFD  int64
}

// ReaderConfig controls the behavior of the reader
type ReaderConfig struct {
	MaxIFDEntrySize int64     // Maximum allowed IFD entry size (circuit breaker)
	MaxIFDCount     int       // Maximum IFD chain length (circuit breaker)
	EnableMetrics   bool      // Whether to report I/O metrics
	RequiredTags    []TagType // Extra required tags for every decoded IFD
}

// ReaderOption configures the reader
type ReaderOption func(*ReaderConfig)

// WithMaxIFDEntrySize sets the maximum allowed IFD entry size (circuit breaker)
func WithMaxIFDEntrySize(size int64) ReaderOption {
	return func(c *ReaderConfig) {
		c.MaxIFDEntrySize = size
	}
}

// WithMaxIFDCount sets the maximum IFD chain length (circuit breaker)
func WithMaxIFDCount(n int) ReaderOption {
	return func(c *ReaderConfig) {
		c.MaxIFDCount = n
	}
}

// WithMetricsEnabled enables I/O metrics reporting
func WithMetricsEnabled() ReaderOption {
	return func(c *ReaderConfig) {
		c.EnableMetrics = true
	}
}

// WithRequiredTags adds required tags beyond the baseline set
func WithRequiredTags(tags ...TagType) ReaderOption {
	return func(c *ReaderConfig) {
		c.RequiredTags = append(c.RequiredTags, tags...)
	}
}

// Reader is a decoded TIFF. Ranges maps every byte the structure
// claimed; Diagnostics holds the advisory findings.
type Reader struct {
	Header      *Header
	IFDs        []*IFD
	Ranges      *RangeMap
	Diagnostics Diagnostics

	cursor *Cursor
	config *ReaderConfig
	bb     *backbone.Backbone
}

// rawEntry is a directory entry as read in the first pass: nothing
// interpreted yet, the 4-byte value field kept as-is.
type rawEntry struct {
	pos      int64
	tag      TagType
	typeCode uint16
	count    int64
	value    []byte
}

type entryKey struct {
	ifd int
	tag TagType
}

// stringFix marks an unterminated ASCII field for the recovery pass.
type stringFix struct {
	ifd int
	tag TagType
	pos int64
}

// OpenReader decodes the full IFD chain from a seekable source. The
// decode is two-pass: first the chain structure, then every entry
// value with its byte range claimed as it is followed.
func OpenReader(r io.ReadSeeker, bb *backbone.Backbone, opts ...ReaderOption) (*Reader, error) {

	// Configure options with sensible defaults
	config := &ReaderConfig{
		MaxIFDEntrySize: MaxIFDEntrySize,
		MaxIFDCount:     MaxIFDCount,
		EnableMetrics:   false,
	}

	for _, opt := range opts {
		opt(config)
	}

	reader := &Reader{
		Ranges: NewRangeMap(),
		cursor: NewCursor(r),
		config: config,
		bb:     bb,
	}

	if err := reader.readHeader(); err != nil {
		return nil, err
	}

	dirs, err := reader.readDirectories()
	if err != nil {
		return nil, err
	}

	if err := reader.internalize(dirs); err != nil {
		return nil, err
	}

	if config.EnableMetrics && bb != nil {
		ioCalls, bytesRead := reader.cursor.Stats()
		bb.Metrics.Distribution("tiff.inspect.io_calls", float64(ioCalls), []string{}, 0.1)
		bb.Metrics.Distribution("tiff.inspect.bytes_read", float64(bytesRead), []string{}, 0.1)
		bb.Metrics.Distribution("tiff.inspect.claimed_bytes", float64(reader.Ranges.Len()), []string{}, 0.1)
	}

	return reader, nil
}

// OpenReaderBytes decodes a TIFF held in memory.
func OpenReaderBytes(data []byte, bb *backbone.Backbone, opts ...ReaderOption) (*Reader, error) {
	return OpenReader(bytes.NewReader(data), bb, opts...)
}

// NumIFDs returns the length of the decoded IFD chain.
func (r *Reader) NumIFDs() int {
	return len(r.IFDs)
}

// Stats returns the I/O call and byte counters from the decode.
func (r *Reader) Stats() (ioCalls int, bytesRead int64) {
	return r.cursor.Stats()
}

// readHeader parses the 8-byte header: byte order marker, magic
// number, first IFD offset. Error positions point at the offending
// field, not at the cursor.
func (r *Reader) readHeader() error {
	if err := r.cursor.Seek(0); err != nil {
		return err
	}

	marker, err := r.cursor.ReadExact(2)
	if err != nil {
		return err
	}

	switch {
	case marker[0] == 'I' && marker[1] == 'I':
		r.cursor.setByteOrder(binary.LittleEndian)
	case marker[0] == 'M' && marker[1] == 'M':
		r.cursor.setByteOrder(binary.BigEndian)
	default:
		return &UnknownByteOrderError{Position: 0, Marker: marker}
	}

	magic, err := r.cursor.ReadUint(2)
	if err != nil {
		return err
	}
	if magic != MagicNumber {
		return &WrongMagicNumberError{Position: 2, Expected: MagicNumber, Found: magic}
	}

	firstIFD, err := r.cursor.ReadUint(4)
	if err != nil {
		return err
	}
	if int64(firstIFD) < HeaderSize {
		return &FirstIFDOffsetTooLowError{
			Position: 4,
			Minimum:  HeaderSize,
			Offset:   int64(firstIFD),
		}
	}

	if err := r.Ranges.Insert(0, HeaderSize, Claim{Kind: ClaimHeader}); err != nil {
		return err
	}

	r.Header = &Header{
		ByteOrder: r.cursor.ByteOrder(),
		FirstIFD:  int64(firstIFD),
	}
	return nil
}

// readDirectories walks the IFD chain without interpreting any entry.
// Each directory claims its own bytes (count word, entries, next
// pointer); duplicate tags are fatal, out-of-order tags advisory.
func (r *Reader) readDirectories() ([][]rawEntry, error) {
	var dirs [][]rawEntry

	for offset := r.Header.FirstIFD; offset != 0; {
		if len(dirs) >= r.config.MaxIFDCount {
			if r.bb != nil {
				r.bb.Logger.Warnw("Too many IFDs detected, possible corruption",
					"ifdCount", len(dirs))
			}
			return nil, errors.Errorf("too many IFDs: %d, possible corruption", len(dirs))
		}

		if err := r.cursor.Seek(offset); err != nil {
			return nil, err
		}

		entryCount, err := r.cursor.ReadUint(2)
		if err != nil {
			return nil, err
		}
		if entryCount == 0 {
			return nil, &EmptyIFDError{Position: offset, IFD: len(dirs)}
		}

		dirEnd := offset + directoryEntrySize*int64(entryCount) + 6
		claim := Claim{Kind: ClaimDirectory, IFD: len(dirs)}
		if err := r.Ranges.Insert(offset, dirEnd, claim); err != nil {
			return nil, err
		}

		entries := make([]rawEntry, 0, entryCount)
		seen := make(map[TagType]bool, entryCount)
		var largestSoFar TagType

		for i := uint64(0); i < entryCount; i++ {
			pos := r.cursor.Position()

			tag, err := r.cursor.ReadUint(2)
			if err != nil {
				return nil, err
			}
			typeCode, err := r.cursor.ReadUint(2)
			if err != nil {
				return nil, err
			}
			count, err := r.cursor.ReadUint(4)
			if err != nil {
				return nil, err
			}
			value, err := r.cursor.ReadExact(inlineValueSize)
			if err != nil {
				return nil, err
			}

			if seen[TagType(tag)] {
				return nil, &DuplicateTagError{
					Position: pos,
					Tag:      TagType(tag),
					IFD:      len(dirs),
				}
			}
			seen[TagType(tag)] = true

			if TagType(tag) < largestSoFar {
				r.Diagnostics.OutOfOrderTags = append(r.Diagnostics.OutOfOrderTags,
					OutOfOrderTagEntry{IFD: len(dirs), Tag: TagType(tag), PrevMax: largestSoFar})
				if r.bb != nil {
					r.bb.Logger.Warnw("Out-of-order tag in IFD",
						"ifd", len(dirs),
						"tag", tag,
						"prevMax", uint16(largestSoFar))
				}
			} else {
				largestSoFar = TagType(tag)
			}

			entries = append(entries, rawEntry{
				pos:      pos,
				tag:      TagType(tag),
				typeCode: uint16(typeCode),
				count:    int64(count),
				value:    value,
			})
		}

		next, err := r.cursor.ReadUint(4)
		if err != nil {
			return nil, err
		}

		dirs = append(dirs, entries)
		offset = int64(next)
	}

	return dirs, nil
}

// internalize is the second pass: resolve every raw entry to a typed
// value, claiming offset-stored value ranges along the way, then claim
// strip data and attempt string recovery.
func (r *Reader) internalize(dirs [][]rawEntry) error {
	entryPositions := make(map[entryKey]int64)
	var pendingStrings []stringFix

	for ifdIndex, entries := range dirs {
		d := NewIFD()
		d.AddRequiredTags(r.config.RequiredTags...)

		for _, e := range entries {
			dataType := DataType(e.typeCode)
			size := dataType.ByteSize()
			if size == 0 {
				r.Diagnostics.UnknownTypes = append(r.Diagnostics.UnknownTypes,
					UnknownTypeEntry{IFD: ifdIndex, Tag: e.tag, Code: e.typeCode, Position: e.pos})
				if r.bb != nil {
					r.bb.Logger.Warnw("Unknown field type code, skipping entry",
						"ifd", ifdIndex,
						"tag", uint16(e.tag),
						"typeCode", e.typeCode)
				}
				continue
			}

			total := int64(size) * e.count
			if total > r.config.MaxIFDEntrySize {
				if r.bb != nil {
					r.bb.Logger.Warnw("IFD entry data size exceeds limit, possible corruption",
						"ifd", ifdIndex,
						"tag", uint16(e.tag),
						"dataType", dataType,
						"count", e.count,
						"requestedSize", total,
						"maxAllowed", r.config.MaxIFDEntrySize)
				}
				continue
			}

			data := e.value
			if total > inlineValueSize {
				valueOffset := int64(uintFromBytes(e.value, r.cursor.ByteOrder()))
				claim := Claim{Kind: ClaimFieldValue, IFD: ifdIndex, Tag: e.tag}
				if err := r.Ranges.Insert(valueOffset, valueOffset+total, claim); err != nil {
					return err
				}
				if err := r.cursor.Seek(valueOffset); err != nil {
					return err
				}
				var err error
				data, err = r.cursor.ReadExact(int(total))
				if err != nil {
					return err
				}
			}
			data = data[:total]

			var value Value
			switch dataType {
			case DataType_ASCII:
				if n := len(data); n > 0 && data[n-1] == 0 {
					value = BytesValue(data[:n-1])
				} else {
					// No trailing NUL. Keep the raw bytes and let the
					// recovery pass hunt for the real string.
					pendingStrings = append(pendingStrings,
						stringFix{ifd: ifdIndex, tag: e.tag, pos: e.pos})
					value = BytesValue(data)
				}
			case DataType_Undefined:
				value = BytesValue(data)
			default:
				var err error
				value, err = decodeScalars(dataType, data, r.cursor.ByteOrder(), e.pos)
				if err != nil {
					return err
				}
			}

			d.Set(e.tag, value)
			entryPositions[entryKey{ifd: ifdIndex, tag: e.tag}] = e.pos
		}

		r.IFDs = append(r.IFDs, d)
	}

	if err := r.claimStrips(entryPositions); err != nil {
		return err
	}

	return r.recoverStrings(pendingStrings)
}

// decodeScalars interprets a field's bytes as a sequence of scalars of
// the given type.
func decodeScalars(dataType DataType, data []byte, order binary.ByteOrder, pos int64) (Value, error) {
	size := dataType.ByteSize()
	n := len(data) / size

	switch dataType {
	case DataType_Byte, DataType_Short, DataType_Long:
		out := make([]uint64, n)
		for i := range out {
			out[i] = uintFromBytes(data[i*size:(i+1)*size], order)
		}
		return UintsValue(out...), nil

	case DataType_SByte, DataType_SShort, DataType_SLong:
		out := make([]int64, n)
		for i := range out {
			out[i] = sintFromBytes(data[i*size:(i+1)*size], order)
		}
		return IntsValue(out...), nil

	case DataType_Rational, DataType_SRational:
		out := make([]Rational, n)
		for i := range out {
			out[i] = rationalFromBytes(data[i*size:(i+1)*size], order, dataType.IsSigned())
		}
		return RationalsValue(out...), nil

	case DataType_Float, DataType_Double:
		out := make([]Real, n)
		for i := range out {
			f, err := realFromBytes(data[i*size:(i+1)*size], order, pos+int64(i*size))
			if err != nil {
				return Value{}, err
			}
			out[i] = f
		}
		return RealsValue(out...), nil
	}

	return Value{}, errors.Errorf("no scalar decoding for type %s", dataType)
}

// claimStrips claims the byte ranges named by the offset/bytecount tag
// pairs. Error positions point at the offsets entry in the directory.
func (r *Reader) claimStrips(entryPositions map[entryKey]int64) error {
	for ifdIndex, d := range r.IFDs {
		for _, pair := range stripTagPairs {
			offsetTag, countTag := pair[0], pair[1]
			if !d.Has(offsetTag) {
				continue
			}
			pos := entryPositions[entryKey{ifd: ifdIndex, tag: offsetTag}]

			if !d.Has(countTag) {
				return &OffsetsWithoutBytecountsError{
					Position:  pos,
					OffsetTag: offsetTag,
					CountTag:  countTag,
				}
			}

			offsetsValue, err := d.Get(offsetTag)
			if err != nil {
				return err
			}
			countsValue, err := d.Get(countTag)
			if err != nil {
				return err
			}

			offsets, ok := offsetsValue.AsUints()
			if !ok {
				r.noteNonIntegerStrip(ifdIndex, offsetTag, offsetsValue.Kind, pos)
				continue
			}
			counts, ok := countsValue.AsUints()
			if !ok {
				countPos := entryPositions[entryKey{ifd: ifdIndex, tag: countTag}]
				r.noteNonIntegerStrip(ifdIndex, countTag, countsValue.Kind, countPos)
				continue
			}

			if len(offsets) != len(counts) {
				return &OffsetsDontMatchBytecountsError{
					Position:  pos,
					OffsetTag: offsetTag,
					CountTag:  countTag,
					Offsets:   len(offsets),
					Counts:    len(counts),
				}
			}

			for i := range offsets {
				if counts[i] == 0 {
					continue
				}
				claim := Claim{Kind: ClaimStrip, IFD: ifdIndex, Tag: offsetTag, Strip: i}
				start := int64(offsets[i])
				if err := r.Ranges.Insert(start, start+int64(counts[i]), claim); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// noteNonIntegerStrip records an offsets or bytecounts field that
// decoded to something other than integers, so the strip data it
// points at cannot be claimed.
func (r *Reader) noteNonIntegerStrip(ifd int, tag TagType, kind ValueKind, pos int64) {
	r.Diagnostics.NonIntegerStrips = append(r.Diagnostics.NonIntegerStrips,
		NonIntegerStripEntry{IFD: ifd, Tag: tag, Kind: kind, Position: pos})
	if r.bb != nil {
		r.bb.Logger.Warnw("Strip field is not an integer sequence, leaving strips unclaimed",
			"ifd", ifd,
			"tag", uint16(tag),
			"kind", kind.String())
	}
}

// recoverStrings re-reads each unterminated ASCII field plus whatever
// unclaimed bytes follow it, then scans for NUL-terminated candidates.
// A candidate equal to the stored value confirms the field; anything
// else becomes a suggestion.
func (r *Reader) recoverStrings(pending []stringFix) error {
	for _, fix := range pending {
		stored, err := r.IFDs[fix.ifd].Get(fix.tag)
		if err != nil {
			return err
		}

		// The entry layout is tag(2) type(2) count(4) value(4); seek
		// past tag and type to re-read the count.
		if err := r.cursor.Seek(fix.pos + 4); err != nil {
			return err
		}
		strlen, err := r.cursor.ReadUint(4)
		if err != nil {
			return err
		}

		var full []byte
		if strlen <= inlineValueSize {
			// Inline value: all four bytes are fair game.
			full, err = r.cursor.ReadExact(inlineValueSize)
			if err != nil {
				return err
			}
		} else {
			valueOffset, err := r.cursor.ReadUint(4)
			if err != nil {
				return err
			}
			if err := r.cursor.Seek(int64(valueOffset)); err != nil {
				return err
			}
			full, err = r.cursor.ReadExact(int(strlen))
			if err != nil {
				return err
			}

			// Read the free bytes after the field, stopping at the
			// next claimed offset (they belong to someone else) or at
			// EOF.
			pos := r.cursor.Position()
			if next, ok := r.Ranges.FirstClaimedAtOrAfter(pos); ok {
				more, err := r.cursor.ReadExact(int(next - pos))
				if err != nil {
					return err
				}
				full = append(full, more...)
			} else {
				more, err := r.cursor.ReadRemaining()
				if err != nil {
					return err
				}
				full = append(full, more...)
			}
		}

		confirmed := false
		var suggestions [][]byte
		for idx := bytes.IndexByte(full, 0); idx != -1; {
			guess := full[:idx]
			if bytes.Equal(guess, stored.Bytes) {
				confirmed = true
				suggestions = nil
				break
			}
			suggestions = append(suggestions, guess)
			rest := bytes.IndexByte(full[idx+1:], 0)
			if rest == -1 {
				break
			}
			idx += 1 + rest
		}

		if !confirmed && int64(len(full)) > int64(strlen) && full[len(full)-1] != 0 {
			// The extended read found more bytes and they don't end in
			// a NUL, so the whole stretch is itself a candidate.
			suggestions = append(suggestions, full)
		}

		r.Diagnostics.InvalidStrings = append(r.Diagnostics.InvalidStrings,
			InvalidStringEntry{
				IFD:         fix.ifd,
				Tag:         fix.tag,
				Confirmed:   confirmed,
				Suggestions: suggestions,
			})
	}
	return nil
}
