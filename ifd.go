// Copyright 2024 <climacell.com>. All rights reserved.
// Tag-keyed directory records with default substitution

package tiff

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Static per-tag defaults, straight from the TIFF 6.0 baseline.
var ifdDefaults = map[TagType]Value{
	TagType_NewSubfileType:      UintsValue(0),
	TagType_Compression:         UintsValue(Compression_Uncompressed),
	TagType_FillOrder:           UintsValue(FillOrder_LeftToRight),
	TagType_GrayResponseUnit:    UintsValue(2),
	TagType_Orientation:         UintsValue(Orientation_Normal),
	TagType_PlanarConfiguration: UintsValue(PlanarConfiguration_Chunky),
	TagType_ResolutionUnit:      UintsValue(ResolutionUnit_Inch),
	TagType_RowsPerStrip:        UintsValue(0xffffffff),
	TagType_SamplesPerPixel:     UintsValue(1),
	TagType_Thresholding:        UintsValue(Thresholding_Nothing),
}

// Tags every IFD must carry no matter what.
var alwaysRequired = []TagType{
	TagType_ImageWidth,
	TagType_ImageLength,
	TagType_PhotometricInterpretation,
	TagType_StripOffsets,
	TagType_StripByteCounts,
}

// tagDependents is the default-value dependency DAG: when a key tag
// changes, each dependent's computed default changes with it, so the
// dependents are re-normalized in topological order.
var tagDependents = map[TagType][]TagType{
	TagType_SamplesPerPixel: {
		TagType_BitsPerSample,
		TagType_MinSampleValue,
	},
	TagType_BitsPerSample: {
		TagType_MaxSampleValue,
	},
}

// IFD is one TIFF directory: a tag-keyed record with ascending-tag
// iteration, transparent default substitution, and a required-tag set.
//
// A tag is iterable when it is required or when its stored value
// differs from its computed default. Setting a tag to its default
// removes the stored value; the default is never materialized.
type IFD struct {
	stored   map[TagType]Value
	ordered  []TagType
	required map[TagType]struct{}
}

// NewIFD returns an empty directory with the baseline required tags.
func NewIFD() *IFD {
	d := &IFD{
		stored:   make(map[TagType]Value),
		required: make(map[TagType]struct{}),
	}
	d.AddRequiredTags(alwaysRequired...)
	return d
}

// Get returns the stored value for a tag, falling back to the tag's
// computed default. A required tag with neither fails with
// MissingRequiredFieldError; an optional one with TagNotFoundError.
func (d *IFD) Get(tag TagType) (Value, error) {
	if v, ok := d.stored[tag]; ok {
		return v, nil
	}
	if def := d.defaultFor(tag); !def.IsZero() {
		return def, nil
	}
	if _, ok := d.required[tag]; ok {
		return Value{}, &MissingRequiredFieldError{Tag: tag}
	}
	return Value{}, &TagNotFoundError{Tag: tag}
}

// Set stores a value for a tag. A value equal to the tag's computed
// default is not stored; any existing stored value collapses away
// instead. Dependent tags are re-normalized afterwards, so an override
// that now matches its new default is dropped too.
func (d *IFD) Set(tag TagType, v Value) {
	d.assign(tag, v)
	d.renormalize(tag)
}

// Delete clears a stored value, restoring default behavior. Deleting a
// tag that has neither a stored value nor a default fails with
// TagNotFoundError.
func (d *IFD) Delete(tag TagType) error {
	_, stored := d.stored[tag]
	if stored || d.defaultFor(tag).IsZero() {
		if !stored {
			return &TagNotFoundError{Tag: tag}
		}
		delete(d.stored, tag)
		if !d.isRequired(tag) {
			d.removeOrdered(tag)
		}
	}
	d.renormalize(tag)
	return nil
}

// Has reports whether Get would return a value (stored or default).
func (d *IFD) Has(tag TagType) bool {
	if _, ok := d.stored[tag]; ok {
		return true
	}
	return !d.defaultFor(tag).IsZero()
}

// Tags returns the iterable tags in ascending numeric order: every
// required tag plus every stored non-default tag.
func (d *IFD) Tags() []TagType {
	out := make([]TagType, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// Len counts the iterable tags.
func (d *IFD) Len() int {
	return len(d.ordered)
}

// RequiredTags returns the required-tag set in ascending order.
func (d *IFD) RequiredTags() []TagType {
	out := make([]TagType, 0, len(d.required))
	for tag := range d.required {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddRequiredTags marks tags as required: they stay enumerable even
// when unset, and reading them while unset (and defaultless) is a
// MissingRequiredFieldError rather than a silent miss.
func (d *IFD) AddRequiredTags(tags ...TagType) {
	for _, tag := range tags {
		if d.isRequired(tag) {
			continue
		}
		if _, ok := d.stored[tag]; !ok {
			d.insertOrdered(tag)
		}
		d.required[tag] = struct{}{}
	}
}

// RemoveRequiredTags drops tags from the required set.
func (d *IFD) RemoveRequiredTags(tags ...TagType) {
	for _, tag := range tags {
		if !d.isRequired(tag) {
			continue
		}
		if _, ok := d.stored[tag]; !ok {
			d.removeOrdered(tag)
		}
		delete(d.required, tag)
	}
}

// Valid reports whether every iterable tag can actually produce a
// value. False means a required tag is unset and has no default.
func (d *IFD) Valid() bool {
	for _, tag := range d.ordered {
		if !d.Has(tag) {
			return false
		}
	}
	return true
}

func (d *IFD) isRequired(tag TagType) bool {
	_, ok := d.required[tag]
	return ok
}

// assign is Set without the dependency pass.
func (d *IFD) assign(tag TagType, v Value) {
	def := d.defaultFor(tag)
	if def.IsZero() || !v.Equal(def) {
		if _, ok := d.stored[tag]; !ok && !d.isRequired(tag) {
			d.insertOrdered(tag)
		}
		d.stored[tag] = v
		return
	}
	if _, ok := d.stored[tag]; ok {
		// Replacing a stored value with its default just means
		// removing it.
		if !d.isRequired(tag) {
			d.removeOrdered(tag)
		}
		delete(d.stored, tag)
	}
}

// renormalize walks the dependency DAG below a mutated tag in
// topological order, reassigning each dependent to its current value.
// That reapplies the store-vs-default collapse under the new defaults.
func (d *IFD) renormalize(tag TagType) {
	queue := append([]TagType(nil), tagDependents[tag]...)
	seen := make(map[TagType]bool)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		if v, err := d.Get(next); err == nil {
			d.assign(next, v)
		}
		queue = append(queue, tagDependents[next]...)
	}
}

// defaultFor computes a tag's default, which may depend on the current
// value of other tags. A zero Value means no default.
func (d *IFD) defaultFor(tag TagType) Value {
	switch tag {
	case TagType_BitsPerSample:
		if n, ok := d.firstUint(TagType_SamplesPerPixel); ok {
			return UintsValue(repeatUint(1, n)...)
		}
	case TagType_MinSampleValue:
		if n, ok := d.firstUint(TagType_SamplesPerPixel); ok {
			return UintsValue(repeatUint(0, n)...)
		}
	case TagType_MaxSampleValue:
		if v, err := d.Get(TagType_BitsPerSample); err == nil {
			if bits, ok := v.AsUints(); ok {
				maxes := make([]uint64, len(bits))
				for i, b := range bits {
					if b >= 64 {
						maxes[i] = math.MaxUint64
					} else {
						maxes[i] = uint64(1)<<b - 1
					}
				}
				return UintsValue(maxes...)
			}
		}
	}
	if v, ok := ifdDefaults[tag]; ok {
		return v
	}
	return Value{}
}

func (d *IFD) firstUint(tag TagType) (uint64, bool) {
	v, err := d.Get(tag)
	if err != nil {
		return 0, false
	}
	return v.First()
}

func repeatUint(v uint64, n uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func (d *IFD) insertOrdered(tag TagType) {
	i := sort.Search(len(d.ordered), func(i int) bool {
		return d.ordered[i] >= tag
	})
	if i < len(d.ordered) && d.ordered[i] == tag {
		return
	}
	d.ordered = append(d.ordered, 0)
	copy(d.ordered[i+1:], d.ordered[i:])
	d.ordered[i] = tag
}

func (d *IFD) removeOrdered(tag TagType) {
	i := sort.Search(len(d.ordered), func(i int) bool {
		return d.ordered[i] >= tag
	})
	if i < len(d.ordered) && d.ordered[i] == tag {
		d.ordered = append(d.ordered[:i], d.ordered[i+1:]...)
	}
}

// String dumps the directory with tag and enum value names.
func (d *IFD) String() string {
	var b strings.Builder
	b.WriteString("IFD:")
	for _, tag := range d.ordered {
		fmt.Fprintf(&b, "\n  %04x %28s: ", uint16(tag), tag.Name())

		v, err := d.Get(tag)
		if err != nil {
			b.WriteString("(missing)")
			continue
		}

		names := TagValueNames[tag]
		if names == nil || v.Kind != KindUints {
			b.WriteString(v.String())
			continue
		}
		parts := make([]string, len(v.Uints))
		for i, u := range v.Uints {
			if name, ok := names[u]; ok {
				parts[i] = fmt.Sprintf("%d (%s)", u, name)
			} else {
				parts[i] = fmt.Sprintf("%d", u)
			}
		}
		b.WriteString("[" + strings.Join(parts, " ") + "]")
	}
	return b.String()
}
