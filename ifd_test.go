// Copyright 2024 <climacell.com>. All rights reserved.

package tiff

import (
	"reflect"
	"strings"
	"testing"
)

func wantUints(t *testing.T, d *IFD, tag TagType, want ...uint64) {
	t.Helper()
	v, err := d.Get(tag)
	if err != nil {
		t.Fatalf("Get(%s) failed: %v", tag.Name(), err)
	}
	if v.Kind != KindUints || !reflect.DeepEqual(v.Uints, want) {
		t.Errorf("Get(%s) = %v, want %v", tag.Name(), v, want)
	}
}

func TestIFDDefaults(t *testing.T) {
	d := NewIFD()

	wantUints(t, d, TagType_Compression, 1)
	wantUints(t, d, TagType_FillOrder, 1)
	wantUints(t, d, TagType_Orientation, 1)
	wantUints(t, d, TagType_ResolutionUnit, 2)
	wantUints(t, d, TagType_RowsPerStrip, 0xffffffff)
	wantUints(t, d, TagType_SamplesPerPixel, 1)
	wantUints(t, d, TagType_BitsPerSample, 1)
	wantUints(t, d, TagType_MinSampleValue, 0)
	wantUints(t, d, TagType_MaxSampleValue, 1)
}

func TestIFDRequiredAndMissing(t *testing.T) {
	d := NewIFD()

	_, err := d.Get(TagType_ImageWidth)
	if _, ok := err.(*MissingRequiredFieldError); !ok {
		t.Errorf("Get(ImageWidth) on empty IFD = %v, want MissingRequiredFieldError", err)
	}

	_, err = d.Get(TagType_DateTime)
	if _, ok := err.(*TagNotFoundError); !ok {
		t.Errorf("Get(DateTime) on empty IFD = %v, want TagNotFoundError", err)
	}

	want := []TagType{
		TagType_ImageWidth,
		TagType_ImageLength,
		TagType_PhotometricInterpretation,
		TagType_StripOffsets,
		TagType_StripByteCounts,
	}
	got := d.Tags()
	if len(got) != len(want) {
		t.Fatalf("Tags() = %v, want the %d baseline required tags", got, len(want))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("Tags() not in ascending order: %v", got)
		}
	}
	if d.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", d.Len(), len(want))
	}
}

func TestIFDSetCollapsesDefaults(t *testing.T) {
	d := NewIFD()
	baseline := d.Len()

	// Setting a tag to its default stores nothing.
	d.Set(TagType_Compression, UintsValue(1))
	if d.Len() != baseline {
		t.Errorf("Len() = %d after setting Compression to its default, want %d",
			d.Len(), baseline)
	}

	// A non-default value appears in iteration.
	d.Set(TagType_Compression, UintsValue(Compression_Group4Fax))
	if d.Len() != baseline+1 {
		t.Errorf("Len() = %d after setting Compression=4, want %d", d.Len(), baseline+1)
	}
	wantUints(t, d, TagType_Compression, 4)

	// Setting back to the default removes the stored value again.
	d.Set(TagType_Compression, UintsValue(1))
	if d.Len() != baseline {
		t.Errorf("Len() = %d after restoring the default, want %d", d.Len(), baseline)
	}
	wantUints(t, d, TagType_Compression, 1)
}

func TestIFDDelete(t *testing.T) {
	d := NewIFD()

	d.Set(TagType_Artist, BytesValue([]byte("Matt!")))
	if err := d.Delete(TagType_Artist); err != nil {
		t.Fatalf("Delete(Artist) failed: %v", err)
	}
	if _, err := d.Get(TagType_Artist); err == nil {
		t.Error("Get(Artist) succeeded after Delete")
	}

	// Deleting an unset tag with no default is an error, required or not.
	if err := d.Delete(TagType_DateTime); err == nil {
		t.Error("Delete(DateTime) on unset tag succeeded, want TagNotFoundError")
	}
	err := d.Delete(TagType_ImageWidth)
	if _, ok := err.(*TagNotFoundError); !ok {
		t.Errorf("Delete(ImageWidth) on unset required tag = %v, want TagNotFoundError", err)
	}

	// Deleting an unset tag that has a default restores nothing but is fine.
	if err := d.Delete(TagType_Compression); err != nil {
		t.Errorf("Delete(Compression) failed: %v", err)
	}
	wantUints(t, d, TagType_Compression, 1)

	// Deleting a stored override restores the default.
	d.Set(TagType_Compression, UintsValue(5))
	if err := d.Delete(TagType_Compression); err != nil {
		t.Fatalf("Delete(Compression) failed: %v", err)
	}
	wantUints(t, d, TagType_Compression, 1)
}

func TestIFDDependentDefaults(t *testing.T) {
	d := NewIFD()

	d.Set(TagType_SamplesPerPixel, UintsValue(3))
	wantUints(t, d, TagType_BitsPerSample, 1, 1, 1)
	wantUints(t, d, TagType_MinSampleValue, 0, 0, 0)
	wantUints(t, d, TagType_MaxSampleValue, 1, 1, 1)

	d.Set(TagType_BitsPerSample, UintsValue(8, 8, 8))
	wantUints(t, d, TagType_MaxSampleValue, 255, 255, 255)

	// An override that matches the new default collapses away.
	d.Set(TagType_BitsPerSample, UintsValue(1, 1, 1))
	if _, ok := d.stored[TagType_BitsPerSample]; ok {
		t.Error("BitsPerSample stayed stored after matching its default")
	}
	wantUints(t, d, TagType_MaxSampleValue, 1, 1, 1)
}

func TestIFDRenormalizationOnSamplesChange(t *testing.T) {
	d := NewIFD()

	// Store MaxSampleValue equal to its current default, then change
	// the default out from under it: the stored copy must collapse.
	d.Set(TagType_SamplesPerPixel, UintsValue(3))
	d.Set(TagType_MaxSampleValue, UintsValue(1, 1, 1))
	if _, ok := d.stored[TagType_MaxSampleValue]; ok {
		t.Fatal("MaxSampleValue stored despite matching its default")
	}

	d.Set(TagType_BitsPerSample, UintsValue(8, 8, 8))
	wantUints(t, d, TagType_MaxSampleValue, 255, 255, 255)

	// A genuine override survives a dependency change.
	d.Set(TagType_BitsPerSample, UintsValue(4, 4, 4))
	d.Set(TagType_MaxSampleValue, UintsValue(9, 9, 9))
	d.Set(TagType_SamplesPerPixel, UintsValue(1))
	wantUints(t, d, TagType_BitsPerSample, 4, 4, 4)
	wantUints(t, d, TagType_MaxSampleValue, 9, 9, 9)
}

func TestIFDRequiredTagManagement(t *testing.T) {
	d := NewIFD()

	d.AddRequiredTags(TagType_DateTime)
	_, err := d.Get(TagType_DateTime)
	if _, ok := err.(*MissingRequiredFieldError); !ok {
		t.Errorf("Get(DateTime) after AddRequiredTags = %v, want MissingRequiredFieldError", err)
	}

	found := false
	for _, tag := range d.Tags() {
		if tag == TagType_DateTime {
			found = true
		}
	}
	if !found {
		t.Error("DateTime missing from Tags() despite being required")
	}
	if d.Valid() {
		t.Error("Valid() = true with an unset required tag")
	}

	d.RemoveRequiredTags(TagType_DateTime)
	_, err = d.Get(TagType_DateTime)
	if _, ok := err.(*TagNotFoundError); !ok {
		t.Errorf("Get(DateTime) after RemoveRequiredTags = %v, want TagNotFoundError", err)
	}
}

func TestIFDValid(t *testing.T) {
	d := NewIFD()
	if d.Valid() {
		t.Error("Valid() = true on an empty IFD")
	}

	d.Set(TagType_ImageWidth, UintsValue(108))
	d.Set(TagType_ImageLength, UintsValue(36))
	d.Set(TagType_PhotometricInterpretation, UintsValue(Photometric_WhiteIsZero))
	d.Set(TagType_StripOffsets, UintsValue(158))
	d.Set(TagType_StripByteCounts, UintsValue(80))
	if !d.Valid() {
		t.Error("Valid() = false with every required tag set")
	}
}

func TestIFDString(t *testing.T) {
	d := NewIFD()
	d.Set(TagType_ImageWidth, UintsValue(108))
	d.Set(TagType_Compression, UintsValue(Compression_Group4Fax))

	s := d.String()
	if !strings.Contains(s, "ImageWidth") {
		t.Errorf("String() missing tag name: %q", s)
	}
	if !strings.Contains(s, "Group4Fax") {
		t.Errorf("String() missing enum value name: %q", s)
	}
	if !strings.Contains(s, "(missing)") {
		t.Errorf("String() should mark unset required tags: %q", s)
	}
}
