// Copyright 2024 <climacell.com>. All rights reserved.

package tiff

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func cursorOver(order binary.ByteOrder, data []byte) *Cursor {
	c := NewCursor(bytes.NewReader(data))
	c.setByteOrder(order)
	return c
}

func TestCursorReadUint(t *testing.T) {
	cases := []struct {
		order binary.ByteOrder
		data  []byte
		width int
		want  uint64
	}{
		{binary.LittleEndian, []byte{0x2a, 0x00}, 2, 42},
		{binary.BigEndian, []byte{0x00, 0x2a}, 2, 42},
		{binary.LittleEndian, []byte{0xff}, 1, 255},
		{binary.LittleEndian, []byte{0x9e, 0x00, 0x00, 0x00}, 4, 0x9e},
		{binary.BigEndian, []byte{0x00, 0x00, 0x00, 0x9e}, 4, 0x9e},
		{binary.LittleEndian, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 8, 0x0807060504030201},
		{binary.BigEndian, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 8, 0x0102030405060708},
	}
	for _, c := range cases {
		got, err := cursorOver(c.order, c.data).ReadUint(c.width)
		if err != nil {
			t.Fatalf("ReadUint(%d) on % x failed: %v", c.width, c.data, err)
		}
		if got != c.want {
			t.Errorf("ReadUint(%d) on % x = %#x, want %#x", c.width, c.data, got, c.want)
		}
	}
}

func TestCursorReadSint(t *testing.T) {
	cases := []struct {
		order binary.ByteOrder
		data  []byte
		width int
		want  int64
	}{
		{binary.LittleEndian, []byte{0xff}, 1, -1},
		{binary.LittleEndian, []byte{0x80}, 1, -128},
		{binary.LittleEndian, []byte{0x7f}, 1, 127},
		{binary.LittleEndian, []byte{0xfe, 0xff}, 2, -2},
		{binary.BigEndian, []byte{0xff, 0xfe}, 2, -2},
		{binary.LittleEndian, []byte{0x00, 0x80}, 2, -32768},
		{binary.BigEndian, []byte{0xff, 0xff, 0xff, 0xff}, 4, -1},
		{binary.LittleEndian, []byte{0xd6, 0xff, 0xff, 0xff}, 4, -42},
		{binary.BigEndian, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 8, -1},
	}
	for _, c := range cases {
		got, err := cursorOver(c.order, c.data).ReadSint(c.width)
		if err != nil {
			t.Fatalf("ReadSint(%d) on % x failed: %v", c.width, c.data, err)
		}
		if got != c.want {
			t.Errorf("ReadSint(%d) on % x = %d, want %d", c.width, c.data, got, c.want)
		}
	}
}

func TestCursorReadRational(t *testing.T) {
	// 300/72, little endian, unreduced.
	data := []byte{0x2c, 0x01, 0x00, 0x00, 0x48, 0x00, 0x00, 0x00}
	got, err := cursorOver(binary.LittleEndian, data).ReadRational(8)
	if err != nil {
		t.Fatalf("ReadRational failed: %v", err)
	}
	if got != (Rational{Num: 300, Den: 72}) {
		t.Errorf("ReadRational = %v, want 300/72", got)
	}

	// -1/2, big endian, signed halves.
	data = []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x02}
	got, err = cursorOver(binary.BigEndian, data).ReadSignedRational(8)
	if err != nil {
		t.Fatalf("ReadSignedRational failed: %v", err)
	}
	if got != (Rational{Num: -1, Den: 2}) {
		t.Errorf("ReadSignedRational = %v, want -1/2", got)
	}
}

func float32Bytes(order binary.ByteOrder, f float32) []byte {
	buf := make([]byte, 4)
	order.PutUint32(buf, math.Float32bits(f))
	return buf
}

func float64Bytes(order binary.ByteOrder, f float64) []byte {
	buf := make([]byte, 8)
	order.PutUint64(buf, math.Float64bits(f))
	return buf
}

func TestCursorReadRealRoundTrips(t *testing.T) {
	floats := []float64{0, 1, -1, 1.5, -2, 0.25, 108.5, -3.375}

	for _, want := range floats {
		got, err := cursorOver(binary.LittleEndian,
			float64Bytes(binary.LittleEndian, want)).ReadReal(8)
		if err != nil {
			t.Fatalf("ReadReal(8) for %v failed: %v", want, err)
		}
		if got.Float64() != want {
			t.Errorf("ReadReal(8) for %v = %v", want, got.Float64())
		}

		got, err = cursorOver(binary.BigEndian,
			float32Bytes(binary.BigEndian, float32(want))).ReadReal(4)
		if err != nil {
			t.Fatalf("ReadReal(4) for %v failed: %v", want, err)
		}
		if got.Float64() != float64(float32(want)) {
			t.Errorf("ReadReal(4) for %v = %v", want, got.Float64())
		}
	}
}

func TestCursorReadRealSpecialForms(t *testing.T) {
	read4 := func(bits uint32) Real {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, bits)
		f, err := cursorOver(binary.LittleEndian, buf).ReadReal(4)
		if err != nil {
			t.Fatalf("ReadReal(4) on %#08x failed: %v", bits, err)
		}
		return f
	}

	if f := read4(math.Float32bits(float32(math.Inf(1)))); f.Form != RealInf || f.Neg {
		t.Errorf("+Inf decoded as %+v", f)
	}
	if f := read4(math.Float32bits(float32(math.Inf(-1)))); f.Form != RealInf || !f.Neg {
		t.Errorf("-Inf decoded as %+v", f)
	}
	if f := read4(0x7fc00000); f.Form != RealNaN {
		t.Errorf("NaN decoded as %+v", f)
	}
	if f := read4(0x00000000); f.Form != RealZero || f.Neg {
		t.Errorf("+0 decoded as %+v", f)
	}
	if f := read4(0x80000000); f.Form != RealZero || !f.Neg {
		t.Errorf("-0 decoded as %+v", f)
	}

	// Smallest positive denormal: mantissa 1, exponent field 0. Kept
	// exactly as 1/2**23 * 2**-126.
	f := read4(0x00000001)
	if f.Form != RealFrac || f.Num != 1 || f.Den != 1<<23 || f.Exp != -126 {
		t.Errorf("denormal decoded as %+v", f)
	}
	if f.Float64() != float64(math.Float32frombits(0x00000001)) {
		t.Errorf("denormal Float64() = %v", f.Float64())
	}
}

func TestCursorReadRealUnknownWidth(t *testing.T) {
	_, err := cursorOver(binary.LittleEndian, []byte{1, 2}).ReadReal(2)
	werr, ok := err.(*FloatWidthError)
	if !ok {
		t.Fatalf("ReadReal(2) = %T, want *FloatWidthError", err)
	}
	if werr.Width != 2 {
		t.Errorf("FloatWidthError.Width = %d, want 2", werr.Width)
	}
}

func TestCursorEOF(t *testing.T) {
	c := cursorOver(binary.LittleEndian, []byte{1, 2, 3})
	if _, err := c.ReadExact(2); err != nil {
		t.Fatalf("ReadExact(2) failed: %v", err)
	}

	_, err := c.ReadExact(5)
	eofErr, ok := err.(*UnexpectedEOFError)
	if !ok {
		t.Fatalf("ReadExact past EOF = %T (%v), want *UnexpectedEOFError", err, err)
	}
	// The short read stops at the file's end.
	if eofErr.Position != 3 {
		t.Errorf("UnexpectedEOFError.Position = %d, want 3", eofErr.Position)
	}
}

func TestCursorSeekAndStats(t *testing.T) {
	c := cursorOver(binary.LittleEndian, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	if err := c.Seek(4); err != nil {
		t.Fatalf("Seek(4) failed: %v", err)
	}
	if c.Position() != 4 {
		t.Errorf("Position() = %d after Seek(4)", c.Position())
	}

	v, err := c.ReadUint(2)
	if err != nil {
		t.Fatalf("ReadUint(2) failed: %v", err)
	}
	if v != 0x0605 {
		t.Errorf("ReadUint(2) at offset 4 = %#x, want 0x0605", v)
	}
	if c.Position() != 6 {
		t.Errorf("Position() = %d after read, want 6", c.Position())
	}

	ioCalls, bytesRead := c.Stats()
	if ioCalls != 1 || bytesRead != 2 {
		t.Errorf("Stats() = %d calls, %d bytes; want 1, 2", ioCalls, bytesRead)
	}
}
