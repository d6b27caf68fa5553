// Copyright 2024 <climacell.com>. All rights reserved.
// Seekable typed binary reader with EOF-safe reads

package tiff

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ieeeMask holds the sign/exponent/mantissa bit masks for one IEEE-754
// width.
type ieeeMask struct {
	sign uint64
	exp  uint64
	man  uint64
}

var ieeeParams = map[int]ieeeMask{
	4: {
		sign: 0x80000000,
		exp:  0x7f800000,
		man:  0x007fffff,
	},
	8: {
		sign: 0x8000000000000000,
		exp:  0x7ff0000000000000,
		man:  0x000fffffffffffff,
	},
}

// Cursor wraps a random-access byte source with a byte order and an
// absolute position. The byte order is chosen once, when the header is
// parsed, and stays fixed for the cursor's lifetime. It also counts
// I/O calls and bytes read, the way the optimized reader tracks its
// adaptive reads.
type Cursor struct {
	r     io.ReadSeeker
	order binary.ByteOrder
	pos   int64

	ioCalls   int
	bytesRead int64
}

// NewCursor wraps a seekable source. The order defaults to big endian
// until the header parse fixes it.
func NewCursor(r io.ReadSeeker) *Cursor {
	return &Cursor{r: r, order: binary.BigEndian}
}

// ByteOrder returns the cursor's byte order.
func (c *Cursor) ByteOrder() binary.ByteOrder {
	return c.order
}

// setByteOrder fixes the byte order. Called exactly once, from the
// header parse.
func (c *Cursor) setByteOrder(order binary.ByteOrder) {
	c.order = order
}

// Position returns the absolute offset of the next read.
func (c *Cursor) Position() int64 {
	return c.pos
}

// Seek moves to an absolute offset.
func (c *Cursor) Seek(pos int64) error {
	if _, err := c.r.Seek(pos, io.SeekStart); err != nil {
		return errors.Wrapf(err, "seek to 0x%x", pos)
	}
	c.pos = pos
	return nil
}

// Stats returns the I/O call and byte counters.
func (c *Cursor) Stats() (ioCalls int, bytesRead int64) {
	return c.ioCalls, c.bytesRead
}

// ReadExact returns exactly n bytes or fails with UnexpectedEOFError
// at the position where the bytes ran out.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(c.r, buf)
	c.ioCalls++
	c.bytesRead += int64(got)
	c.pos += int64(got)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &UnexpectedEOFError{Position: c.pos}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %d bytes at 0x%x", n, c.pos-int64(got))
	}
	return buf, nil
}

// ReadRemaining reads from the current position through EOF.
func (c *Cursor) ReadRemaining() ([]byte, error) {
	buf, err := io.ReadAll(c.r)
	c.ioCalls++
	c.bytesRead += int64(len(buf))
	c.pos += int64(len(buf))
	if err != nil {
		return nil, errors.Wrap(err, "read to end of file")
	}
	return buf, nil
}

// ReadUint reads an n-byte unsigned integer, 1 <= n <= 8.
func (c *Cursor) ReadUint(n int) (uint64, error) {
	buf, err := c.ReadExact(n)
	if err != nil {
		return 0, err
	}
	return uintFromBytes(buf, c.order), nil
}

// ReadSint reads an n-byte two's-complement integer, 1 <= n <= 8.
func (c *Cursor) ReadSint(n int) (int64, error) {
	buf, err := c.ReadExact(n)
	if err != nil {
		return 0, err
	}
	return sintFromBytes(buf, c.order), nil
}

// ReadRational reads an n-byte unsigned rational: the field is split
// in half, numerator first. Halves stay unreduced.
func (c *Cursor) ReadRational(n int) (Rational, error) {
	buf, err := c.ReadExact(n)
	if err != nil {
		return Rational{}, err
	}
	return rationalFromBytes(buf, c.order, false), nil
}

// ReadSignedRational reads an n-byte signed rational.
func (c *Cursor) ReadSignedRational(n int) (Rational, error) {
	buf, err := c.ReadExact(n)
	if err != nil {
		return Rational{}, err
	}
	return rationalFromBytes(buf, c.order, true), nil
}

// ReadReal reads an n-byte IEEE-754 float. Only 4- and 8-byte widths
// have bit masks; anything else fails with FloatWidthError.
func (c *Cursor) ReadReal(n int) (Real, error) {
	start := c.pos
	buf, err := c.ReadExact(n)
	if err != nil {
		return Real{}, err
	}
	return realFromBytes(buf, c.order, start)
}

func uintFromBytes(b []byte, order binary.ByteOrder) uint64 {
	var v uint64
	if order == binary.ByteOrder(binary.LittleEndian) {
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
		return v
	}
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

func sintFromBytes(b []byte, order binary.ByteOrder) int64 {
	u := uintFromBytes(b, order)
	if len(b) >= 8 {
		return int64(u)
	}
	// The sign threshold is 256**n / 2.
	threshold := uint64(1) << (uint(len(b))*8 - 1)
	if u < threshold {
		return int64(u)
	}
	return int64(u) - (int64(1) << (uint(len(b)) * 8))
}

func rationalFromBytes(b []byte, order binary.ByteOrder, signed bool) Rational {
	half := len(b) / 2
	if signed {
		return Rational{
			Num: sintFromBytes(b[:half], order),
			Den: sintFromBytes(b[half:], order),
		}
	}
	return Rational{
		Num: int64(uintFromBytes(b[:half], order)),
		Den: int64(uintFromBytes(b[half:], order)),
	}
}

// realFromBytes reconstructs an IEEE-754 value from its bits. Denormal
// values keep their exact fraction; a zero mantissa with a zero
// exponent is exact zero.
func realFromBytes(b []byte, order binary.ByteOrder, pos int64) (Real, error) {
	masks, ok := ieeeParams[len(b)]
	if !ok {
		return Real{}, &FloatWidthError{Position: pos, Width: len(b)}
	}

	den := masks.man + 1
	maxExp := int(masks.exp / den)
	offset := maxExp / 2

	asInt := uintFromBytes(b, order)
	neg := asInt&masks.sign != 0
	exp := int((asInt & masks.exp) / den)
	man := asInt & masks.man

	if exp == maxExp {
		if man == 0 {
			return Real{Form: RealInf, Neg: neg}, nil
		}
		return Real{Form: RealNaN}, nil
	}

	if exp == 0 {
		if man == 0 {
			return Real{Form: RealZero, Neg: neg}, nil
		}
		// Denormals use exponent 1 without the implicit leading bit,
		// so the fraction stays between 0 and 1.
		return Real{Form: RealFrac, Neg: neg, Num: man, Den: den, Exp: 1 - offset}, nil
	}

	// Normalized: the implicit leading bit makes the fraction fall
	// between 1 and 2.
	return Real{Form: RealFrac, Neg: neg, Num: man + den, Den: den, Exp: exp - offset}, nil
}
