// Copyright 2024 <climacell.com>. All rights reserved.
// TIFF field types and decoded value representation

package tiff

import (
	"fmt"
	"math"
	"strings"
)

// DataType is a TIFF field type code (1-12).
type DataType uint16

const (
	DataType_Byte      DataType = 1
	DataType_ASCII     DataType = 2
	DataType_Short     DataType = 3
	DataType_Long      DataType = 4
	DataType_Rational  DataType = 5
	DataType_SByte     DataType = 6
	DataType_Undefined DataType = 7
	DataType_SShort    DataType = 8
	DataType_SLong     DataType = 9
	DataType_SRational DataType = 10
	DataType_Float     DataType = 11
	DataType_Double    DataType = 12
)

var dataTypeSizes = map[DataType]int{
	DataType_Byte:      1,
	DataType_ASCII:     1,
	DataType_Short:     2,
	DataType_Long:      4,
	DataType_Rational:  8,
	DataType_SByte:     1,
	DataType_Undefined: 1,
	DataType_SShort:    2,
	DataType_SLong:     4,
	DataType_SRational: 8,
	DataType_Float:     4,
	DataType_Double:    8,
}

var dataTypeNames = map[DataType]string{
	DataType_Byte:      "BYTE",
	DataType_ASCII:     "ASCII",
	DataType_Short:     "SHORT",
	DataType_Long:      "LONG",
	DataType_Rational:  "RATIONAL",
	DataType_SByte:     "SBYTE",
	DataType_Undefined: "UNDEFINED",
	DataType_SShort:    "SSHORT",
	DataType_SLong:     "SLONG",
	DataType_SRational: "SRATIONAL",
	DataType_Float:     "FLOAT",
	DataType_Double:    "DOUBLE",
}

// ByteSize returns the width of one value of this type, or 0 for
// unrecognized type codes.
func (t DataType) ByteSize() int {
	return dataTypeSizes[t]
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DataType(%d)", uint16(t))
}

// IsSigned reports whether the type carries a sign bit.
func (t DataType) IsSigned() bool {
	switch t {
	case DataType_SByte, DataType_SShort, DataType_SLong, DataType_SRational:
		return true
	}
	return false
}

// Rational is a TIFF fraction. Halves are kept unreduced, exactly as
// stored on disk. Signed and unsigned rationals both fit in int64
// halves since the on-disk width is 32 bits.
type Rational struct {
	Num int64
	Den int64
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// RealForm discriminates the shapes an IEEE-754 field can decode to.
type RealForm uint8

const (
	RealZero RealForm = iota
	RealFrac
	RealInf
	RealNaN
)

// Real is a losslessly decoded IEEE-754 value: Num/Den * 2**Exp, with
// the sign kept separate. Denormals keep their exact fraction instead
// of collapsing to a native float, so diagnostics can round-trip bits.
type Real struct {
	Form RealForm
	Neg  bool
	Num  uint64
	Den  uint64
	Exp  int
}

// Float64 converts to the nearest native float.
func (f Real) Float64() float64 {
	switch f.Form {
	case RealZero:
		if f.Neg {
			return math.Copysign(0, -1)
		}
		return 0
	case RealInf:
		if f.Neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case RealNaN:
		return math.NaN()
	}
	v := math.Ldexp(float64(f.Num)/float64(f.Den), f.Exp)
	if f.Neg {
		return -v
	}
	return v
}

func (f Real) String() string {
	switch f.Form {
	case RealZero:
		if f.Neg {
			return "-0"
		}
		return "0"
	case RealInf:
		if f.Neg {
			return "-Inf"
		}
		return "+Inf"
	case RealNaN:
		return "NaN"
	}
	sign := ""
	if f.Neg {
		sign = "-"
	}
	return fmt.Sprintf("%s2**(%d) * %d/%d", sign, f.Exp, f.Num, f.Den)
}

// ValueKind discriminates the payload of a decoded field Value.
type ValueKind uint8

const (
	KindBytes ValueKind = iota + 1 // ASCII and UNDEFINED payloads
	KindUints
	KindInts
	KindRationals
	KindReals
)

func (k ValueKind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindUints:
		return "unsigned integers"
	case KindInts:
		return "signed integers"
	case KindRationals:
		return "rationals"
	case KindReals:
		return "reals"
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Value is a decoded IFD field. Every numeric field is a sequence of
// 1..N scalars; ASCII and UNDEFINED fields are scalar byte strings.
type Value struct {
	Kind      ValueKind
	Bytes     []byte
	Uints     []uint64
	Ints      []int64
	Rationals []Rational
	Reals     []Real
}

// BytesValue wraps a byte string (ASCII or UNDEFINED payload).
func BytesValue(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: b}
}

// UintsValue wraps an unsigned integer sequence.
func UintsValue(vs ...uint64) Value {
	return Value{Kind: KindUints, Uints: vs}
}

// IntsValue wraps a signed integer sequence.
func IntsValue(vs ...int64) Value {
	return Value{Kind: KindInts, Ints: vs}
}

// RationalsValue wraps a rational sequence.
func RationalsValue(vs ...Rational) Value {
	return Value{Kind: KindRationals, Rationals: vs}
}

// RealsValue wraps a float sequence.
func RealsValue(vs ...Real) Value {
	return Value{Kind: KindReals, Reals: vs}
}

// IsZero reports whether the Value is the zero Value (no payload kind).
func (v Value) IsZero() bool {
	return v.Kind == 0
}

// Count returns the number of scalars in the sequence. Byte strings
// count as one scalar.
func (v Value) Count() int {
	switch v.Kind {
	case KindBytes:
		return 1
	case KindUints:
		return len(v.Uints)
	case KindInts:
		return len(v.Ints)
	case KindRationals:
		return len(v.Rationals)
	case KindReals:
		return len(v.Reals)
	}
	return 0
}

// First returns the first scalar as an unsigned integer. It reports
// false for empty sequences and non-integer kinds.
func (v Value) First() (uint64, bool) {
	switch v.Kind {
	case KindUints:
		if len(v.Uints) > 0 {
			return v.Uints[0], true
		}
	case KindInts:
		if len(v.Ints) > 0 && v.Ints[0] >= 0 {
			return uint64(v.Ints[0]), true
		}
	}
	return 0, false
}

// AsUints returns the sequence as unsigned integers. Signed sequences
// convert when every element is non-negative; other kinds report false.
func (v Value) AsUints() ([]uint64, bool) {
	switch v.Kind {
	case KindUints:
		return v.Uints, true
	case KindInts:
		out := make([]uint64, len(v.Ints))
		for i, x := range v.Ints {
			if x < 0 {
				return nil, false
			}
			out[i] = uint64(x)
		}
		return out, true
	}
	return nil, false
}

// Equal reports deep equality of kind and payload. Used by the IFD to
// collapse stored values that match their computed defaults.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBytes:
		return string(v.Bytes) == string(other.Bytes)
	case KindUints:
		if len(v.Uints) != len(other.Uints) {
			return false
		}
		for i := range v.Uints {
			if v.Uints[i] != other.Uints[i] {
				return false
			}
		}
	case KindInts:
		if len(v.Ints) != len(other.Ints) {
			return false
		}
		for i := range v.Ints {
			if v.Ints[i] != other.Ints[i] {
				return false
			}
		}
	case KindRationals:
		if len(v.Rationals) != len(other.Rationals) {
			return false
		}
		for i := range v.Rationals {
			if v.Rationals[i] != other.Rationals[i] {
				return false
			}
		}
	case KindReals:
		if len(v.Reals) != len(other.Reals) {
			return false
		}
		for i := range v.Reals {
			if v.Reals[i] != other.Reals[i] {
				return false
			}
		}
	}
	return true
}

func (v Value) String() string {
	switch v.Kind {
	case KindBytes:
		return fmt.Sprintf("%q", v.Bytes)
	case KindUints:
		return joinScalars(len(v.Uints), func(i int) string {
			return fmt.Sprintf("%d", v.Uints[i])
		})
	case KindInts:
		return joinScalars(len(v.Ints), func(i int) string {
			return fmt.Sprintf("%d", v.Ints[i])
		})
	case KindRationals:
		return joinScalars(len(v.Rationals), func(i int) string {
			return v.Rationals[i].String()
		})
	case KindReals:
		return joinScalars(len(v.Reals), func(i int) string {
			return v.Reals[i].String()
		})
	}
	return "<no value>"
}

func joinScalars(n int, scalar func(int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = scalar(i)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
