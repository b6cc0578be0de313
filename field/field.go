// Package field implements arithmetic over the 64-bit Goldilocks-style
// prime field used by the burn/mint AIR: p = 2^64 - 2^32 + 1.
package field

import (
	"fmt"
	"math/bits"
)

// Modulus is the Goldilocks prime 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// epsilon is 2^64 - Modulus, i.e. 2^32 - 1. Since 2^64 ≡ epsilon (mod p),
// 128-bit reduction folds the high limb back in using epsilon instead of
// a full division.
const epsilon uint64 = 0xFFFFFFFF

// Element is a field element in [0, Modulus). The zero value is the
// field's zero element.
type Element struct {
	v uint64
}

// Zero returns the additive identity.
func Zero() Element { return Element{0} }

// One returns the multiplicative identity.
func One() Element { return Element{1} }

// New reduces v modulo the field modulus. Any uint64 is within one
// subtraction of canonical form since Modulus is within 2^32 of 2^64.
func New(v uint64) Element {
	if v >= Modulus {
		return Element{v - Modulus}
	}
	return Element{v}
}

// Uint64 returns the canonical representative in [0, Modulus).
func (e Element) Uint64() uint64 { return e.v }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.v == 0 }

// Equal reports whether e and o represent the same field element.
func (e Element) Equal(o Element) bool { return e.v == o.v }

// Add returns e + o mod p.
func (e Element) Add(o Element) Element {
	sum, carry := bits.Add64(e.v, o.v, 0)
	if carry != 0 {
		sum += epsilon
	}
	return New(sum)
}

// Sub returns e - o mod p.
func (e Element) Sub(o Element) Element {
	diff, borrow := bits.Sub64(e.v, o.v, 0)
	if borrow != 0 {
		diff -= epsilon
	}
	return New(diff)
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	if e.v == 0 {
		return e
	}
	return Element{Modulus - e.v}
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) Element {
	hi, lo := bits.Mul64(e.v, o.v)
	return reduce128(hi, lo)
}

// reduce128 reduces a 128-bit value hi*2^64+lo modulo the Goldilocks
// prime, using 2^64 ≡ epsilon (mod p) to fold the high limb back into a
// 64-bit accumulator without a big.Int.
func reduce128(hi, lo uint64) Element {
	hiHi := hi >> 32
	hiLo := hi & epsilon

	t0, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		t0 -= epsilon
	}

	t1 := hiLo * epsilon

	sum, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		sum += epsilon
	}
	return New(sum)
}

// Square returns e * e.
func (e Element) Square() Element { return e.Mul(e) }

// Pow returns e raised to exponent via square-and-multiply.
func (e Element) Pow(exponent uint64) Element {
	result := One()
	base := e
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		exponent >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse of e via Fermat's little
// theorem, or false if e is zero.
func (e Element) Inverse() (Element, bool) {
	if e.IsZero() {
		return Element{}, false
	}
	return e.Pow(Modulus - 2), true
}

// LEBytes returns the little-endian 8-byte encoding of the canonical
// representative.
func (e Element) LEBytes() [8]byte {
	var b [8]byte
	v := e.v
	for i := 0; i < 8; i++ {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// FromLEBytes reduces an 8-byte little-endian value into the field.
func FromLEBytes(b [8]byte) Element {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = (v << 8) | uint64(b[i])
	}
	return New(v)
}

// FromUint32LE reduces a 4-byte little-endian value into the field.
func FromUint32LE(b [4]byte) Element {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return New(uint64(v))
}

func (e Element) String() string {
	return fmt.Sprintf("%d", e.v)
}

// MarshalBinary implements encoding.BinaryMarshaler so Element survives
// gob/JSON-adjacent round trips (e.g. proof serialization) without
// exposing its unexported internal representation.
func (e Element) MarshalBinary() ([]byte, error) {
	b := e.LEBytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Element) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("field: invalid element encoding length %d", len(data))
	}
	var b [8]byte
	copy(b[:], data)
	*e = FromLEBytes(b)
	return nil
}
