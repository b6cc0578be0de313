package field

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicArithmetic(t *testing.T) {
	a := New(5)
	b := New(3)

	require.Equal(t, New(8), a.Add(b))
	require.Equal(t, New(2), a.Sub(b))
	require.Equal(t, New(15), a.Mul(b))
	require.True(t, Zero().IsZero())
	require.True(t, New(1).Equal(One()))
}

func TestAddWraps(t *testing.T) {
	a := New(Modulus - 1)
	b := New(2)
	require.Equal(t, New(1), a.Add(b))
}

func TestSubWraps(t *testing.T) {
	a := New(1)
	b := New(2)
	require.Equal(t, New(Modulus-1), a.Sub(b))
}

func TestNeg(t *testing.T) {
	a := New(42)
	require.True(t, a.Add(a.Neg()).IsZero())
	require.True(t, Zero().Neg().IsZero())
}

func TestMulNearModulus(t *testing.T) {
	a := New(Modulus - 1)
	b := New(Modulus - 1)
	// (p-1)*(p-1) mod p == 1
	require.Equal(t, New(1), a.Mul(b))
}

func TestInverse(t *testing.T) {
	a := New(5)
	inv, ok := a.Inverse()
	require.True(t, ok)
	require.Equal(t, One(), a.Mul(inv))

	_, ok = Zero().Inverse()
	require.False(t, ok)
}

func TestPow(t *testing.T) {
	a := New(2)
	require.Equal(t, New(1024), a.Pow(10))
	require.Equal(t, One(), a.Pow(0))
}

func TestLEBytesRoundTrip(t *testing.T) {
	a := New(0x1122334455667788 % Modulus)
	b := FromLEBytes(a.LEBytes())
	require.True(t, a.Equal(b))
}

func TestFromUint32LE(t *testing.T) {
	e := FromUint32LE([4]byte{0x01, 0x00, 0x00, 0x00})
	require.Equal(t, New(1), e)
}

func TestMulAgainstDoubleAndAddOracle(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := New(r.Uint64())
		b := New(r.Uint64())
		got := a.Mul(b)

		// Oracle: (a*b) mod p computed by double-and-add over the bits
		// of b, using only the field's own Add, so it never goes
		// through reduce128.
		sum := Zero()
		x := a
		n := b.Uint64()
		for n > 0 {
			if n&1 == 1 {
				sum = sum.Add(x)
			}
			x = x.Add(x)
			n >>= 1
		}
		require.Equal(t, sum, got, "a=%d b=%d", a.Uint64(), b.Uint64())
	}
}
