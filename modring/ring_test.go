package modring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/modarith/csprng"
	"github.com/sp301415/modarith/modring"
	"github.com/sp301415/modarith/modular"
)

func TestNew(t *testing.T) {
	t.Run("Positive", func(t *testing.T) {
		assert.Equal(t, 13, modring.New(13).Modulus())
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		assert.Panics(t, func() { modring.New(0) })
		assert.Panics(t, func() { modring.New(-5) })
	})
}

func TestRingArithmetic(t *testing.T) {
	ring := modring.New(int64(13))
	s := csprng.NewUniformSamplerWithSeed([]byte("modring"))

	sample := func() int64 {
		return csprng.Sample[int64](s) % (1 << 15)
	}

	// Ring methods agree with the corresponding modular free functions.
	for i := 0; i < 256; i++ {
		a, b := sample(), sample()

		assert.Equal(t, ring.Reduce(a), modular.Constrain(a, uint64(13)))
		assert.Equal(t, ring.Add(a, b), modular.AddMod(a, b, uint64(13)))
		assert.Equal(t, ring.Sub(a, b), modular.SubMod(a, b, uint64(13)))
		assert.Equal(t, ring.Mul(a, b), modular.MulMod(a, b, uint64(13)))
		assert.Equal(t, ring.Eq(a, b), modular.EqMod(a, b, uint64(13)))

		inverse, ok := ring.Inv(a)
		inverseWant, okWant := modular.Invert(a, uint64(13))
		assert.Equal(t, okWant, ok)
		assert.Equal(t, inverseWant, inverse)

		quotient, ok := ring.Div(a, b)
		quotientWant, okWant := modular.DivMod(a, b, uint64(13))
		assert.Equal(t, okWant, ok)
		assert.Equal(t, quotientWant, quotient)

		e := int64(s.SampleN(32))
		assert.Equal(t, ring.Pow(a, e), modular.PowMod(a, e, uint64(13)))
	}
}

func TestRingInv(t *testing.T) {
	ring := modring.New(11)

	t.Run("Invertible", func(t *testing.T) {
		for _, c := range []struct{ a, inverse int }{
			{3, 4}, {5, 9}, {7, 8}, {9, 5}, {10, 10}, {-3, 7},
		} {
			inverse, ok := ring.Inv(c.a)
			assert.True(t, ok)
			assert.Equal(t, c.inverse, inverse)
		}
	})

	t.Run("NotInvertible", func(t *testing.T) {
		_, ok := ring.Inv(0)
		assert.False(t, ok)
		_, ok = ring.Inv(11)
		assert.False(t, ok)
	})
}

func TestRingPow(t *testing.T) {
	ring := modring.New(11)

	assert.Equal(t, 10, ring.Pow(10, 3))
	assert.Equal(t, 1, ring.Pow(10, 0))
	assert.Panics(t, func() { ring.Pow(10, -1) })
}
