// Package csprng implements a seedable uniform sampler over machine
// integers. It backs the randomized tests and benchmarks of this module,
// so that failures reproduce from a fixed seed.
package csprng

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/exp/constraints"
)

// bufSize is the buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from the uniform distribution.
// This uses blake2b as an underlying prng.
type UniformSampler struct {
	prng blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler with a random seed.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler with a user
// supplied seed. Samplers with equal seeds produce equal sample streams.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}
	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prng: prng,

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// SampleUint64 uniformly samples a uint64.
func (s *UniformSampler) SampleUint64() uint64 {
	if s.ptr == bufSize {
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	res := binary.LittleEndian.Uint64(s.buf[s.ptr:])
	s.ptr += 8
	return res
}

// SampleN uniformly samples a uint64 in [0, N), using rejection sampling
// to avoid modulo bias.
func (s *UniformSampler) SampleN(N uint64) uint64 {
	bound := uint64(math.MaxUint64) - (math.MaxUint64 % N)
	for {
		res := s.SampleUint64()
		if res < bound {
			return res % N
		}
	}
}

// Sample uniformly samples an integer of type T.
func Sample[T constraints.Integer](s *UniformSampler) T {
	return T(s.SampleUint64())
}
