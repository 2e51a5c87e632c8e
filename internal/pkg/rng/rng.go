// Package rng provides the injectable random source every resolver rolls
// against. Production code uses a PCG-seeded source; tests either seed it
// for reproducible statistics or script exact outcomes with a Stub.
package rng

import (
	"math/rand/v2"
)

// Roller is the random interface the resolvers consume.
type Roller interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

type source struct {
	r *rand.Rand
}

// New returns a Roller seeded from the two given values.
func New(seed1, seed2 uint64) Roller {
	return &source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewSystem returns a Roller backed by the process-wide random source.
func NewSystem() Roller {
	return systemSource{}
}

func (s *source) Intn(n int) int {
	return s.r.IntN(n)
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}

type systemSource struct{}

func (systemSource) Intn(n int) int {
	return rand.IntN(n)
}

func (systemSource) Float64() float64 {
	return rand.Float64()
}

// IntBetween returns a uniform int in [min, max] inclusive.
func IntBetween(r Roller, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Stub is a scripted Roller for tests. Queued values are returned in order;
// when a queue runs dry the zero value is returned, which selects the first
// entry of any weighted table.
type Stub struct {
	Ints   []int
	Floats []float64
}

// Intn pops the next scripted int.
func (s *Stub) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// Float64 pops the next scripted float.
func (s *Stub) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
