package noise

import (
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Seed selects a noise permutation and origin. Zero means "pick one at random".
type Seed uint32

// Clock supplies the current time for seed randomization.
type Clock func() time.Time

// Resolve returns seed unchanged unless it is zero, in which case a non-zero
// seed is derived from clock. A nil clock uses time.Now.
func Resolve(seed Seed, clock Clock) Seed {
	if seed != 0 {
		return seed
	}
	if clock == nil {
		clock = time.Now
	}
	var buf [8]byte
	ns := uint64(clock().UnixNano())
	for i := range buf {
		buf[i] = byte(ns >> (8 * i))
	}
	h := xxhash.Sum64(buf[:])
	s := Seed(h ^ h>>32)
	if s == 0 {
		s = 1
	}
	return s
}

// FromString derives a stable seed from a name, so worlds can be shared by name.
func FromString(name string) Seed {
	if name == "" {
		return 0
	}
	h := xxhash.Sum64String(name)
	s := Seed(h ^ h>>32)
	if s == 0 {
		s = 1
	}
	return s
}

// Origin returns the noise-space origin offset for a seed.
func Origin(seed Seed) float64 {
	return math.Sqrt(float64(seed))
}
