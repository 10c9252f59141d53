// Package dataset builds the synthetic demo case collection. All
// randomness flows through one seeded Stream so the dataset is
// reproducible bit-for-bit for a given seed and count.
package dataset

// Stream is a mulberry32 pseudo-random number generator. The same seed
// always yields the same sequence; there is no reseeding.
type Stream struct {
	state uint32
}

// NewStream returns a Stream seeded with the given 32-bit value
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// Next returns the next value in [0, 1)
func (s *Stream) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}
