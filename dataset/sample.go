package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/evidence-for-accountability/ecc-tracker-api/models"
)

// Sampling error kinds
var (
	ErrEmptyPool        = errors.New("empty sampling pool")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Sampler draws values from pools and date ranges using one shared
// Stream
type Sampler struct {
	r *Stream
}

// NewSampler returns a Sampler backed by the given Stream
func NewSampler(r *Stream) *Sampler {
	return &Sampler{r: r}
}

// Pick returns one element of pool, chosen by the next draw
func (s *Sampler) Pick(pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return pool[int(s.r.Next()*float64(len(pool)))], nil
}

// SampleDate returns a YYYY-MM-DD date drawn uniformly between start
// (inclusive) and end, truncated to day granularity
func (s *Sampler) SampleDate(start, end string) (string, error) {
	ts, err := models.ParseDate(start)
	if err != nil {
		return "", err
	}
	te, err := models.ParseDate(end)
	if err != nil {
		return "", err
	}
	if ts.After(te) {
		return "", fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	lo := ts.UnixMilli()
	hi := te.UnixMilli()
	at := lo + int64(s.r.Next()*float64(hi-lo))
	return time.UnixMilli(at).UTC().Format(models.DateLayout), nil
}
