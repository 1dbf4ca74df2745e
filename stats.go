package hashset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stats describes how the elements of a set are spread over its buckets.
type Stats struct {
	Len          int
	Buckets      int
	LoadFactor   float64 // configured growth threshold
	Load         float64 // Len / Buckets
	EmptyBuckets int
	LongestChain int

	// MeanChain and StdDevChain are the mean and sample standard deviation
	// of the bucket lengths.
	MeanChain   float64
	StdDevChain float64
}

// String implements the fmt.Stringer interface for Stats.
func (st Stats) String() string {
	return fmt.Sprintf(
		"len=%d buckets=%d load=%.3f/%.3f empty=%d longest=%d chain=%.3f±%.3f",
		st.Len, st.Buckets, st.Load, st.LoadFactor,
		st.EmptyBuckets, st.LongestChain, st.MeanChain, st.StdDevChain,
	)
}

// Stats returns a snapshot of the bucket distribution.
func (s *HashSet[T]) Stats() Stats {
	st := Stats{
		Len:        s.count,
		Buckets:    len(s.buckets),
		LoadFactor: s.LoadFactor(),
	}
	if st.Buckets == 0 {
		return st
	}

	lengths := make([]float64, len(s.buckets))
	for i := range s.buckets {
		n := s.buckets[i].len()
		lengths[i] = float64(n)
		if n == 0 {
			st.EmptyBuckets++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	st.Load = float64(s.count) / float64(st.Buckets)

	if len(lengths) > 1 {
		st.MeanChain, st.StdDevChain = stat.MeanStdDev(lengths, nil)
	} else {
		st.MeanChain = lengths[0]
	}
	return st
}
