// Package bloom provides a Bloom filter over entry locations so that
// lookups of absent anchors can return without scanning the index.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docindex"
)

// DefaultFalsePositiveRate is used by NewLocationFilterFunc callers that do
// not need a specific rate.
const DefaultFalsePositiveRate = 0.01

// Ensure Filter implements docindex.LocationFilter at compile time.
var _ docindex.LocationFilter = (*Filter)(nil)

// Filter wraps a Bloom filter of locations.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected locations
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewLocationFilterFunc returns a constructor suitable for
// docindex.WithLocationFilter.
func NewLocationFilterFunc(fpRate float64) func(n uint) docindex.LocationFilter {
	return func(n uint) docindex.LocationFilter {
		return NewFilter(n, fpRate)
	}
}

// Add adds a location to the filter.
func (f *Filter) Add(location string) {
	f.f.AddString(location)
}

// Test returns true if the location might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(location string) bool {
	return f.f.TestString(location)
}

// EstimatedCount returns the approximate number of distinct locations added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
