package keyvalue

import (
	"github.com/cespare/xxhash/v2"
	"github.com/steakknife/bloomfilter"
)

type BloomFilterParams struct {
	// N is how many items will be added to the filter.
	N int
	// FalsePositiveProbability is acceptable false positive rate {0..1}.
	FalsePositiveProbability float64
	// Disable turns the filter off entirely.
	Disable bool
}

func NewBloomFilterParams(n int, falsePositiveProbability float64) BloomFilterParams {
	return BloomFilterParams{N: n, FalsePositiveProbability: falsePositiveProbability}
}

type bloomFilter struct {
	filter *bloomfilter.Filter
}

func newBloomFilter(params BloomFilterParams) (*bloomFilter, error) {
	if params.Disable {
		return nil, nil
	}
	bf, err := bloomfilter.NewOptimal(uint64(params.N), params.FalsePositiveProbability)
	if err != nil {
		return nil, err
	}
	return &bloomFilter{filter: bf}, nil
}

func (bf *bloomFilter) add(data []byte) {
	h := xxhash.New()
	_, _ = h.Write(data) // xxhash.Write never fails
	bf.filter.Add(h)
}

func (bf *bloomFilter) notInTheSet(data []byte) bool {
	h := xxhash.New()
	_, _ = h.Write(data)
	return !bf.filter.Contains(h)
}
