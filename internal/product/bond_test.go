package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnown(t *testing.T) {
	b := Lookup("9128283F5")
	assert.Equal(t, "US10Y", b.Ticker)
	assert.Equal(t, 0.02250, b.Coupon)
	assert.Equal(t, 2027, b.Maturity.Year())
	assert.Equal(t, "9128283F5", b.ProductID())
}

func TestLookupUnknownYieldsZeroBond(t *testing.T) {
	b := Lookup("XXXXXXXXX")
	assert.Equal(t, Bond{}, b)
	assert.Equal(t, "", b.ProductID())
}

func TestCUSIPByTicker(t *testing.T) {
	cusip, ok := CUSIPByTicker("US30Y")
	require.True(t, ok)
	assert.Equal(t, "912810RZ3", cusip)

	_, ok = CUSIPByTicker("US50Y")
	assert.False(t, ok)
}

func TestAllInMaturityOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Maturity.Before(all[i].Maturity))
	}
}

func TestPV01Table(t *testing.T) {
	assert.True(t, PV01("9128283F5").Equal(decimal.RequireFromString("0.08161449")))
	assert.True(t, PV01("unknown").IsZero())
}

func TestDefaultBucketsPartition(t *testing.T) {
	buckets := DefaultBuckets()
	require.Len(t, buckets, 2)

	seen := make(map[string]bool)
	for _, members := range buckets {
		for _, cusip := range members {
			assert.False(t, seen[cusip], "cusip %s in two buckets", cusip)
			seen[cusip] = true
			assert.NotEmpty(t, Lookup(cusip).Ticker)
		}
	}
	assert.Len(t, seen, 6)
}
