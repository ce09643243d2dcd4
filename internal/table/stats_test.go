package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanMinMaxSum(t *testing.T) {
	vals := []float64{2, 4, 6, 8}
	assert.Equal(t, 5.0, Mean(vals))
	assert.Equal(t, 2.0, Min(vals))
	assert.Equal(t, 8.0, Max(vals))
	assert.Equal(t, 20.0, Sum(vals))

	assert.True(t, math.IsNaN(Mean(nil)))
	assert.True(t, math.IsNaN(Min(nil)))
	assert.True(t, math.IsNaN(Max(nil)))
	assert.Equal(t, 0.0, Sum(nil))
}

func TestStdSampleDenominator(t *testing.T) {
	// Sample std of {2,4,4,4,5,5,7,9} with n-1: sqrt(32/7).
	vals := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, math.Sqrt(32.0/7.0), Std(vals), 1e-12)
	assert.True(t, math.IsNaN(Std([]float64{3})))
}

func TestQuantileLinearInterpolation(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.75, Quantile(vals, 0.25), 1e-12)
	assert.InDelta(t, 2.5, Quantile(vals, 0.50), 1e-12)
	assert.InDelta(t, 3.25, Quantile(vals, 0.75), 1e-12)
	assert.Equal(t, 1.0, Quantile(vals, 0))
	assert.Equal(t, 4.0, Quantile(vals, 1))
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
}

func TestAggregate(t *testing.T) {
	vals := []float64{1, 2, 3}
	assert.Equal(t, 1.0, Aggregate("min", vals))
	assert.Equal(t, 3.0, Aggregate("max", vals))
	assert.Equal(t, 6.0, Aggregate("sum", vals))
	assert.Equal(t, 3.0, Aggregate("count", vals))
	assert.Equal(t, 2.0, Aggregate("mean", vals))
	// Unknown verbs fall back to mean.
	assert.Equal(t, 2.0, Aggregate("median", vals))
}

func TestDescribe(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})
	assert.Equal(t, 4.0, d.Count)
	assert.Equal(t, 2.5, d.Mean)
	assert.Equal(t, 1.0, d.Min)
	assert.Equal(t, 4.0, d.Max)
	assert.InDelta(t, 2.5, d.Q50, 1e-12)
	assert.Len(t, d.Values(), len(DescribeLabels))
}

func TestPearson(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	// Perfect positive and negative correlations.
	assert.InDelta(t, 1.0, Pearson(xs, []float64{2, 4, 6, 8, 10}), 1e-12)
	assert.InDelta(t, -1.0, Pearson(xs, []float64{10, 8, 6, 4, 2}), 1e-12)

	// Zero variance on one side.
	assert.True(t, math.IsNaN(Pearson(xs, []float64{3, 3, 3, 3, 3})))

	// Too few pairs or mismatched lengths.
	assert.True(t, math.IsNaN(Pearson([]float64{1}, []float64{2})))
	assert.True(t, math.IsNaN(Pearson(xs, []float64{1, 2})))
}
