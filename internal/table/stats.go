package table

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of vals, or NaN for an empty slice.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Min returns the smallest value, or NaN for an empty slice.
func Min(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest value, or NaN for an empty slice.
func Max(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Sum returns the total of vals; an empty slice sums to zero.
func Sum(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum
}

// Std returns the sample standard deviation (n-1 denominator), or NaN with
// fewer than two values.
func Std(vals []float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	m := Mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

// Quantile returns the q-th quantile of vals using linear interpolation
// between order statistics.
func Quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Aggregate applies an aggregation verb ("mean", "min", "max", "sum",
// "count") to vals. count returns the number of values; unknown verbs fall
// back to mean.
func Aggregate(verb string, vals []float64) float64 {
	switch verb {
	case "min":
		return Min(vals)
	case "max":
		return Max(vals)
	case "sum":
		return Sum(vals)
	case "count":
		return float64(len(vals))
	default:
		return Mean(vals)
	}
}

// DescribeStats holds the standard descriptive statistics for one numeric
// column, in the order they are reported.
type DescribeStats struct {
	Count float64
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// DescribeLabels names the DescribeStats fields in report order.
var DescribeLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Values returns the statistics in report order.
func (d DescribeStats) Values() []float64 {
	return []float64{d.Count, d.Mean, d.Std, d.Min, d.Q25, d.Q50, d.Q75, d.Max}
}

// Describe computes count, mean, sample std, min, quartiles and max over
// the non-missing values.
func Describe(vals []float64) DescribeStats {
	return DescribeStats{
		Count: float64(len(vals)),
		Mean:  Mean(vals),
		Std:   Std(vals),
		Min:   Min(vals),
		Q25:   Quantile(vals, 0.25),
		Q50:   Quantile(vals, 0.50),
		Q75:   Quantile(vals, 0.75),
		Max:   Max(vals),
	}
}

// Pearson computes the Pearson correlation coefficient between two equal
// length samples. It returns NaN when either side has zero variance or the
// samples hold fewer than two pairs.
func Pearson(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return math.NaN()
	}
	mx := Mean(xs)
	my := Mean(ys)
	var num, dx2, dy2 float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		num += dx * dy
		dx2 += dx * dx
		dy2 += dy * dy
	}
	denom := math.Sqrt(dx2 * dy2)
	if denom == 0 {
		return math.NaN()
	}
	r := num / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
