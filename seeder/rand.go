package seeder

import (
	"math/rand"
	"time"

	"github.com/yeremiapane/spot-seeder/config"
)

// choice samples one value from an ordered value list using a weight table,
// via cumulative-distribution selection. Weight tables are validated by
// config.Validate before a run; a zero-total table falls back to the last
// value.
func choice[T comparable](rng *rand.Rand, values []T, weights map[T]float64) T {
	var total float64
	for _, v := range values {
		total += weights[v]
	}
	target := rng.Float64() * total
	var cum float64
	for _, v := range values {
		cum += weights[v]
		if target < cum {
			return v
		}
	}
	return values[len(values)-1]
}

// pick returns a uniformly chosen element.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// sample draws n distinct elements without replacement; n is clamped to the
// slice length.
func sample[T any](rng *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for _, i := range rng.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}

// between draws an int from an inclusive range.
func between(rng *rand.Rand, r config.Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// intBetween draws from [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// pastTime returns a random timestamp between startDaysAgo and endDaysAgo in
// the past. The hour and minute jitter goes backwards so a draw at
// endDaysAgo=0 never lands in the future.
func pastTime(rng *rand.Rand, startDaysAgo, endDaysAgo int) time.Time {
	days := intBetween(rng, endDaysAgo, startDaysAgo)
	t := time.Now().AddDate(0, 0, -days)
	return t.Add(-(time.Duration(rng.Intn(24))*time.Hour + time.Duration(rng.Intn(60))*time.Minute))
}

// minutesAfter returns t advanced by a random [min, max] minute offset. With
// min >= 1 the result is strictly later than t.
func minutesAfter(rng *rand.Rand, t time.Time, min, max int) time.Time {
	return t.Add(time.Duration(intBetween(rng, min, max)) * time.Minute)
}

// updatedAfter produces an updated_at some days and hours past created_at.
func updatedAfter(rng *rand.Rand, created time.Time) time.Time {
	return created.Add(time.Duration(rng.Intn(31))*24*time.Hour + time.Duration(rng.Intn(24))*time.Hour)
}
