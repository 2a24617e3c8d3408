// Package pricing holds the pure arithmetic of the estimate engine. It is the
// single computation site for item cost and price; both the create path and
// any pre-check caller go through these functions.
package pricing

import (
	"math"

	"paving_estimates/internal/domain/entities"
)

// Cost computes the raw expense of an item before margin. Materials are
// priced per quantity alone; labor and equipment also multiply by time.
//
// Callers pass already-defaulted non-negative numbers, so the result is
// always finite and non-negative.
func Cost(units, ratePrice, timeSpent float64, itemType entities.ItemType) float64 {
	if itemType == entities.ItemTypeMaterials {
		return units * ratePrice
	}
	return units * timeSpent * ratePrice
}

// Price inflates cost by a percentage margin: cost / (1 - margin/100).
//
// The validator guarantees 0 <= margin < 100; a margin of 100 would divide by
// zero and anything above would yield a negative price.
func Price(cost, margin float64) float64 {
	return cost / (1 - margin/100.0)
}

// Round2 rounds to 2 decimal places, half away from zero. Applied to
// aggregate totals only; per-item values are stored as computed.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
