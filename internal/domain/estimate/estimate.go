package estimate

import "gonum.org/v1/gonum/stat"

// Dressing-percentage table: additive, independent adjustments on a common
// base. The result is intentionally not clamped; unusual breed/condition
// combinations report whatever the table yields.
const (
	dressingBase      = 0.58
	beefAdjustment    = 0.02
	dairyAdjustment   = -0.03
	thinAdjustment    = -0.04
	goodAdjustment    = 0.02
	excellentAdjust   = 0.04
	cmPerInch         = 2.54
	poundsToKilograms = 0.454
)

// DressingPercentage returns the fraction of live weight expected to dress
// out as carcass for the given breed and condition.
func DressingPercentage(breed Breed, condition Condition) float64 {
	pct := dressingBase
	switch {
	case breed.IsBeef():
		pct += beefAdjustment
	case breed.IsDairy():
		pct += dairyAdjustment
	}
	switch condition {
	case Thin:
		pct += thinAdjustment
	case Good:
		pct += goodAdjustment
	case Excellent:
		pct += excellentAdjust
	case Average:
		// no adjustment
	}
	return pct
}

// LiveWeightKg estimates live weight from heart girth and body length, both
// in centimeters. Three empirical formulas are averaged; the first needs a
// body length, so with only a girth the estimate falls back to the mean of
// the remaining two. A non-positive girth yields zero.
func LiveWeightKg(girthCm, lengthCm float64) float64 {
	if girthCm <= 0 {
		return 0
	}

	// Girth-and-length formula (metric), girth-only metric formula, and the
	// classic girth-in-inches tape formula converted to kilograms.
	wGirthLength := girthCm*girthCm*lengthCm*0.000078 + 40
	wGirthMetric := girthCm * girthCm * 0.00065 * poundsToKilograms
	girthIn := girthCm / cmPerInch
	wGirthTape := (girthIn + 18) * (girthIn + 18) / 300 * 0.45359

	if lengthCm > 0 {
		return stat.Mean([]float64{wGirthLength, wGirthMetric, wGirthTape}, nil)
	}
	return stat.Mean([]float64{wGirthMetric, wGirthTape}, nil)
}

// MeatYieldKg estimates the carcass weight: live weight scaled by the
// breed/condition dressing percentage.
func MeatYieldKg(girthCm, lengthCm float64, breed Breed, condition Condition) float64 {
	return LiveWeightKg(girthCm, lengthCm) * DressingPercentage(breed, condition)
}
