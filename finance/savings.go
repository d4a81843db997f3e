package finance

import "math"

// SavingsFutureValue projects a present balance plus end-of-period
// contributions forward, compounding n times per year. Returns an
// InvalidArgumentError if the compounding frequency is below 1.
//
// Unlike CompoundInterest, contributions here grow even when the
// periodic amount is the only input (a zero present value is the
// common case for a new savings plan).
func SavingsFutureValue(in SavingsFutureValueInput) (SavingsFutureValueResult, error) {
	if in.TimesPerYear < 1 {
		return SavingsFutureValueResult{}, &InvalidArgumentError{
			Field:   "times_per_year",
			Message: "must be >= 1",
		}
	}

	r := in.AnnualRatePercent / 100.0
	n := float64(in.TimesPerYear)
	growth := math.Pow(1+r/n, n*in.Years)

	fvPresent := in.PresentValue * growth

	var fvContrib float64
	if r == 0 {
		fvContrib = in.ContributionPerPeriod * n * in.Years
	} else {
		fvContrib = in.ContributionPerPeriod * ((growth - 1) / (r / n))
	}

	total := fvPresent + fvContrib
	contributions := in.ContributionPerPeriod * n * in.Years
	if err := checkFinite(total, contributions); err != nil {
		return SavingsFutureValueResult{}, err
	}

	return SavingsFutureValueResult{
		FutureValue:        Round2(total),
		InterestEarned:     Round2(total - (in.PresentValue + contributions)),
		TotalContributions: Round2(contributions),
	}, nil
}
