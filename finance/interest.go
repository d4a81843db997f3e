/*
interest.go - Simple and compound interest calculators

FORMULAS:
  Simple:    interest = P * (R/100) * T
  Compound:  fv = P * (1 + r/n)^(n*T), r = R/100
  Annuity:   contributions made at the end of each period grow to
             c * (((1 + r/n)^(n*T) - 1) / (r/n)); with a zero rate the
             series degenerates to c * n * T exactly

SEE ALSO:
  - savings.go: same annuity math applied to a present balance
*/
package finance

import "math"

// SimpleInterest computes non-compounding interest over the term.
// Input bounds are enforced at the API boundary; the only failure mode
// is arithmetic overflow of extreme inputs.
func SimpleInterest(in SimpleInterestInput) (SimpleInterestResult, error) {
	interest := in.Principal * (in.AnnualRatePercent / 100.0) * in.Years
	total := in.Principal + interest
	if err := checkFinite(interest, total); err != nil {
		return SimpleInterestResult{}, err
	}

	return SimpleInterestResult{
		Principal: Round2(in.Principal),
		Interest:  Round2(interest),
		Total:     Round2(total),
	}, nil
}

// CompoundInterest computes the future value of a principal compounded
// n times per year plus an ordinary annuity of end-of-period
// contributions. Returns an InvalidArgumentError if the compounding
// frequency is below 1.
func CompoundInterest(in CompoundInterestInput) (CompoundInterestResult, error) {
	if in.TimesPerYear < 1 {
		return CompoundInterestResult{}, &InvalidArgumentError{
			Field:   "times_per_year",
			Message: "must be >= 1",
		}
	}

	r := in.AnnualRatePercent / 100.0
	n := float64(in.TimesPerYear)
	growth := math.Pow(1+r/n, n*in.Years)

	fvPrincipal := in.Principal * growth

	// Zero-rate contributions sum exactly, with no exponentiation drift.
	var fvContrib float64
	switch {
	case in.ContributionPerPeriod > 0 && r > 0:
		fvContrib = in.ContributionPerPeriod * ((growth - 1) / (r / n))
	case in.ContributionPerPeriod > 0:
		fvContrib = in.ContributionPerPeriod * n * in.Years
	}

	total := fvPrincipal + fvContrib
	contributions := in.ContributionPerPeriod * n * in.Years
	if err := checkFinite(total, contributions); err != nil {
		return CompoundInterestResult{}, err
	}

	return CompoundInterestResult{
		FutureValue:        Round2(total),
		InterestEarned:     Round2(total - (in.Principal + contributions)),
		Principal:          Round2(in.Principal),
		TotalContributions: Round2(contributions),
	}, nil
}
