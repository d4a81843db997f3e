/*
Package finance provides the pure calculator engine.

PURPOSE:
  This package contains the closed-form financial formulas and their
  computation preconditions. It knows nothing about HTTP, JSON, or
  configuration: every function is a pure mapping from a validated
  input struct to a result struct.

KEY CONCEPTS IN THIS FILE (types.go):
  - *Input:  validated parameters for one calculator
  - *Result: computed output, monetary fields already rounded to
    2 decimal places

DESIGN PRINCIPLES:
  1. Purity: identical input always yields identical output; no
     hidden state, no I/O
  2. Full precision: intermediate math stays in float64; rounding
     happens once, when the result struct is built
  3. Defensive preconditions: each calculator re-checks the
     preconditions its formula depends on (compounding frequency,
     payment count, total weight), so the package is safe even when
     called without the API validation layer in front of it

USAGE:
  res, err := finance.CompoundInterest(finance.CompoundInterestInput{
      Principal:         1000,
      AnnualRatePercent: 5,
      TimesPerYear:      12,
      Years:             1,
  })

SEE ALSO:
  - interest.go: simple and compound interest
  - loan.go: amortization payment
  - savings.go: future value of savings
  - rentsplit.go: weighted rent/utility split
  - errors.go: precondition error types
*/
package finance

// =============================================================================
// SIMPLE INTEREST
// =============================================================================

// SimpleInterestInput holds the parameters for a simple interest
// calculation. Principal and Years must be positive, the rate
// non-negative; the API layer enforces these bounds.
type SimpleInterestInput struct {
	Principal         float64
	AnnualRatePercent float64
	Years             float64
}

// SimpleInterestResult is the outcome of a simple interest calculation.
type SimpleInterestResult struct {
	Principal float64
	Interest  float64
	Total     float64
}

// =============================================================================
// COMPOUND INTEREST
// =============================================================================

// CompoundInterestInput holds the parameters for a compound interest
// calculation with optional end-of-period contributions.
type CompoundInterestInput struct {
	Principal             float64
	AnnualRatePercent     float64
	TimesPerYear          int // compounding periods per year, must be >= 1
	Years                 float64
	ContributionPerPeriod float64
}

// CompoundInterestResult is the outcome of a compound interest
// calculation.
type CompoundInterestResult struct {
	FutureValue        float64
	InterestEarned     float64
	Principal          float64
	TotalContributions float64
}

// =============================================================================
// LOAN PAYMENT
// =============================================================================

// LoanPaymentInput holds the parameters for a fixed-payment loan
// amortization calculation.
type LoanPaymentInput struct {
	Principal         float64
	AnnualRatePercent float64
	Years             float64
	PaymentsPerYear   int // must be >= 1
}

// LoanPaymentResult is the outcome of a loan payment calculation.
// NumberOfPayments is an exact integer, never rounded.
type LoanPaymentResult struct {
	PaymentPerPeriod float64
	NumberOfPayments int
	TotalPaid        float64
	TotalInterest    float64
}

// =============================================================================
// SAVINGS FUTURE VALUE
// =============================================================================

// SavingsFutureValueInput holds the parameters for projecting the
// future value of a present balance plus periodic contributions.
type SavingsFutureValueInput struct {
	PresentValue          float64
	ContributionPerPeriod float64
	AnnualRatePercent     float64
	Years                 float64
	TimesPerYear          int // must be >= 1
}

// SavingsFutureValueResult is the outcome of a savings projection.
type SavingsFutureValueResult struct {
	FutureValue        float64
	InterestEarned     float64
	TotalContributions float64
}

// =============================================================================
// RENT SPLIT
// =============================================================================

// RoommateShare is one participant in a rent split. Weight expresses
// the participant's proportional share and must be positive.
type RoommateShare struct {
	Name   string
	Weight float64
}

// RentSplitInput holds the parameters for a weighted rent/utility
// split across at least one roommate.
type RentSplitInput struct {
	TotalRent      float64
	TotalUtilities float64
	Roommates      []RoommateShare
}

// RoommateAmount is one roommate's computed share. Weight is echoed
// unrounded; Amount is rounded to 2 decimals.
type RoommateAmount struct {
	Name   string
	Weight float64
	Amount float64
}

// RentSplitResult is the outcome of a rent split. Roommates preserves
// the input order.
type RentSplitResult struct {
	Total     float64
	Roommates []RoommateAmount
}
