package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-calculators/finance"
)

// =============================================================================
// SIMPLE INTEREST
// =============================================================================

func TestSimpleInterest_Basic(t *testing.T) {
	// GIVEN: $1000 at 5% for 2 years
	res, err := finance.SimpleInterest(finance.SimpleInterestInput{
		Principal:         1000,
		AnnualRatePercent: 5,
		Years:             2,
	})
	require.NoError(t, err)

	// THEN: interest is exactly P * r * t
	assert.Equal(t, 1000.00, res.Principal)
	assert.Equal(t, 100.00, res.Interest)
	assert.Equal(t, 1100.00, res.Total)
}

func TestSimpleInterest_ZeroRate(t *testing.T) {
	res, err := finance.SimpleInterest(finance.SimpleInterestInput{
		Principal:         500,
		AnnualRatePercent: 0,
		Years:             10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.00, res.Interest)
	assert.Equal(t, 500.00, res.Total)
}

func TestSimpleInterest_RoundsToCents(t *testing.T) {
	// 333.33 * 0.0333 * 1 = 11.099889 -> 11.10
	res, err := finance.SimpleInterest(finance.SimpleInterestInput{
		Principal:         333.33,
		AnnualRatePercent: 3.33,
		Years:             1,
	})
	require.NoError(t, err)

	assert.Equal(t, 11.10, res.Interest)
	assert.Equal(t, 344.43, res.Total)
}

func TestSimpleInterest_Overflow_Rejected(t *testing.T) {
	// GIVEN: schema-valid extremes whose product overflows float64
	// WHEN: the interest computation produces +Inf
	_, err := finance.SimpleInterest(finance.SimpleInterestInput{
		Principal:         1e308,
		AnnualRatePercent: 100,
		Years:             100,
	})

	// THEN: rejected as invalid input, never a panic
	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrInvalidArgument)
	assert.True(t, finance.IsClientError(err))
}

// =============================================================================
// COMPOUND INTEREST
// =============================================================================

func TestCompoundInterest_MonthlyCompounding(t *testing.T) {
	// GIVEN: $1000 at 5% compounded monthly for 1 year, no contributions
	res, err := finance.CompoundInterest(finance.CompoundInterestInput{
		Principal:         1000,
		AnnualRatePercent: 5,
		TimesPerYear:      12,
		Years:             1,
	})
	require.NoError(t, err)

	// THEN: future value matches (1 + 0.05/12)^12
	assert.InDelta(t, 1051.16, res.FutureValue, 0.01)
	assert.InDelta(t, 51.16, res.InterestEarned, 0.01)
	assert.Equal(t, 1000.00, res.Principal)
	assert.Equal(t, 0.00, res.TotalContributions)
}

func TestCompoundInterest_ZeroRateContributions_Exact(t *testing.T) {
	// GIVEN: zero rate with monthly contributions
	res, err := finance.CompoundInterest(finance.CompoundInterestInput{
		Principal:             0,
		AnnualRatePercent:     0,
		TimesPerYear:          12,
		Years:                 2,
		ContributionPerPeriod: 50,
	})
	require.NoError(t, err)

	// THEN: contributions sum exactly to c * n * t, no exponentiation drift
	assert.Equal(t, 1200.00, res.FutureValue)
	assert.Equal(t, 1200.00, res.TotalContributions)
	assert.Equal(t, 0.00, res.InterestEarned)
}

func TestCompoundInterest_WithContributions(t *testing.T) {
	// GIVEN: $1000 principal plus $100/month at 6% for 1 year
	res, err := finance.CompoundInterest(finance.CompoundInterestInput{
		Principal:             1000,
		AnnualRatePercent:     6,
		TimesPerYear:          12,
		Years:                 1,
		ContributionPerPeriod: 100,
	})
	require.NoError(t, err)

	// Ordinary annuity: 100 * ((1.005^12 - 1) / 0.005) = 1233.56
	assert.InDelta(t, 1061.68+1233.56, res.FutureValue, 0.02)
	assert.Equal(t, 1200.00, res.TotalContributions)
	// interest = fv - (principal + contributions)
	assert.InDelta(t, res.FutureValue-2200.00, res.InterestEarned, 0.001)
}

func TestCompoundInterest_ZeroYears(t *testing.T) {
	res, err := finance.CompoundInterest(finance.CompoundInterestInput{
		Principal:         1000,
		AnnualRatePercent: 5,
		TimesPerYear:      12,
		Years:             0,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.00, res.FutureValue)
	assert.Equal(t, 0.00, res.InterestEarned)
}

func TestCompoundInterest_Overflow_Rejected(t *testing.T) {
	// 1e308 doubling annually for a century overflows immediately
	_, err := finance.CompoundInterest(finance.CompoundInterestInput{
		Principal:         1e308,
		AnnualRatePercent: 100,
		TimesPerYear:      1,
		Years:             100,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrInvalidArgument)
}

func TestCompoundInterest_FrequencyBelowOne_Rejected(t *testing.T) {
	// WHEN: times_per_year reaches the formula layer as 0
	_, err := finance.CompoundInterest(finance.CompoundInterestInput{
		Principal:         1000,
		AnnualRatePercent: 5,
		TimesPerYear:      0,
		Years:             1,
	})

	// THEN: rejected rather than producing an infinite or NaN value
	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrInvalidArgument)
	assert.True(t, finance.IsClientError(err))
}
