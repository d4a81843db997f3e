package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/finance-calculators/finance"
)

func TestSavingsFutureValue_ZeroRate_Exact(t *testing.T) {
	// GIVEN: $100/month for a year with no growth
	res, err := finance.SavingsFutureValue(finance.SavingsFutureValueInput{
		PresentValue:          0,
		ContributionPerPeriod: 100,
		AnnualRatePercent:     0,
		Years:                 1,
		TimesPerYear:          12,
	})
	require.NoError(t, err)

	// THEN: exactly the sum of contributions
	assert.Equal(t, 1200.00, res.FutureValue)
	assert.Equal(t, 1200.00, res.TotalContributions)
	assert.Equal(t, 0.00, res.InterestEarned)
}

func TestSavingsFutureValue_PresentValueGrowth(t *testing.T) {
	// Same growth math as compound interest on the principal side.
	res, err := finance.SavingsFutureValue(finance.SavingsFutureValueInput{
		PresentValue:      1000,
		AnnualRatePercent: 5,
		Years:             1,
		TimesPerYear:      12,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1051.16, res.FutureValue, 0.01)
	assert.InDelta(t, 51.16, res.InterestEarned, 0.01)
	assert.Equal(t, 0.00, res.TotalContributions)
}

func TestSavingsFutureValue_BalancePlusContributions(t *testing.T) {
	// GIVEN: $5000 starting balance plus $200/month at 4% for 10 years
	res, err := finance.SavingsFutureValue(finance.SavingsFutureValueInput{
		PresentValue:          5000,
		ContributionPerPeriod: 200,
		AnnualRatePercent:     4,
		Years:                 10,
		TimesPerYear:          12,
	})
	require.NoError(t, err)

	assert.Equal(t, 24000.00, res.TotalContributions)
	// fv = 5000*(1+0.04/12)^120 + 200*(((1+0.04/12)^120 - 1)/(0.04/12))
	assert.InDelta(t, 7454.16+29449.85, res.FutureValue, 1.0)
	assert.InDelta(t, res.FutureValue-29000.00, res.InterestEarned, 0.01)
}

func TestSavingsFutureValue_FrequencyBelowOne_Rejected(t *testing.T) {
	_, err := finance.SavingsFutureValue(finance.SavingsFutureValueInput{
		ContributionPerPeriod: 100,
		Years:                 1,
		TimesPerYear:          0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, finance.ErrInvalidArgument)
	assert.True(t, finance.IsClientError(err))
}
