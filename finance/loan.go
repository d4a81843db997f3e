package finance

import "math"

// LoanPayment computes the fixed periodic payment amortizing a loan
// over floor(paymentsPerYear * years) payments.
//
// The payment count is truncated, not rounded: 12 payments/year over
// 1.9 years is 22 payments. A term too short to cover a single payment
// period (e.g. 0.05 years at 12 payments/year) is rejected rather than
// allowed to divide by zero.
func LoanPayment(in LoanPaymentInput) (LoanPaymentResult, error) {
	if in.PaymentsPerYear < 1 {
		return LoanPaymentResult{}, &InvalidArgumentError{
			Field:   "payments_per_year",
			Message: "must be >= 1",
		}
	}

	r := (in.AnnualRatePercent / 100.0) / float64(in.PaymentsPerYear)
	n := int(float64(in.PaymentsPerYear) * in.Years)
	if n < 1 {
		return LoanPaymentResult{}, &InvalidArgumentError{
			Field:   "years",
			Message: "term must cover at least one payment period",
		}
	}

	var payment float64
	if r == 0 {
		payment = in.Principal / float64(n)
	} else {
		// Standard amortization: P * (r * (1+r)^N) / ((1+r)^N - 1)
		growth := math.Pow(1+r, float64(n))
		payment = in.Principal * (r * growth) / (growth - 1)
	}

	totalPaid := payment * float64(n)
	if err := checkFinite(payment, totalPaid); err != nil {
		return LoanPaymentResult{}, err
	}

	return LoanPaymentResult{
		PaymentPerPeriod: Round2(payment),
		NumberOfPayments: n,
		TotalPaid:        Round2(totalPaid),
		TotalInterest:    Round2(totalPaid - in.Principal),
	}, nil
}
