/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication and the schema
  validation that stands between raw payloads and the finance package.
  Each request type has a Validate() that applies documented defaults,
  checks every declared bound, and only then yields the finance input
  struct. No formula ever executes on invalid data.

NAMING CONVENTION:
  - *Request:  request body types from clients
  - *Response: response types returned to clients

FIELD DEFAULTS:
  Optional fields whose default differs from the Go zero value are
  decoded through pointers, so "absent" and "explicitly zero" stay
  distinguishable:
    times_per_year     1 (compound interest), 12 (savings)
    payments_per_year  12
    weight             1.0
  Required fields are also pointers; a nil required field is a schema
  violation, not a silent zero.

SEE ALSO:
  - handlers.go: decodes into these types
  - finance/errors.go: FieldError returned on violations
*/
package api

import (
	"github.com/warp/finance-calculators/finance"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SimpleInterestRequest is the payload for POST /api/calc/simple-interest.
type SimpleInterestRequest struct {
	Principal         *float64 `json:"principal"`
	AnnualRatePercent *float64 `json:"annual_rate_percent"`
	Years             *float64 `json:"years"`
}

// Validate checks bounds and returns the finance input. All three
// fields are required: principal > 0, rate >= 0, years > 0.
func (r *SimpleInterestRequest) Validate() (finance.SimpleInterestInput, error) {
	principal, err := requirePositive("principal", r.Principal)
	if err != nil {
		return finance.SimpleInterestInput{}, err
	}
	rate, err := requireNonNegative("annual_rate_percent", r.AnnualRatePercent)
	if err != nil {
		return finance.SimpleInterestInput{}, err
	}
	years, err := requirePositive("years", r.Years)
	if err != nil {
		return finance.SimpleInterestInput{}, err
	}

	return finance.SimpleInterestInput{
		Principal:         principal,
		AnnualRatePercent: rate,
		Years:             years,
	}, nil
}

// CompoundInterestRequest is the payload for POST /api/calc/compound-interest.
// Every field is optional; defaults are principal 0, rate 0,
// times_per_year 1, years 0, contribution 0.
type CompoundInterestRequest struct {
	Principal             float64 `json:"principal"`
	AnnualRatePercent     float64 `json:"annual_rate_percent"`
	TimesPerYear          *int    `json:"times_per_year"`
	Years                 float64 `json:"years"`
	ContributionPerPeriod float64 `json:"contribution_per_period"`
}

// Validate checks bounds, applies defaults, and returns the finance input.
func (r *CompoundInterestRequest) Validate() (finance.CompoundInterestInput, error) {
	if err := nonNegative("principal", r.Principal); err != nil {
		return finance.CompoundInterestInput{}, err
	}
	if err := nonNegative("annual_rate_percent", r.AnnualRatePercent); err != nil {
		return finance.CompoundInterestInput{}, err
	}
	if err := nonNegative("years", r.Years); err != nil {
		return finance.CompoundInterestInput{}, err
	}
	if err := nonNegative("contribution_per_period", r.ContributionPerPeriod); err != nil {
		return finance.CompoundInterestInput{}, err
	}

	return finance.CompoundInterestInput{
		Principal:             r.Principal,
		AnnualRatePercent:     r.AnnualRatePercent,
		TimesPerYear:          frequency(r.TimesPerYear, 1),
		Years:                 r.Years,
		ContributionPerPeriod: r.ContributionPerPeriod,
	}, nil
}

// LoanPaymentRequest is the payload for POST /api/calc/loan-payment.
// Principal, rate, and years are required; payments_per_year defaults
// to 12.
type LoanPaymentRequest struct {
	Principal         *float64 `json:"principal"`
	AnnualRatePercent *float64 `json:"annual_rate_percent"`
	Years             *float64 `json:"years"`
	PaymentsPerYear   *int     `json:"payments_per_year"`
}

// Validate checks bounds, applies defaults, and returns the finance input.
func (r *LoanPaymentRequest) Validate() (finance.LoanPaymentInput, error) {
	principal, err := requirePositive("principal", r.Principal)
	if err != nil {
		return finance.LoanPaymentInput{}, err
	}
	rate, err := requireNonNegative("annual_rate_percent", r.AnnualRatePercent)
	if err != nil {
		return finance.LoanPaymentInput{}, err
	}
	years, err := requirePositive("years", r.Years)
	if err != nil {
		return finance.LoanPaymentInput{}, err
	}
	return finance.LoanPaymentInput{
		Principal:         principal,
		AnnualRatePercent: rate,
		Years:             years,
		PaymentsPerYear:   frequency(r.PaymentsPerYear, 12),
	}, nil
}

// SavingsFutureValueRequest is the payload for POST /api/calc/savings-future-value.
// Every field is optional; defaults are present_value 0, contribution 0,
// rate 0, years 0, times_per_year 12.
type SavingsFutureValueRequest struct {
	PresentValue          float64 `json:"present_value"`
	ContributionPerPeriod float64 `json:"contribution_per_period"`
	AnnualRatePercent     float64 `json:"annual_rate_percent"`
	Years                 float64 `json:"years"`
	TimesPerYear          *int    `json:"times_per_year"`
}

// Validate checks bounds, applies defaults, and returns the finance input.
func (r *SavingsFutureValueRequest) Validate() (finance.SavingsFutureValueInput, error) {
	if err := nonNegative("present_value", r.PresentValue); err != nil {
		return finance.SavingsFutureValueInput{}, err
	}
	if err := nonNegative("contribution_per_period", r.ContributionPerPeriod); err != nil {
		return finance.SavingsFutureValueInput{}, err
	}
	if err := nonNegative("annual_rate_percent", r.AnnualRatePercent); err != nil {
		return finance.SavingsFutureValueInput{}, err
	}
	if err := nonNegative("years", r.Years); err != nil {
		return finance.SavingsFutureValueInput{}, err
	}
	return finance.SavingsFutureValueInput{
		PresentValue:          r.PresentValue,
		ContributionPerPeriod: r.ContributionPerPeriod,
		AnnualRatePercent:     r.AnnualRatePercent,
		Years:                 r.Years,
		TimesPerYear:          frequency(r.TimesPerYear, 12),
	}, nil
}

// RoommateShareRequest is one element of the rent-split roommate list.
// Weight defaults to 1.0.
type RoommateShareRequest struct {
	Name   string   `json:"name"`
	Weight *float64 `json:"weight"`
}

// RentSplitRequest is the payload for POST /api/calc/rent-split.
// The roommate list is required and must not be empty.
type RentSplitRequest struct {
	TotalRent      float64                `json:"total_rent"`
	TotalUtilities float64                `json:"total_utilities"`
	Roommates      []RoommateShareRequest `json:"roommates"`
}

// Validate checks bounds, applies per-roommate defaults, and returns
// the finance input. The empty-list check runs here, before the
// total-weight guard inside the calculator can ever be reached.
func (r *RentSplitRequest) Validate() (finance.RentSplitInput, error) {
	if err := nonNegative("total_rent", r.TotalRent); err != nil {
		return finance.RentSplitInput{}, err
	}
	if err := nonNegative("total_utilities", r.TotalUtilities); err != nil {
		return finance.RentSplitInput{}, err
	}
	if len(r.Roommates) == 0 {
		return finance.RentSplitInput{}, &finance.FieldError{
			Field:   "roommates",
			Message: "at least one roommate is required",
		}
	}

	roommates := make([]finance.RoommateShare, len(r.Roommates))
	for i, rm := range r.Roommates {
		if rm.Name == "" {
			return finance.RentSplitInput{}, &finance.FieldError{
				Field:   "roommates.name",
				Message: "must not be empty",
			}
		}
		weight := 1.0
		if rm.Weight != nil {
			weight = *rm.Weight
		}
		if weight <= 0 {
			return finance.RentSplitInput{}, &finance.FieldError{
				Field:   "roommates.weight",
				Message: "must be > 0",
			}
		}
		roommates[i] = finance.RoommateShare{Name: rm.Name, Weight: weight}
	}

	return finance.RentSplitInput{
		TotalRent:      r.TotalRent,
		TotalUtilities: r.TotalUtilities,
		Roommates:      roommates,
	}, nil
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// MessageResponse is the body of the liveness and greeting endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// DiagnosticsResponse reports boundary health and presence of optional
// environment configuration. Field names and indicator strings match
// the original API contract.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// SimpleInterestResponse is the result of a simple interest calculation.
type SimpleInterestResponse struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Total     float64 `json:"total"`
}

// CompoundInterestResponse is the result of a compound interest calculation.
type CompoundInterestResponse struct {
	FutureValue        float64 `json:"future_value"`
	InterestEarned     float64 `json:"interest_earned"`
	Principal          float64 `json:"principal"`
	TotalContributions float64 `json:"total_contributions"`
}

// LoanPaymentResponse is the result of a loan payment calculation.
type LoanPaymentResponse struct {
	PaymentPerPeriod float64 `json:"payment_per_period"`
	NumberOfPayments int     `json:"number_of_payments"`
	TotalPaid        float64 `json:"total_paid"`
	TotalInterest    float64 `json:"total_interest"`
}

// SavingsFutureValueResponse is the result of a savings projection.
type SavingsFutureValueResponse struct {
	FutureValue        float64 `json:"future_value"`
	InterestEarned     float64 `json:"interest_earned"`
	TotalContributions float64 `json:"total_contributions"`
}

// RoommateAmountDTO is one roommate's computed share.
type RoommateAmountDTO struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Amount float64 `json:"amount"`
}

// RentSplitResponse is the result of a rent split.
type RentSplitResponse struct {
	Total     float64             `json:"total"`
	Roommates []RoommateAmountDTO `json:"roommates"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// VALIDATION HELPERS
// =============================================================================

func requirePositive(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, &finance.FieldError{Field: field, Message: "is required"}
	}
	if *v <= 0 {
		return 0, &finance.FieldError{Field: field, Message: "must be > 0"}
	}
	return *v, nil
}

func requireNonNegative(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, &finance.FieldError{Field: field, Message: "is required"}
	}
	if *v < 0 {
		return 0, &finance.FieldError{Field: field, Message: "must be >= 0"}
	}
	return *v, nil
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return &finance.FieldError{Field: field, Message: "must be >= 0"}
	}
	return nil
}

// frequency resolves an optional per-year count, falling back to the
// calculator's documented default when the field is absent. The >= 1
// bound is deliberately not checked here: it is a computation
// precondition, and the finance package rejects violations as invalid
// arguments rather than schema errors.
func frequency(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRentSplitResponse(res finance.RentSplitResult) RentSplitResponse {
	roommates := make([]RoommateAmountDTO, len(res.Roommates))
	for i, rm := range res.Roommates {
		roommates[i] = RoommateAmountDTO{
			Name:   rm.Name,
			Weight: rm.Weight,
			Amount: rm.Amount,
		}
	}
	return RentSplitResponse{Total: res.Total, Roommates: roommates}
}
