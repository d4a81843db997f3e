/*
handlers.go - HTTP API handlers for the finance calculator service

PURPOSE:
  Exposes the finance calculators via REST API. Handles HTTP
  request/response, JSON serialization, and delegates all computation
  to the finance package.

ENDPOINTS:
  Diagnostics:
    GET  /                              Liveness message
    GET  /api/hello                     Static greeting
    GET  /test                          Environment diagnostics

  Calculators:
    POST /api/calc/simple-interest      Simple interest
    POST /api/calc/compound-interest    Compound interest with contributions
    POST /api/calc/loan-payment         Loan amortization payment
    POST /api/calc/savings-future-value Savings projection
    POST /api/calc/rent-split           Weighted rent/utility split

REQUEST FLOW:
  1. Decode JSON body
  2. Validate (bounds + defaults) via the request DTO
  3. Call the finance package
  4. Serialize response
  5. Map errors to status codes

ERROR HANDLING:
  Everything the calculators can report is client error, surfaced as
  400 with the ErrorResponse envelope. The code field distinguishes
  schema violations ("schema_validation") from computation
  precondition violations ("invalid_argument"). There are no server
  error paths in calculator logic.

SEE ALSO:
  - dto.go: request/response data structures and validation
  - server.go: router setup and middleware
  - finance/: the formulas
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/warp/finance-calculators/config"
	"github.com/warp/finance-calculators/finance"
	"github.com/warp/finance-calculators/metrics"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers. The calculators
// are stateless, so the only dependency is the configuration inspected
// by the diagnostics endpoint.
type Handler struct {
	Config *config.Config
}

// NewHandler creates a new handler with the given configuration.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{Config: cfg}
}

// =============================================================================
// DIAGNOSTIC HANDLERS
// =============================================================================

// Root returns the liveness message.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Finance Calculators API is running"})
}

// Hello returns a static greeting.
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

// Diagnostics reports backend status and presence of optional database
// configuration. The calculators never touch a database; the env
// checks are kept for deploy visibility only.
func (h *Handler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "ℹ️ Not required for calculators",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "N/A",
		Collections:      []string{},
	}
	if h.Config.DatabaseURL != "" {
		resp.DatabaseURL = "✅ Set"
	}
	if h.Config.DatabaseName != "" {
		resp.DatabaseName = "✅ Set"
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// CALCULATOR HANDLERS
// =============================================================================

// SimpleInterest computes non-compounding interest.
// POST /api/calc/simple-interest
func (h *Handler) SimpleInterest(w http.ResponseWriter, r *http.Request) {
	var req SimpleInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.Validate()
	if err != nil {
		writeCalcError(w, "simple_interest", err)
		return
	}

	res, err := finance.SimpleInterest(in)
	if err != nil {
		writeCalcError(w, "simple_interest", err)
		return
	}

	metrics.RecordCalculation("simple_interest", "ok")
	writeJSON(w, http.StatusOK, SimpleInterestResponse{
		Principal: res.Principal,
		Interest:  res.Interest,
		Total:     res.Total,
	})
}

// CompoundInterest computes compounded growth with optional
// end-of-period contributions.
// POST /api/calc/compound-interest
func (h *Handler) CompoundInterest(w http.ResponseWriter, r *http.Request) {
	var req CompoundInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.Validate()
	if err != nil {
		writeCalcError(w, "compound_interest", err)
		return
	}

	res, err := finance.CompoundInterest(in)
	if err != nil {
		writeCalcError(w, "compound_interest", err)
		return
	}

	metrics.RecordCalculation("compound_interest", "ok")
	writeJSON(w, http.StatusOK, CompoundInterestResponse{
		FutureValue:        res.FutureValue,
		InterestEarned:     res.InterestEarned,
		Principal:          res.Principal,
		TotalContributions: res.TotalContributions,
	})
}

// LoanPayment computes the fixed amortizing payment for a loan.
// POST /api/calc/loan-payment
func (h *Handler) LoanPayment(w http.ResponseWriter, r *http.Request) {
	var req LoanPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.Validate()
	if err != nil {
		writeCalcError(w, "loan_payment", err)
		return
	}

	res, err := finance.LoanPayment(in)
	if err != nil {
		writeCalcError(w, "loan_payment", err)
		return
	}

	metrics.RecordCalculation("loan_payment", "ok")
	writeJSON(w, http.StatusOK, LoanPaymentResponse{
		PaymentPerPeriod: res.PaymentPerPeriod,
		NumberOfPayments: res.NumberOfPayments,
		TotalPaid:        res.TotalPaid,
		TotalInterest:    res.TotalInterest,
	})
}

// SavingsFutureValue projects a balance plus periodic contributions.
// POST /api/calc/savings-future-value
func (h *Handler) SavingsFutureValue(w http.ResponseWriter, r *http.Request) {
	var req SavingsFutureValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.Validate()
	if err != nil {
		writeCalcError(w, "savings_future_value", err)
		return
	}

	res, err := finance.SavingsFutureValue(in)
	if err != nil {
		writeCalcError(w, "savings_future_value", err)
		return
	}

	metrics.RecordCalculation("savings_future_value", "ok")
	writeJSON(w, http.StatusOK, SavingsFutureValueResponse{
		FutureValue:        res.FutureValue,
		InterestEarned:     res.InterestEarned,
		TotalContributions: res.TotalContributions,
	})
}

// RentSplit divides rent and utilities across weighted roommates.
// POST /api/calc/rent-split
func (h *Handler) RentSplit(w http.ResponseWriter, r *http.Request) {
	var req RentSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.Validate()
	if err != nil {
		writeCalcError(w, "rent_split", err)
		return
	}

	res, err := finance.RentSplit(in)
	if err != nil {
		writeCalcError(w, "rent_split", err)
		return
	}

	metrics.RecordCalculation("rent_split", "ok")
	writeJSON(w, http.StatusOK, toRentSplitResponse(res))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeCalcError maps a finance-package error onto the 400 envelope
// and records the failed invocation. Anything a calculator reports is
// client input, never a server fault.
func writeCalcError(w http.ResponseWriter, calculator string, err error) {
	code := errorCode(err)
	metrics.RecordCalculation(calculator, code)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, finance.ErrSchemaValidation):
		return "schema_validation"
	case errors.Is(err, finance.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "bad_request"
	}
}
