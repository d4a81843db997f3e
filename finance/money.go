package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary value to 2 decimal places, half away from
// zero. Routed through decimal so values like 2.675 round on their
// decimal representation rather than their binary one. Applied only at
// the result boundary; intermediate math stays in float64. Callers
// must guard non-finite values first (see checkFinite): decimal cannot
// represent ±Inf or NaN.
func Round2(x float64) float64 {
	v, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return v
}

// checkFinite guards the rounding boundary. Schema-valid inputs can
// still overflow float64 (a principal near 1e308 compounded over any
// term), and the resulting ±Inf or NaN would panic inside the decimal
// conversion. Overflow is an input problem, so it is reported as an
// invalid argument rather than allowed to escape as a panic.
func checkFinite(values ...float64) error {
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return &InvalidArgumentError{
				Field:   "inputs",
				Message: "produce a value outside the representable range",
			}
		}
	}
	return nil
}
