package finance

// RentSplit divides rent plus utilities across roommates in proportion
// to their weights, preserving input order.
//
// The total-weight guard is unreachable when every share passed the
// weight > 0 schema check, but the formula divides by it, so the
// precondition is enforced here as well.
func RentSplit(in RentSplitInput) (RentSplitResult, error) {
	total := in.TotalRent + in.TotalUtilities

	var totalWeight float64
	for _, rm := range in.Roommates {
		totalWeight += rm.Weight
	}
	if totalWeight <= 0 {
		return RentSplitResult{}, &InvalidArgumentError{
			Field:   "roommates",
			Message: "sum of weights must be > 0",
		}
	}
	if err := checkFinite(total); err != nil {
		return RentSplitResult{}, err
	}

	shares := make([]RoommateAmount, len(in.Roommates))
	for i, rm := range in.Roommates {
		shares[i] = RoommateAmount{
			Name:   rm.Name,
			Weight: rm.Weight,
			Amount: Round2(total * (rm.Weight / totalWeight)),
		}
	}

	return RentSplitResult{
		Total:     Round2(total),
		Roommates: shares,
	}, nil
}
