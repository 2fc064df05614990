package hourbook

// Totals are the elementwise sums over a set of entries. Pending is
// derived from the summed columns, never accumulated from per-entry
// pending values, so stale derivations cannot drift into it.
type Totals struct {
	AmountPerHour Amount
	Deposit       Amount
	Pending       Balance
}

// ComputeTotals sums the given entries. It is a pure function of its
// argument: an empty set yields all-zero totals, and the invariant
// Pending == Deposit - AmountPerHour holds by construction. Values stay
// exact; rounding to 2 decimal places happens in the String methods.
func ComputeTotals(entries []Entry) Totals {
	var aph, dep Amount
	for _, e := range entries {
		aph = aph.Add(e.AmountPerHour())
		dep = dep.Add(e.Deposit())
	}
	return Totals{
		AmountPerHour: aph,
		Deposit:       dep,
		Pending:       dep.Sub(aph),
	}
}
