package services

import "strconv"

// FormatRupiah formats a full rupiah amount using Indonesian notation with
// dot-grouped thousands, e.g. 9300000 -> "Rp 9.300.000". Rupiah has no
// fractional unit, so no decimals are printed.
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	grouped := applyDotGrouping(s)

	result := "Rp " + grouped
	if negative {
		result = "-" + result
	}
	return result
}

// applyDotGrouping inserts dots between groups of three digits, counted from
// the right.
func applyDotGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
