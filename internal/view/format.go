package view

import "strconv"

// formatMoney renders an amount with two decimals, the way the payment and
// revenue views display it.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
