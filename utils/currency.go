package utils

import (
	"fmt"
	"strconv"
)

// FormatCurrency memformat jumlah rupiah bulat dengan pemisah ribuan.
// Example: 15000 -> "Rp 15.000"
func FormatCurrency(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var result string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		if result == "" {
			result = digits[start:i]
		} else {
			result = digits[start:i] + "." + result
		}
	}

	if negative {
		return fmt.Sprintf("-Rp %s", result)
	}
	return fmt.Sprintf("Rp %s", result)
}
