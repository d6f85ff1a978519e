package cli

import "fmt"

// formatCents renders integer cents as a dollar amount, e.g. 1500 -> $15.00.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
