package money

import (
	"fmt"
	"math"
)

// Unit is the currency unit for all amounts in the system.
const Unit = "MAD"

// Round2 rounds an amount to 2 decimal places, half away from zero.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Format renders an amount as reported in logs and payment output.
func Format(amount float64) string {
	return fmt.Sprintf("%.2f %s", amount, Unit)
}
