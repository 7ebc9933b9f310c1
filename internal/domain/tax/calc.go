// Package tax applies the bracket withholding rule to gross pay.
package tax

import "payrun/internal/domain/money"

const (
	lowerBracketCeiling  = 3000.0
	middleBracketCeiling = 10000.0

	middleBracketKeepRate = 0.90
	upperBracketKeepRate  = 0.80
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Net maps a gross amount to the amount kept after withholding. Brackets are
// inclusive on the lower amount: exactly 3000 and exactly 10000 take the
// cheaper branch.
func (Calculator) Net(amount float64) float64 {
	switch {
	case amount <= lowerBracketCeiling:
		return amount
	case amount <= middleBracketCeiling:
		return amount * middleBracketKeepRate
	default:
		return amount * upperBracketKeepRate
	}
}

// ComputeNetMap applies Net to every entry and rounds each result to 2
// decimal places. Pure per-entry transform; iteration order does not matter.
func (c Calculator) ComputeNetMap(grossMap map[string]float64) map[string]float64 {
	netMap := make(map[string]float64, len(grossMap))
	for name, gross := range grossMap {
		netMap[name] = money.Round2(c.Net(gross))
	}
	return netMap
}
