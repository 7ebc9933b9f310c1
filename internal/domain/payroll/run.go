// Package payroll runs pay calculation over a roster and orchestrates one
// end-to-end payroll cycle.
package payroll

import (
	"fmt"

	"payrun/internal/domain/employee"
	"payrun/internal/domain/money"
)

// Run computes gross pay per employee for one period. periodHours is
// consulted only for hourly employees; a missing entry aborts the run.
// Duplicate names: the later employee silently overwrites the earlier entry
// in the result map.
func Run(employees []employee.Employee, periodHours map[string]float64) (map[string]float64, error) {
	results := make(map[string]float64, len(employees))
	for _, emp := range employees {
		var pay float64
		var err error
		if hourly, ok := emp.(*employee.Hourly); ok {
			hours, present := periodHours[emp.Name()]
			if !present {
				return nil, fmt.Errorf("%w: %s", ErrMissingHours, emp.Name())
			}
			pay, err = hourly.CalculatePay(&hours)
		} else {
			pay, err = emp.CalculatePay(nil)
		}
		if err != nil {
			return nil, err
		}
		results[emp.Name()] = money.Round2(pay)
	}
	return results, nil
}
