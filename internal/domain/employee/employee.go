// Package employee defines the pay-earning employee variants.
package employee

// Employee is the capability shared by all variants: computing gross pay for
// one payroll period. periodHours is optional; only hourly employees consult
// it, and they require it to be present and non-negative.
type Employee interface {
	Name() string
	Department() string
	CalculatePay(periodHours *float64) (float64, error)
}
