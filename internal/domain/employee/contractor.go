package employee

import "fmt"

// Contractor earns a daily rate per logged day. Days accumulate until the
// caller resets them for a new period; this package never resets on its own.
type Contractor struct {
	name       string
	department string
	dailyRate  float64
	daysWorked int
}

func NewContractor(name, department string, dailyRate float64) (*Contractor, error) {
	if dailyRate < 0 {
		return nil, fmt.Errorf("%w: daily rate must be non-negative", ErrInvalidInput)
	}
	return &Contractor{name: name, department: department, dailyRate: dailyRate}, nil
}

func (c *Contractor) Name() string       { return c.name }
func (c *Contractor) Department() string { return c.department }

func (c *Contractor) DailyRate() float64 { return c.dailyRate }
func (c *Contractor) DaysWorked() int    { return c.daysWorked }

// LogDay records one worked day.
func (c *Contractor) LogDay() { c.daysWorked++ }

// ResetDays zeroes the counter at the start of a new period.
func (c *Contractor) ResetDays() { c.daysWorked = 0 }

func (c *Contractor) CalculatePay(_ *float64) (float64, error) {
	return c.dailyRate * float64(c.daysWorked), nil
}

func (c *Contractor) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.department)
}
