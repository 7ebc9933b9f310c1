package employee

import "fmt"

// Salaried earns a fixed monthly salary regardless of hours worked.
type Salaried struct {
	name          string
	department    string
	monthlySalary float64
}

func NewSalaried(name, department string, monthlySalary float64) (*Salaried, error) {
	s := &Salaried{name: name, department: department}
	if err := s.SetMonthlySalary(monthlySalary); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Salaried) Name() string       { return s.name }
func (s *Salaried) Department() string { return s.department }

func (s *Salaried) MonthlySalary() float64 { return s.monthlySalary }

func (s *Salaried) SetMonthlySalary(value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: monthly salary must be non-negative", ErrInvalidInput)
	}
	s.monthlySalary = value
	return nil
}

// ApplyRaise adjusts the salary by percent. A negative percent is allowed as
// long as the resulting salary stays non-negative.
func (s *Salaried) ApplyRaise(percent float64) error {
	newSalary := s.monthlySalary * (1 + percent/100)
	if newSalary < 0 {
		return fmt.Errorf("%w: resulting salary cannot be negative", ErrInvalidInput)
	}
	s.monthlySalary = newSalary
	return nil
}

func (s *Salaried) CalculatePay(_ *float64) (float64, error) {
	return s.monthlySalary, nil
}

func (s *Salaried) String() string {
	return fmt.Sprintf("%s (%s)", s.name, s.department)
}
