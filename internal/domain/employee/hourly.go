package employee

import "fmt"

const (
	// OvertimeThresholdHours is where the overtime rate starts within a period.
	OvertimeThresholdHours = 160.0

	DefaultOvertimeMultiplier = 1.5
)

// Hourly earns its rate per worked hour, with hours beyond the overtime
// threshold paid at rate times the overtime multiplier.
type Hourly struct {
	name               string
	department         string
	hourlyRate         float64
	overtimeMultiplier float64
}

func NewHourly(name, department string, hourlyRate float64) (*Hourly, error) {
	if hourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly rate must be non-negative", ErrInvalidInput)
	}
	return &Hourly{
		name:               name,
		department:         department,
		hourlyRate:         hourlyRate,
		overtimeMultiplier: DefaultOvertimeMultiplier,
	}, nil
}

func (h *Hourly) Name() string       { return h.name }
func (h *Hourly) Department() string { return h.department }

func (h *Hourly) HourlyRate() float64         { return h.hourlyRate }
func (h *Hourly) OvertimeMultiplier() float64 { return h.overtimeMultiplier }

func (h *Hourly) SetOvertimeMultiplier(multiplier float64) error {
	if multiplier < 1.0 {
		return fmt.Errorf("%w: overtime multiplier must be >= 1.0", ErrInvalidInput)
	}
	h.overtimeMultiplier = multiplier
	return nil
}

func (h *Hourly) CalculatePay(periodHours *float64) (float64, error) {
	if periodHours == nil || *periodHours < 0 {
		return 0, fmt.Errorf("%w: period hours must be provided and non-negative", ErrInvalidInput)
	}
	baseHours := min(*periodHours, OvertimeThresholdHours)
	overtimeHours := max(*periodHours-OvertimeThresholdHours, 0)
	return baseHours*h.hourlyRate + overtimeHours*h.hourlyRate*h.overtimeMultiplier, nil
}

func (h *Hourly) String() string {
	return fmt.Sprintf("%s (%s)", h.name, h.department)
}
