package payroll

import (
	"fmt"

	"github.com/google/uuid"

	"payrun/internal/domain/employee"
	"payrun/internal/domain/money"
	"payrun/internal/domain/payslip"
	"payrun/internal/domain/tax"
	"payrun/internal/platform/logging"
	"payrun/internal/platform/payment"
)

// System composes a roster with a payment processor, a logger, and an
// optional tax calculator into one end-to-end payroll cycle.
type System struct {
	Employees []employee.Employee
	Processor payment.Processor
	Logger    logging.Logger

	// Tax is optional; nil means net pay equals gross pay.
	Tax *tax.Calculator

	// Payslips is optional; nil disables payslip output. Payslip failures are
	// logged, not fatal: payments have already been dispatched.
	Payslips *payslip.Generator
}

func NewSystem(employees []employee.Employee, processor payment.Processor, logger logging.Logger, taxCalc *tax.Calculator) *System {
	return &System{
		Employees: employees,
		Processor: processor,
		Logger:    logger,
		Tax:       taxCalc,
	}
}

// ProcessPayroll runs one payroll cycle: gross calculation, withholding,
// payment dispatch, payslip output. Any calculation failure aborts the whole
// run before a single payment goes out; there is no partial-success mode.
func (s *System) ProcessPayroll(periodHours map[string]float64) (map[string]float64, error) {
	runID := uuid.NewString()
	s.Logger.Log(fmt.Sprintf("Running payroll (run %s)...", runID))

	grossMap, err := Run(s.Employees, periodHours)
	if err != nil {
		return nil, err
	}

	netMap := grossMap
	if s.Tax != nil {
		netMap = s.Tax.ComputeNetMap(grossMap)
	}

	for _, emp := range s.Employees {
		name := emp.Name()
		gross := grossMap[name]
		net := netMap[name]
		s.Logger.Log(fmt.Sprintf("Paying %s: gross %s -> net %s", name, money.Format(gross), money.Format(net)))
		if err := s.Processor.Pay(name, net); err != nil {
			return nil, fmt.Errorf("pay %s: %w", name, err)
		}
	}

	if s.Payslips != nil {
		for _, emp := range s.Employees {
			name := emp.Name()
			path, err := s.Payslips.Generate(runID, emp, grossMap[name], netMap[name])
			if err != nil {
				s.Logger.Log(fmt.Sprintf("Payslip for %s failed: %v", name, err))
				continue
			}
			s.Logger.Log(fmt.Sprintf("Payslip for %s written to %s", name, path))
		}
	}

	s.Logger.Log("Payroll complete.")
	return netMap, nil
}
