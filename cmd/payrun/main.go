package main

import (
	"fmt"
	"log"

	"payrun/internal/domain/employee"
	"payrun/internal/domain/payroll"
	"payrun/internal/domain/payslip"
	"payrun/internal/domain/tax"
	"payrun/internal/platform/config"
	"payrun/internal/platform/logging"
	"payrun/internal/platform/payment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	salaried, err := employee.NewSalaried("Amina", "Finance", 12000)
	if err != nil {
		log.Fatalf("build roster: %v", err)
	}
	hourly, err := employee.NewHourly("Yassine", "IT", 80)
	if err != nil {
		log.Fatalf("build roster: %v", err)
	}
	contractor, err := employee.NewContractor("Laila", "Marketing", 900)
	if err != nil {
		log.Fatalf("build roster: %v", err)
	}

	if err := salaried.ApplyRaise(5); err != nil {
		log.Fatalf("apply raise: %v", err)
	}
	if err := hourly.SetOvertimeMultiplier(2.0); err != nil {
		log.Fatalf("set overtime multiplier: %v", err)
	}
	contractor.LogDay()
	contractor.LogDay()
	contractor.LogDay()

	periodHours := map[string]float64{"Yassine": 172}

	var logger logging.Logger = logging.NewConsoleLogger()
	if cfg.LogToFile {
		logger = logging.NewFileLogger(cfg.LogPath)
	}

	var processor payment.Processor = payment.NewCashProcessor()
	if cfg.Processor == config.ProcessorBankTransfer {
		processor = payment.NewBankTransferProcessor()
	}

	var taxCalc *tax.Calculator
	if cfg.TaxEnabled {
		taxCalc = tax.NewCalculator()
	}

	system := payroll.NewSystem(
		[]employee.Employee{salaried, hourly, contractor},
		processor,
		logger,
		taxCalc,
	)
	if cfg.PayslipEnabled {
		system.Payslips = payslip.NewGenerator(cfg.PayslipDir)
	}

	if _, err := system.ProcessPayroll(periodHours); err != nil {
		log.Fatalf("payroll failed: %v", err)
	}

	if cfg.LogToFile {
		fmt.Printf("Payroll processed. Check %s for details.\n", cfg.LogPath)
	} else {
		fmt.Println("Payroll processed.")
	}
}
