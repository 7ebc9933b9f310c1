// Package payslip renders per-employee payslip PDFs for a payroll run.
package payslip

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"payrun/internal/domain/employee"
	"payrun/internal/domain/money"
)

type Generator struct {
	Dir string
}

func NewGenerator(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Generate writes one payslip PDF and returns its path. The withheld line is
// the difference between gross and net for the run.
func (g *Generator) Generate(runID string, emp employee.Employee, gross, net float64) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(g.Dir, fileName(emp.Name(), runID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", emp.Name()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", emp.Department()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Run: %s", runID))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", money.Format(gross)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Withheld: %s", money.Format(gross-net)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %s", money.Format(net)))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

func fileName(employeeName, runID string) string {
	name := strings.ToLower(strings.ReplaceAll(employeeName, " ", "-"))
	return fmt.Sprintf("%s-%s.pdf", name, runID)
}
