// Package payment dispatches net pay to a named payee. Both processors are
// textual simulations; the side effect is one line on the configured writer.
package payment

import (
	"fmt"
	"io"
	"os"

	"payrun/internal/domain/money"
)

type Processor interface {
	Pay(employeeName string, amount float64) error
}

type BankTransferProcessor struct {
	Out io.Writer
}

func NewBankTransferProcessor() *BankTransferProcessor {
	return &BankTransferProcessor{Out: os.Stdout}
}

func (p *BankTransferProcessor) Pay(employeeName string, amount float64) error {
	_, err := fmt.Fprintf(p.Out, "Transferring %s to %s via bank transfer...\n", money.Format(amount), employeeName)
	return err
}

type CashProcessor struct {
	Out io.Writer
}

func NewCashProcessor() *CashProcessor {
	return &CashProcessor{Out: os.Stdout}
}

func (p *CashProcessor) Pay(employeeName string, amount float64) error {
	_, err := fmt.Fprintf(p.Out, "Handing %s cash to %s...\n", money.Format(amount), employeeName)
	return err
}
