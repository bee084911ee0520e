package gostmt

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the format neutral record most callers want. Date is a
// calendar date at midnight UTC and Amount keeps the exact decimal from the
// source, negative for money out.
type Transaction struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Payee  string          `json:"payee,omitempty"`
	Type   TransactionType `json:"transaction_type,omitempty"`
	FitID  string          `json:"fitid,omitempty"`
	Status string          `json:"status,omitempty"`
	Memo   string          `json:"memo,omitempty"`
}

// TransactionFromParsed converts a raw tagged record into the default
// Transaction shape. It is the conversion ParseTransactions runs.
func TransactionFromParsed(record ParsedTransaction) (Transaction, error) {
	switch record.Format {
	case FormatQFX:
		if record.Qfx == nil {
			return Transaction{}, fmt.Errorf("error - record tagged %s carries no qfx data", record.Format)
		}
		q := record.Qfx
		return Transaction{
			Date:   q.Posted,
			Amount: q.Amount,
			Payee:  q.Name,
			Type:   q.Type,
			FitID:  q.FitID,
			Memo:   q.Memo,
		}, nil
	}
	return Transaction{}, fmt.Errorf("error - no conversion for format %q", record.Format)
}
