// Package importer parses bank export CSV files into transaction
// previews.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Parse reads a bank export CSV file. The expected columns are
// "Date,Merchant,Outflow,Inflow,Memo" with a header line; dates use the
// MM/DD/YYYY format common in bank exports.
func Parse(f io.Reader, account models.Account) ([]TransactionPreview, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	var transactions []TransactionPreview

	// Skip the header line
	_, err := reader.Read()
	if err == io.EOF {
		return []TransactionPreview{}, nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		date, err := time.Parse("01/02/2006", record[Date])
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not parse time: %w", err))
		}

		t := TransactionPreview{
			Transaction: models.Transaction{
				Date:      date,
				Merchant:  record[Merchant],
				Note:      record[Memo],
				AccountID: account.ID,
			},
		}

		if record[Outflow] != "" && record[Inflow] != "" {
			return csvReadError(reader, errors.New("both outflow and inflow are set for the transaction"))
		} else if record[Outflow] == "" && record[Inflow] == "" {
			return csvReadError(reader, errors.New("no amount is set for the transaction"))
		} else if record[Outflow] != "" {
			amount, err := decimal.NewFromString(record[Outflow])
			if err != nil {
				return csvReadError(reader, errors.New("outflow could not be parsed to a decimal"))
			}

			// Outflows are stored as negative amounts
			t.Transaction.Amount = amount.Neg()
		} else {
			amount, err := decimal.NewFromString(record[Inflow])
			if err != nil {
				return csvReadError(reader, errors.New("inflow could not be parsed to a decimal"))
			}

			t.Transaction.Amount = amount
		}

		if t.Transaction.Amount.IsZero() {
			return csvReadError(reader, errors.New("the amount for a transaction must not be 0"))
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// csvReadError returns an error that includes the line of the input the
// error occurred in.
func csvReadError(r *csv.Reader, err error) ([]TransactionPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []TransactionPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
