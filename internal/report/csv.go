package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// transactionRow is one CSV line: a transaction with its statement details
// repeated so rows stand alone.
type transactionRow struct {
	File              string `csv:"file"`
	Institution       string `csv:"institution"`
	AccountType       string `csv:"account_type"`
	AccountIdentifier string `csv:"account_identifier"`
	StatementPeriod   string `csv:"statement_period"`
	Date              string `csv:"date"`
	Merchant          string `csv:"merchant"`
	Amount            string `csv:"amount"`
	Type              string `csv:"transaction_type"`
	RawText           string `csv:"raw_text"`
}

// WriteCSV writes one row per transaction. Failed files have no rows.
func WriteCSV(w io.Writer, files []File) error {
	rows := make([]transactionRow, 0)

	for _, f := range files {
		res := f.Result

		for _, tx := range res.Transactions {
			rows = append(rows, transactionRow{
				File:              f.Path,
				Institution:       res.Institution,
				AccountType:       string(res.AccountType),
				AccountIdentifier: deref(res.AccountIdentifier),
				StatementPeriod:   deref(res.StatementPeriod),
				Date:              FormatDate(tx.Date),
				Merchant:          tx.Merchant,
				Amount:            FormatAmount(tx.Amount),
				Type:              string(tx.Type),
				RawText:           tx.RawText,
			})
		}
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to encode csv: %w", err)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
