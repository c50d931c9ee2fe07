// Package report renders parse results for people and programs.
package report

import (
	"github.com/MrJamesThe3rd/statements/internal/statement"
	"github.com/MrJamesThe3rd/statements/internal/transaction"
)

// File pairs a parse result with the document it came from.
type File struct {
	Path   string
	Result statement.Result
}

type resultResponse struct {
	File              string                `json:"file"`
	Success           bool                  `json:"success"`
	Institution       string                `json:"institution"`
	AccountType       statement.AccountType `json:"account_type"`
	AccountIdentifier *string               `json:"account_identifier"`
	StatementPeriod   *string               `json:"statement_period"`
	Transactions      []transactionResponse `json:"transactions"`
	ErrorMessage      *string               `json:"error_message,omitempty"`
}

type transactionResponse struct {
	Date     string           `json:"date"`
	Merchant string           `json:"merchant"`
	Amount   string           `json:"amount"`
	Type     transaction.Type `json:"transaction_type"`
	RawText  string           `json:"raw_text"`
}

func toResponse(f File) resultResponse {
	res := f.Result

	return resultResponse{
		File:              f.Path,
		Success:           res.Success,
		Institution:       res.Institution,
		AccountType:       res.AccountType,
		AccountIdentifier: res.AccountIdentifier,
		StatementPeriod:   res.StatementPeriod,
		Transactions:      toTransactionList(res.Transactions),
		ErrorMessage:      res.ErrorMessage,
	}
}

func toTransactionResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		Date:     FormatDate(tx.Date),
		Merchant: tx.Merchant,
		Amount:   FormatAmount(tx.Amount),
		Type:     tx.Type,
		RawText:  tx.RawText,
	}
}

func toTransactionList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}

	return resp
}
