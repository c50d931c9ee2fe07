package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = cellStyle.Align(lipgloss.Right)
)

const amountColumn = 3

// WriteTable writes a summary line and a transaction table for each file.
func WriteTable(w io.Writer, files []File) error {
	blocks := make([]string, 0, len(files))
	for _, f := range files {
		blocks = append(blocks, renderFile(f))
	}

	if _, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

func renderFile(f File) string {
	res := f.Result

	header := titleStyle.Render(f.Path) + "\n" + faintStyle.Render(summary(f))

	if !res.Success {
		msg := "unknown error"
		if res.ErrorMessage != nil {
			msg = *res.ErrorMessage
		}

		return lipgloss.JoinVertical(lipgloss.Left, header, errorStyle.Render("error: "+msg))
	}

	if len(res.Transactions) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, faintStyle.Render("no transactions found"))
	}

	rows := make([][]string, 0, len(res.Transactions))
	for _, tx := range res.Transactions {
		rows = append(rows, []string{FormatDate(tx.Date), tx.Merchant, string(tx.Type), DisplayAmount(tx.Amount)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Date", "Merchant", "Type", "Amount").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == amountColumn:
				return amountStyle
			}

			return cellStyle
		})

	return lipgloss.JoinVertical(lipgloss.Left, header, t.String())
}

func summary(f File) string {
	res := f.Result

	parts := []string{res.Institution, string(res.AccountType)}
	if res.AccountIdentifier != nil {
		parts = append(parts, "…"+*res.AccountIdentifier)
	}

	if res.StatementPeriod != nil {
		parts = append(parts, *res.StatementPeriod)
	}

	parts = append(parts, fmt.Sprintf("%d transactions", len(res.Transactions)))

	return strings.Join(parts, " · ")
}
