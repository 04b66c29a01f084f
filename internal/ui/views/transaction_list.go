package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/smallworld/txstats/internal/model"
	"github.com/smallworld/txstats/internal/utils"
)

type TransactionListView struct {
	Title string
}

func NewTransactionListView(title string) *TransactionListView {
	return &TransactionListView{Title: title}
}

func (v *TransactionListView) Render(txs []model.Transaction) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	if v.Title != "" {
		pterm.DefaultSection.Println(v.Title)
	}

	tableData := pterm.TableData{
		{"MTN", "Amount", "Sender", "Beneficiary", "Issue", "Status", "Message"},
	}

	amounts := make([]float64, 0, len(txs))
	for _, tx := range txs {
		tableData = append(tableData, transactionRow(tx))
		amounts = append(amounts, tx.Amount)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions, %s\n", len(txs), utils.FormatAmount(utils.SumAmounts(amounts...)))
	return nil
}

func transactionRow(tx model.Transaction) []string {
	issue := "-"
	status := "-"
	if tx.HasIssue() {
		issue = fmt.Sprintf("#%d", *tx.IssueID)
		if tx.IssueSolved {
			status = pterm.Green("Solved")
		} else {
			status = pterm.Red("Open")
		}
	}

	message := "-"
	if tx.IssueMessage != nil {
		message = *tx.IssueMessage
	}

	return []string{
		fmt.Sprintf("%d", tx.MTN),
		utils.FormatAmount(tx.Amount),
		tx.SenderFullName,
		tx.BeneficiaryFullName,
		issue,
		status,
		message,
	}
}
