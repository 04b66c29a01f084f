package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/smallworld/txstats/internal/service"
	"github.com/smallworld/txstats/internal/ui"
	"github.com/smallworld/txstats/internal/utils"
)

func RenderReport(r *service.Report) error {
	ui.PrintL1Title("Transaction Report (%d records)", r.RecordCount)
	pterm.Println()

	hasIssue := pterm.Green("No")
	if r.HasOpenComplianceIssue {
		hasIssue = pterm.Red("Yes")
	}

	topSender := r.TopSenderLabel()
	if r.TopSender != nil {
		topSender = fmt.Sprintf("%s (%s)", topSender, utils.FormatAmount(r.TopSenderTotal))
	}

	err := RenderValues(
		ValueItem{"Total Transaction Amount", utils.FormatAmount(r.TotalAmount)},
		ValueItem{fmt.Sprintf("Total Amount Sent By %s", r.SenderName), utils.FormatAmount(r.TotalAmountSentBy)},
		ValueItem{"Max Transaction Amount", utils.FormatAmount(r.MaxAmount)},
		ValueItem{"Number of Unique Clients", fmt.Sprintf("%d", r.UniqueClients)},
		ValueItem{fmt.Sprintf("Open Compliance Issue for %s", r.ComplianceClient), hasIssue},
		ValueItem{"Top Sender", topSender},
	)
	if err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Top %d Transactions by Amount", len(r.TopTransactions))
	if err := NewTransactionListView("").Render(r.TopTransactions); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Compliance Issues")
	RenderUnsolvedIssueIDs(r.UnsolvedIssueIDs)
	if err := RenderSolvedIssueMessages(r.SolvedIssueMessages); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Transactions by Beneficiary Name")
	return RenderBeneficiaries(r.TransactionsByBeneficiary)
}
