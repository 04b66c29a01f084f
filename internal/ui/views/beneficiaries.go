package views

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"

	"github.com/smallworld/txstats/internal/model"
	"github.com/smallworld/txstats/internal/utils"
)

// RenderBeneficiaries prints one row per beneficiary, sorted by name.
func RenderBeneficiaries(index map[string]model.Transaction) error {
	if len(index) == 0 {
		pterm.Warning.Println("No beneficiaries found")
		return nil
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	tableData := pterm.TableData{
		{"Beneficiary", "MTN", "Amount", "Sender"},
	}
	for _, name := range names {
		tx := index[name]
		tableData = append(tableData, []string{
			name,
			fmt.Sprintf("%d", tx.MTN),
			utils.FormatAmount(tx.Amount),
			tx.SenderFullName,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
