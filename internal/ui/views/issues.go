package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/smallworld/txstats/internal/model"
)

func RenderUnsolvedIssueIDs(ids []int) {
	if len(ids) == 0 {
		pterm.Success.Println("No open compliance issues")
		return
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	pterm.Warning.Printf("Unsolved issue IDs: %s\n", strings.Join(parts, ", "))
}

func RenderSolvedIssueMessages(messages []*string) error {
	if len(messages) == 0 {
		pterm.Info.Println("No solved issues")
		return nil
	}

	items := make([]pterm.BulletListItem, len(messages))
	for i, msg := range messages {
		items[i] = pterm.BulletListItem{Level: 0, Text: model.MessageOrNull(msg)}
	}
	return pterm.DefaultBulletList.WithItems(items).Render()
}

func RenderComplianceStatus(client string, open bool) {
	if open {
		pterm.Warning.Printf("%s has at least one open compliance issue\n", client)
		return
	}
	pterm.Success.Printf("%s has no open compliance issues\n", client)
}
