package views

import "github.com/pterm/pterm"

// ValueItem is a single labelled query result.
type ValueItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func RenderValues(items ...ValueItem) error {
	tableData := make(pterm.TableData, 0, len(items))
	for _, item := range items {
		tableData = append(tableData, []string{item.Label, item.Value})
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
