package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath   string `json:"configPath"`
	SourceDriver string `json:"sourceDriver"`
	SourcePath   string `json:"sourcePath"`
	SourceExists bool   `json:"sourceExists"`
	DBPath       string `json:"dbPath"`
	Records      int    `json:"records"`
	OutputFormat string `json:"outputFormat"`
	AppDataDir   string `json:"appDataDir"`
}

func RenderSystemInfo(data SystemInfoItem) error {
	sourceStatus := pterm.Green("Found")
	if !data.SourceExists {
		sourceStatus = pterm.Red("Not Found")
	}

	records := "-"
	if data.SourceExists {
		records = fmt.Sprintf("%d", data.Records)
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Source Driver", data.SourceDriver},
		{"Source Path", data.SourcePath},
		{"Source Status", sourceStatus},
		{"Records", records},
		{"Snapshot Database", data.DBPath},
		{"Output Format", data.OutputFormat},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
