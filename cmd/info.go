package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/app"
	"github.com/smallworld/txstats/internal/ui/views"
)

type infoRunner struct {
	rt *runtime
}

func NewInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, transaction source and snapshot details.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				rt: rt,
			}

			return runner.Run(cmd)
		},
	}
}

func (r *infoRunner) Run(cmd *cobra.Command) error {
	cfg := r.rt.cfg

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	sourcePath, err := app.SourcePath(cfg)
	if err != nil {
		return err
	}
	dbPath, err := app.DatabasePath(cfg)
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		SourceDriver: cfg.Source.Driver,
		SourcePath:   sourcePath,
		DBPath:       dbPath,
		OutputFormat: cfg.Output.Format,
		AppDataDir:   getAppDataDirOrUnknown(),
	}

	if _, err := os.Stat(sourcePath); err == nil {
		items.SourceExists = true
		items.Records = r.recordCount(cmd.Context())
	}

	return views.Render(cmd.OutOrStdout(), r.rt.OutputFormat(), items, func() error {
		return views.RenderSystemInfo(items)
	})
}

func (r *infoRunner) recordCount(ctx context.Context) int {
	svc, err := r.rt.Service(ctx)
	if err != nil {
		r.rt.logger.Warn("could not load transactions", "error", err)
		return 0
	}
	return svc.Query.Len()
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
