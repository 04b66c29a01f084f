package cmd

import (
	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/ui/views"
)

type reportFlags struct {
	Sender string
	Client string
	Top    int
}

type reportRunner struct {
	rt    *runtime
	flags *reportFlags
}

func NewReportCmd(rt *runtime) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every query and print a full report",
		Long: `Run every query against the loaded transactions and print the results.

The sender used for "total sent by" and the client checked for open compliance
issues default to report.sender and report.client from the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{
				rt:    rt,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Sender, "sender", "s", "", "Sender name for the total sent amount")
	cmd.Flags().StringVar(&flags.Client, "client", "", "Client name for the compliance check")
	cmd.Flags().IntVarP(&flags.Top, "top", "t", 0, "Number of largest transactions to show")

	return cmd
}

func (r *reportRunner) Run(cmd *cobra.Command) error {
	svc, err := r.rt.Service(cmd.Context())
	if err != nil {
		return err
	}

	opts := svc.DefaultReportOptions()
	if r.flags.Sender != "" {
		opts.SenderName = r.flags.Sender
	}
	if r.flags.Client != "" {
		opts.ComplianceClient = r.flags.Client
	}
	if r.flags.Top > 0 {
		opts.TopN = r.flags.Top
	}

	report, err := svc.Report(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return views.Render(cmd.OutOrStdout(), r.rt.OutputFormat(), report, func() error {
		if err := views.RenderReport(report); err != nil {
			return err
		}
		printSeparator()
		return nil
	})
}
