package query

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/service"
)

// Runtime gives query commands access to the loaded snapshot and the
// selected output format.
type Runtime interface {
	Service(ctx context.Context) (*service.Service, error)
	OutputFormat() string
}

// NewQueryCmd groups one subcommand per query operation.
func NewQueryCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Run a single query against the transaction snapshot",
		Long: `Run one of the fixed analytical queries against the loaded transactions.

Use "txstats report" to run all of them at once.`,
	}

	cmd.AddCommand(NewTotalCmd(rt))
	cmd.AddCommand(NewSentByCmd(rt))
	cmd.AddCommand(NewMaxCmd(rt))
	cmd.AddCommand(NewTopCmd(rt))
	cmd.AddCommand(NewTopSenderCmd(rt))
	cmd.AddCommand(NewClientsCmd(rt))
	cmd.AddCommand(NewComplianceCmd(rt))
	cmd.AddCommand(NewBeneficiariesCmd(rt))
	cmd.AddCommand(NewUnsolvedCmd(rt))
	cmd.AddCommand(NewSolvedMessagesCmd(rt))

	return cmd
}
