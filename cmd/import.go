package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/app"
	"github.com/smallworld/txstats/internal/store"
	"github.com/smallworld/txstats/internal/ui/prompts"
)

type importFlags struct {
	From string
	Yes  bool
}

type importRunner struct {
	rt      *runtime
	flags   *importFlags
	confirm func(message string, defaultValue bool) (bool, error)
}

func NewImportCmd(rt *runtime) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON transactions file into the SQLite snapshot",
		Long: `Read a JSON transactions file and store it as the SQLite snapshot used by
the sqlite source driver. An existing snapshot is replaced as a whole.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &importRunner{
				rt:      rt,
				flags:   flags,
				confirm: prompts.PromptConfirm,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.From, "from", "f", "", "JSON file to import (defaults to source.path)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Replace an existing snapshot without asking")

	return cmd
}

func (r *importRunner) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := r.rt.cfg

	from := r.flags.From
	if from == "" {
		from = cfg.Source.Path
	}
	from, err := app.ExpandPath(from)
	if err != nil {
		return err
	}

	txs, err := store.NewJSONSource(from).Transactions(ctx)
	if err != nil {
		return err
	}

	snapshot, err := app.OpenSnapshotStore(cfg, r.rt.migrations)
	if err != nil {
		return err
	}
	defer snapshot.Close()

	existing, err := snapshot.Count(ctx)
	if err != nil {
		return err
	}

	if existing > 0 && !r.flags.Yes {
		msg := fmt.Sprintf("Replace the existing snapshot (%d transactions) with %d transactions from %s?", existing, len(txs), from)
		ok, err := r.confirm(msg, false)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Warning.Println("Import cancelled")
			return nil
		}
	}

	if err := snapshot.ImportSnapshot(ctx, txs); err != nil {
		return fmt.Errorf("failed to import transactions: %w", err)
	}

	r.rt.logger.Info("snapshot imported", "from", from, "db", snapshot.Path(), "records", len(txs))
	pterm.Success.Printf("Imported %d transactions into %s\n", len(txs), snapshot.Path())
	printSeparator()
	return nil
}
