package query

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/constants"
	"github.com/smallworld/txstats/internal/ui/views"
	"github.com/smallworld/txstats/internal/utils"
)

type amountResult struct {
	Sender *string `json:"sender,omitempty"`
	Amount float64 `json:"amount"`
}

func NewTotalCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Sum of all transaction amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			total := svc.Query.TotalAmount()
			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), amountResult{Amount: total}, func() error {
				return views.RenderValues(views.ValueItem{Label: "Total Transaction Amount", Value: utils.FormatAmount(total)})
			})
		},
	}
}

func NewSentByCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sent-by <sender-full-name>",
		Short: "Sum of amounts sent by one client",
		Long:  `Sum the amounts of every transaction whose sender name matches exactly (case-sensitive).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			sender := args[0]
			total := svc.Query.TotalAmountSentBy(sender)
			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), amountResult{Sender: &sender, Amount: total}, func() error {
				return views.RenderValues(views.ValueItem{
					Label: fmt.Sprintf("Total Amount Sent By %s", sender),
					Value: utils.FormatAmount(total),
				})
			})
		},
	}
}

func NewMaxCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "Highest transaction amount (0 when empty)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			highest := svc.Query.MaxAmount()
			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), amountResult{Amount: highest}, func() error {
				return views.RenderValues(views.ValueItem{Label: "Max Transaction Amount", Value: utils.FormatAmount(highest)})
			})
		},
	}
}

type topFlags struct {
	Limit int
}

type topRunner struct {
	rt    Runtime
	flags *topFlags
}

func NewTopCmd(rt Runtime) *cobra.Command {
	flags := &topFlags{}

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Largest transactions by amount",
		Long: `List the transactions with the highest amounts, largest first.
Transactions with equal amounts keep their original order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &topRunner{
				rt:    rt,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultTopN, "Number of transactions to show")

	return cmd
}

func (r *topRunner) Run(cmd *cobra.Command) error {
	if r.flags.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", r.flags.Limit)
	}

	svc, err := r.rt.Service(cmd.Context())
	if err != nil {
		return err
	}

	txs := svc.Query.TopByAmount(r.flags.Limit)
	return views.Render(cmd.OutOrStdout(), r.rt.OutputFormat(), txs, func() error {
		title := fmt.Sprintf("Top %d Transactions by Amount", r.flags.Limit)
		return views.NewTransactionListView(title).Render(txs)
	})
}

func NewTopSenderCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "top-sender",
		Short: "Sender with the largest total sent amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			result := amountResult{}
			name, ok := svc.Query.TopSender()
			if ok {
				result.Sender = &name
				result.Amount = svc.Query.TotalAmountSentBy(name)
			}

			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), result, func() error {
				if !ok {
					pterm.Warning.Printf("Top Sender: %s\n", constants.TopSenderNone)
					return nil
				}
				return views.RenderValues(
					views.ValueItem{Label: "Top Sender", Value: name},
					views.ValueItem{Label: "Total Sent", Value: utils.FormatAmount(result.Amount)},
				)
			})
		},
	}
}
