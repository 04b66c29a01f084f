package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/ui/prompts"
	"github.com/smallworld/txstats/internal/ui/views"
)

type clientsFlags struct {
	List bool
}

func NewClientsCmd(rt Runtime) *cobra.Command {
	flags := &clientsFlags{}

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Count unique clients (senders and beneficiaries)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			result := struct {
				Count   int      `json:"count"`
				Clients []string `json:"clients,omitempty"`
			}{Count: svc.Query.UniqueClientCount()}
			if flags.List {
				result.Clients = svc.Query.Clients()
			}

			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), result, func() error {
				items := []views.ValueItem{{Label: "Number of Unique Clients", Value: fmt.Sprintf("%d", result.Count)}}
				for i, name := range result.Clients {
					items = append(items, views.ValueItem{Label: fmt.Sprintf("%d", i+1), Value: name})
				}
				return views.RenderValues(items...)
			})
		},
	}

	cmd.Flags().BoolVar(&flags.List, "list", false, "Also list every client name")

	return cmd
}

type complianceRunner struct {
	rt     Runtime
	prompt func(message string, clients []string) (string, error)
}

func NewComplianceCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "compliance [client-full-name]",
		Short: "Check whether a client has an open compliance issue",
		Long: `Report whether the client, as sender or beneficiary, has at least one
transaction with a compliance issue that is not solved yet.

Without an argument an interactive picker lists the known clients.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &complianceRunner{
				rt:     rt,
				prompt: prompts.PromptClient,
			}
			return runner.Run(cmd, args)
		},
	}
}

func (r *complianceRunner) Run(cmd *cobra.Command, args []string) error {
	svc, err := r.rt.Service(cmd.Context())
	if err != nil {
		return err
	}

	var client string
	if len(args) == 1 {
		client = args[0]
	} else {
		client, err = r.prompt("Select a client:", svc.Query.Clients())
		if err != nil {
			return err
		}
	}

	open := svc.Query.HasOpenComplianceIssue(client)
	result := struct {
		Client       string `json:"client"`
		HasOpenIssue bool   `json:"hasOpenIssue"`
	}{client, open}

	return views.Render(cmd.OutOrStdout(), r.rt.OutputFormat(), result, func() error {
		views.RenderComplianceStatus(client, open)
		return nil
	})
}

func NewBeneficiariesCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "beneficiaries",
		Short: "Transactions indexed by beneficiary name",
		Long: `Show one transaction per beneficiary name. When a beneficiary received
several transactions, the last one in the source order is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			index := svc.Query.TransactionsByBeneficiary()
			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), index, func() error {
				return views.RenderBeneficiaries(index)
			})
		},
	}
}
