package query

import (
	"github.com/spf13/cobra"

	"github.com/smallworld/txstats/internal/ui/views"
)

func NewUnsolvedCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "unsolved",
		Short: "Identifiers of all open compliance issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			ids := svc.Query.UnsolvedIssueIDs()
			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), ids, func() error {
				views.RenderUnsolvedIssueIDs(ids)
				return nil
			})
		},
	}
}

func NewSolvedMessagesCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "solved-messages",
		Short: "Messages of every transaction flagged as solved",
		Long: `List, in source order, the issue message of every transaction whose
issueSolved flag is set. Records without a message are shown as null.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.Service(cmd.Context())
			if err != nil {
				return err
			}

			messages := svc.Query.AllSolvedIssueMessages()
			return views.Render(cmd.OutOrStdout(), rt.OutputFormat(), messages, func() error {
				return views.RenderSolvedIssueMessages(messages)
			})
		},
	}
}
