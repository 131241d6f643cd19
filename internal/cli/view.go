package cli

import (
	"github.com/spf13/cobra"

	"payroll/internal/domain/auth"
)

func (r *runner) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Render a view such as /organization/employees?page=2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.show(cmd.Context(), args[0])
		},
	}
}

func (r *runner) newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Render the dashboard of the signed-in role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.show(cmd.Context(), auth.DashboardPath(r.app.Session.Role()))
		},
	}
}
