package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"payroll/internal/domain/auth"
	"payroll/internal/domain/concerns"
	"payroll/internal/platform/media"
)

type raiseOptions struct {
	Subject     string
	Description string
	Priority    string
	Attachment  string
}

func (r *runner) newConcernsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concerns",
		Short: "Raise and handle employee concerns",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List concerns; employees see their own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			if r.app.Session.Role() == auth.RoleEmployee {
				return r.show(cmd.Context(), "/employee/concerns")
			}
			return r.show(cmd.Context(), "/organization/concerns?filter="+url.QueryEscape(strings.ToUpper(filter)))
		},
	}
	list.Flags().String("filter", concerns.FilterAll, strings.Join(concerns.Filters, ", "))

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one concern",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.app.Session.Role() == auth.RoleEmployee {
				return r.show(cmd.Context(), "/employee/concerns/"+args[0])
			}
			return r.show(cmd.Context(), "/organization/concerns/"+args[0])
		},
	}

	var opts raiseOptions
	raise := &cobra.Command{
		Use:   "raise --subject <text> --description <text>",
		Short: "Raise a concern with your organization (employees)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var attachment *media.File
			if opts.Attachment != "" {
				f, err := media.OpenFile(opts.Attachment)
				if err != nil {
					return err
				}
				attachment = &f
			}
			c, err := r.app.Services.Concerns.Raise(cmd.Context(), concerns.CreateRequest{
				Subject:     opts.Subject,
				Description: opts.Description,
				Priority:    concerns.Priority(strings.ToUpper(opts.Priority)),
			}, attachment)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/employee/concerns/%d", c.ID))
		},
	}
	f := raise.Flags()
	f.StringVar(&opts.Subject, "subject", "", "at least 5 characters")
	f.StringVar(&opts.Description, "description", "", "at least 20 characters")
	f.StringVar(&opts.Priority, "priority", "", "LOW, MEDIUM (default), HIGH or CRITICAL")
	f.StringVar(&opts.Attachment, "attach", "", "file to attach (image or PDF)")

	status := &cobra.Command{
		Use:   "status <id> <OPEN|IN_PROGRESS|RESOLVED|CLOSED>",
		Short: "Move a concern to another status (organization)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			c, err := r.app.Services.Concerns.UpdateStatus(cmd.Context(), id, concerns.Status(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "Concern %d is %s\n", c.ID, c.Status)
			return nil
		},
	}

	respond := &cobra.Command{
		Use:   "respond <id> --message <text>",
		Short: "Reply to a concern (organization)",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			message, _ := cmd.Flags().GetString("message")
			if message, err = r.value(message, "Response"); err != nil {
				return err
			}
			c, err := r.app.Services.Concerns.Respond(cmd.Context(), id, message)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/organization/concerns/%d", c.ID))
		},
	}
	respond.Flags().String("message", "", "at least 20 characters")

	cmd.AddCommand(list, show, raise, status, respond)
	return cmd
}
