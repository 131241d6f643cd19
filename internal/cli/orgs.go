package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"payroll/internal/domain/organizations"
)

func (r *runner) newOrgsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations"},
		Short:   "Review and verify registered organizations (bank admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			search, _ := cmd.Flags().GetString("search")
			page, _ := cmd.Flags().GetInt("page")
			q := url.Values{}
			q.Set("filter", strings.ToUpper(filter))
			q.Set("search", search)
			q.Set("page", fmt.Sprint(page))
			return r.show(cmd.Context(), "/admin/organizations?"+q.Encode())
		},
	}
	list.Flags().String("filter", organizations.FilterAll, strings.Join(organizations.Filters, ", "))
	list.Flags().String("search", "", "match name, email or registration number")
	list.Flags().Int("page", 1, "page number")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one organization",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.show(cmd.Context(), "/admin/organizations/"+args[0])
		},
	}

	decide := func(approve bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			remarks, _ := cmd.Flags().GetString("remarks")
			o, err := r.app.Services.Organizations.Verify(cmd.Context(), id, approve, remarks)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s verified: %t\n", o.Name, o.Verified)
			return nil
		}
	}
	verify := &cobra.Command{
		Use:   "verify <id>",
		Short: "Approve an organization",
		Args:  oneID,
		RunE:  decide(true),
	}
	verify.Flags().String("remarks", "", "optional note")
	reject := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject an organization",
		Args:  oneID,
		RunE:  decide(false),
	}
	reject.Flags().String("remarks", "", "reason shown to the organization")

	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show your own organization profile (organization)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := r.app.Services.Organizations.Profile(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(r.out)
			fmt.Fprintf(tw, "Name:\t%s\n", o.Name)
			fmt.Fprintf(tw, "Registration number:\t%s\n", o.RegistrationNumber)
			fmt.Fprintf(tw, "Email:\t%s\n", o.Email)
			fmt.Fprintf(tw, "Phone:\t%s\n", o.ContactPhone)
			fmt.Fprintf(tw, "Verified:\t%t\n", o.Verified)
			return tw.Flush()
		},
	}

	cmd.AddCommand(list, show, verify, reject, profile)
	return cmd
}
