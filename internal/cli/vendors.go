package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"payroll/internal/domain/vendors"
)

type vendorOptions struct {
	vendors.Request
	GST         string
	ContractEnd string
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func (r *runner) newVendorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Manage the organization's vendors",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, _ := cmd.Flags().GetInt("page")
			return r.show(cmd.Context(), fmt.Sprintf("/organization/vendors?page=%d", page))
		},
	}
	list.Flags().Int("page", 1, "page number")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one vendor",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.show(cmd.Context(), "/organization/vendors/"+args[0])
		},
	}

	var opts vendorOptions
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := opts.Request
			req.GSTNumber = optional(opts.GST)
			req.ContractEndDate = optional(opts.ContractEnd)
			v, err := r.app.Services.Vendors.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/organization/vendors/%d", v.ID))
		},
	}
	f := add.Flags()
	f.StringVar(&opts.Name, "name", "", "vendor name")
	f.StringVar(&opts.Email, "email", "", "contact email")
	f.StringVar(&opts.Phone, "phone", "", "10 digit phone")
	f.StringVar(&opts.Address, "address", "", "postal address")
	f.StringVar(&opts.ServiceType, "service", "", "one of: "+strings.Join(vendors.ServiceTypes, ", "))
	f.StringVar(&opts.BankAccountNumber, "account", "", "bank account number")
	f.StringVar(&opts.BankName, "bank", "", "bank name")
	f.StringVar(&opts.IFSCCode, "ifsc", "", "IFSC code")
	f.StringVar(&opts.PANNumber, "pan", "", "PAN")
	f.StringVar(&opts.GST, "gst", "", "GSTIN (optional)")
	f.StringVar(&opts.ContractStartDate, "contract-start", "", "contract start (YYYY-MM-DD)")
	f.StringVar(&opts.ContractEnd, "contract-end", "", "contract end (optional)")

	status := &cobra.Command{
		Use:   "status <id> <ACTIVE|INACTIVE|BLACKLISTED>",
		Short: "Change a vendor's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			v, err := r.app.Services.Vendors.ChangeStatus(cmd.Context(), id, vendors.Status(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s is now %s\n", v.Name, v.Status)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a vendor",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			v, err := r.app.Services.Vendors.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return r.app.Services.Vendors.Delete(cmd.Context(), id, v.Name)
		},
	}

	cmd.AddCommand(list, show, add, status, remove)
	return cmd
}
