package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"payroll/internal/domain/payments"
)

type draftOptions struct {
	Type          string
	Month         string
	Year          int
	Remarks       string
	Employees     []string
	All           bool
	Vendor        int64
	Amount        string
	InvoiceNumber string
	InvoiceDate   string
	Description   string
}

func (r *runner) newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"pay"},
		Short:   "Payment requests: create, review, approve and process",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your organization's payment requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetString("status")
			return r.show(cmd.Context(), "/organization/payment-requests?status="+url.QueryEscape(status))
		},
	}
	list.Flags().String("status", "", "PENDING, APPROVED, REJECTED, PROCESSING or COMPLETED")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one of your payment requests",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.show(cmd.Context(), "/organization/payment-requests/"+args[0])
		},
	}

	candidates := &cobra.Command{
		Use:   "candidates",
		Short: "List eligible employees and selectable vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := r.app.Services.Payments.NewDraft(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(r.out)
			fmt.Fprintln(tw, "EMPLOYEE\tNAME\tDEPARTMENT\tSALARY")
			for _, e := range draft.Employees.Candidates() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Department, e.CurrentSalary.Decimal.StringFixed(2))
			}
			fmt.Fprintln(tw, "\t\t\t")
			fmt.Fprintln(tw, "VENDOR\tNAME\tSERVICE\t")
			for _, v := range draft.Vendors() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t\n", v.ID, v.Name, v.ServiceType)
			}
			return tw.Flush()
		},
	}

	var opts draftOptions
	create := &cobra.Command{
		Use:   "create",
		Short: "Submit a salary or vendor payment request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := r.app.Services.Payments.NewDraft(cmd.Context())
			if err != nil {
				return err
			}
			if err := opts.fill(cmd, draft); err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s for %s %d: %s\n", draft.Type, draft.Month, draft.Year, draft.Total().StringFixed(2))
			created, err := r.app.Services.Payments.Submit(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/organization/payment-requests/%d", created.ID))
		},
	}
	f := create.Flags()
	f.StringVar(&opts.Type, "type", "salary", "salary or vendor")
	f.StringVar(&opts.Month, "month", "", "JANUARY..DECEMBER (default current month)")
	f.IntVar(&opts.Year, "year", 0, "current year or one of the two before it")
	f.StringVar(&opts.Remarks, "remarks", "", "free text")
	f.StringSliceVar(&opts.Employees, "employees", nil, "employee ids to pay (salary)")
	f.BoolVar(&opts.All, "all", false, "pay every eligible employee (salary)")
	f.Int64Var(&opts.Vendor, "vendor", 0, "vendor id (vendor)")
	f.StringVar(&opts.Amount, "amount", "", "invoice amount (vendor)")
	f.StringVar(&opts.InvoiceNumber, "invoice-number", "", "invoice number (vendor)")
	f.StringVar(&opts.InvoiceDate, "invoice-date", "", "invoice date (vendor)")
	f.StringVar(&opts.Description, "description", "", "what the invoice covers (vendor)")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a pending payment request",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return r.app.Services.Payments.Delete(cmd.Context(), id)
		},
	}

	queue := &cobra.Command{
		Use:   "queue [id]",
		Short: "Review payment requests from every organization (bank admin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return r.show(cmd.Context(), "/admin/payment-requests/"+args[0])
			}
			status, _ := cmd.Flags().GetString("status")
			return r.show(cmd.Context(), "/admin/payment-requests?status="+url.QueryEscape(status))
		},
	}
	queue.Flags().String("status", "", "only requests in this status")

	approve := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending request (bank admin)",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			p, err := r.app.Services.AdminPayments.Approve(cmd.Context(), id)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), adminRequestPath(p.ID))
		},
	}

	reject := &cobra.Command{
		Use:   "reject <id> --reason <text>",
		Short: "Reject a pending request (bank admin)",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			reason, _ := cmd.Flags().GetString("reason")
			if reason, err = r.value(reason, "Rejection reason"); err != nil {
				return err
			}
			p, err := r.app.Services.AdminPayments.Reject(cmd.Context(), id, reason)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), adminRequestPath(p.ID))
		},
	}
	reject.Flags().String("reason", "", "at least 10 characters")

	process := &cobra.Command{
		Use:   "process <id>",
		Short: "Disburse an approved request (bank admin)",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			p, _, err := r.app.Services.AdminPayments.Process(cmd.Context(), id)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), adminRequestPath(p.ID))
		},
	}

	export := &cobra.Command{
		Use:   "export --out <file.xlsx>",
		Short: "Write the payment request list to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")
			status, _ := cmd.Flags().GetString("status")
			admin, _ := cmd.Flags().GetBool("admin")
			var (
				list []payments.Summary
				err  error
			)
			if admin {
				list, err = r.app.Services.AdminPayments.List(cmd.Context(), status)
			} else {
				list, err = r.app.Services.Payments.List(cmd.Context(), status)
			}
			if err != nil {
				return err
			}
			if err := r.app.Services.Reports.ExportPaymentRequests(list, out); err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%d requests written to %s\n", len(list), out)
			return nil
		},
	}
	export.Flags().String("out", "payment-requests.xlsx", "output file")
	export.Flags().String("status", "", "only requests in this status")
	export.Flags().Bool("admin", false, "export the bank-wide list")

	cmd.AddCommand(list, show, candidates, create, remove, queue, approve, reject, process, export)
	return cmd
}

// fill applies the flags to a fresh draft.
func (o *draftOptions) fill(cmd *cobra.Command, draft *payments.Draft) error {
	switch strings.ToLower(o.Type) {
	case "salary", string(payments.TypeSalary):
	case "vendor", string(payments.TypeVendor):
		draft.SetType(payments.TypeVendor)
	default:
		return errors.Errorf("unknown payment type %q", o.Type)
	}
	if o.Month != "" {
		draft.Month = strings.ToUpper(o.Month)
	}
	if o.Year != 0 {
		draft.Year = o.Year
	}
	draft.Remarks = o.Remarks

	if draft.Type == payments.TypeSalary {
		if o.All {
			draft.Employees.ToggleAll()
		}
		ids, err := parseIDs(o.Employees)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if draft.Employees.Selected(id) {
				continue
			}
			if err := draft.Employees.Toggle(id); err != nil {
				return errors.Wrapf(err, "employee %d", id)
			}
		}
		return nil
	}

	if cmd.Flags().Changed("vendor") {
		if err := draft.SelectVendor(o.Vendor); err != nil {
			return errors.Wrapf(err, "vendor %d", o.Vendor)
		}
	}
	total, err := amount("vendorAmount", o.Amount)
	if err != nil {
		return err
	}
	draft.Invoice = payments.Invoice{
		Amount:      total,
		Number:      o.InvoiceNumber,
		Date:        o.InvoiceDate,
		Description: o.Description,
	}
	return nil
}

func adminRequestPath(id int64) string {
	return fmt.Sprintf("/admin/payment-requests/%d", id)
}
