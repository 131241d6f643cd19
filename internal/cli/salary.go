package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"payroll/internal/domain/salary"
)

type structureFlags struct {
	Basic, HRA, DA, PF, Other string
	EffectiveFrom             string
}

func (s *structureFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.Basic, "basic", "", "basic salary")
	f.StringVar(&s.HRA, "hra", "", "house rent allowance")
	f.StringVar(&s.DA, "da", "", "dearness allowance")
	f.StringVar(&s.PF, "pf", "", "provident fund deduction")
	f.StringVar(&s.Other, "other", "", "other allowances")
	f.StringVar(&s.EffectiveFrom, "effective-from", "", "first day the structure applies (YYYY-MM-DD)")
}

// apply writes every flag that was set on cmd into req.
func (s *structureFlags) apply(cmd *cobra.Command, req *salary.StructureRequest) error {
	amounts := []struct {
		flag, field string
		raw         string
		dst         *decimal.Decimal
	}{
		{"basic", "basicSalary", s.Basic, &req.BasicSalary},
		{"hra", "hra", s.HRA, &req.HRA},
		{"da", "dearnessAllowance", s.DA, &req.DearnessAllowance},
		{"pf", "providentFund", s.PF, &req.ProvidentFund},
		{"other", "otherAllowances", s.Other, &req.OtherAllowances},
	}
	for _, a := range amounts {
		if !cmd.Flags().Changed(a.flag) {
			continue
		}
		d, err := amount(a.field, a.raw)
		if err != nil {
			return err
		}
		*a.dst = d
	}
	if cmd.Flags().Changed("effective-from") {
		req.EffectiveFrom = s.EffectiveFrom
	}
	return nil
}

func (r *runner) newSalaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Salary structures and salary history",
	}

	overview := &cobra.Command{
		Use:   "overview",
		Short: "List employees with their current salary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			search, _ := cmd.Flags().GetString("search")
			return r.show(cmd.Context(), "/organization/salary-structure?search="+url.QueryEscape(search))
		},
	}
	overview.Flags().String("search", "", "filter by name or department")

	show := &cobra.Command{
		Use:   "show <employee-id>",
		Short: "Show an employee's active structure and history",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.show(cmd.Context(), "/organization/salary-structure/employee/"+args[0])
		},
	}

	var createFlags structureFlags
	create := &cobra.Command{
		Use:   "create <employee-id>",
		Short: "Create a structure; it replaces the active one",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := idArg(args)
			if err != nil {
				return err
			}
			var req salary.StructureRequest
			if err := createFlags.apply(cmd, &req); err != nil {
				return err
			}
			s, err := r.app.Services.Salary.Create(cmd.Context(), employeeID, req)
			if err != nil {
				return err
			}
			gross, deductions, net := salary.Compute(salary.RequestFrom(s))
			fmt.Fprintf(r.out, "Structure %d: gross %s, deductions %s, net %s\n",
				s.ID, gross.StringFixed(2), deductions.StringFixed(2), net.StringFixed(2))
			return nil
		},
	}
	createFlags.bind(create)

	var updateFlags structureFlags
	update := &cobra.Command{
		Use:   "update <structure-id>",
		Short: "Change a structure; unset flags keep their value",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			current, err := r.app.Services.Salary.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := salary.RequestFrom(current)
			if err := updateFlags.apply(cmd, &req); err != nil {
				return err
			}
			s, err := r.app.Services.Salary.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/organization/salary-structure/employee/%d", s.EmployeeID))
		},
	}
	updateFlags.bind(update)

	deactivate := &cobra.Command{
		Use:   "deactivate <structure-id>",
		Short: "Deactivate a structure",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			return r.app.Services.Salary.Deactivate(cmd.Context(), id)
		},
	}

	active := &cobra.Command{
		Use:   "active <employee-id>",
		Short: "Print the id and net salary of the active structure",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := idArg(args)
			if err != nil {
				return err
			}
			s, ok, err := r.app.Services.Salary.ActiveStructure(cmd.Context(), employeeID)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("employee %d has no active salary structure", employeeID)
			}
			fmt.Fprintf(r.out, "%d\t%s\n", s.ID, s.NetSalary.StringFixed(2))
			return nil
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "Show your salary payments (employees)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, _ := cmd.Flags().GetInt("year")
			return r.show(cmd.Context(), fmt.Sprintf("/employee/salary-history?year=%d", year))
		},
	}
	history.Flags().Int("year", 0, "only this year (0 for all)")

	statement := &cobra.Command{
		Use:   "statement --out <file.pdf>",
		Short: "Write your salary statement as a PDF (employees)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			year, _ := cmd.Flags().GetInt("year")
			out, _ := cmd.Flags().GetString("out")
			profile, err := r.app.Services.Employees.Profile(cmd.Context())
			if err != nil {
				return err
			}
			history, err := r.app.Services.Salary.MyHistory(cmd.Context(), year)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "create statement file")
			}
			defer f.Close()
			err = salary.WriteStatement(f, salary.Statement{
				EmployeeName: profile.Name,
				Email:        profile.Email,
				Department:   profile.Department,
				Designation:  profile.Designation,
			}, history)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "Statement written to %s\n", out)
			return nil
		},
	}
	statement.Flags().Int("year", 0, "only this year (0 for all)")
	statement.Flags().String("out", "salary-statement.pdf", "output file")

	cmd.AddCommand(overview, show, create, update, deactivate, active, history, statement)
	return cmd
}
