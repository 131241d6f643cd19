package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"payroll/internal/domain/employees"
	"payroll/internal/platform/media"
)

var employeeFlagUsage = map[string]string{
	"name":        "full name",
	"email":       "work email",
	"phone":       "10 digit phone",
	"address":     "postal address",
	"department":  "department",
	"designation": "designation",
	"joined":      "date of joining (YYYY-MM-DD)",
	"account":     "bank account number",
	"bank":        "bank name",
	"ifsc":        "IFSC code",
}

func employeeFields(req *employees.Request) map[string]*string {
	return map[string]*string{
		"name":        &req.Name,
		"email":       &req.Email,
		"phone":       &req.Phone,
		"address":     &req.Address,
		"department":  &req.Department,
		"designation": &req.Designation,
		"joined":      &req.DateOfJoining,
		"account":     &req.BankAccountNumber,
		"bank":        &req.BankName,
		"ifsc":        &req.IFSCCode,
	}
}

func bindEmployeeFlags(cmd *cobra.Command, req *employees.Request) {
	for name, ptr := range employeeFields(req) {
		cmd.Flags().StringVar(ptr, name, "", employeeFlagUsage[name])
	}
}

func (r *runner) newEmployeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"emp"},
		Short:   "Manage the organization's employees",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, _ := cmd.Flags().GetInt("page")
			return r.show(cmd.Context(), fmt.Sprintf("/organization/employees?page=%d", page))
		},
	}
	list.Flags().Int("page", 1, "page number")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one employee",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.show(cmd.Context(), "/organization/employees/"+args[0])
		},
	}

	var addReq employees.Request
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := r.app.Services.Employees.Create(cmd.Context(), addReq)
			if err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/organization/employees/%d", e.ID))
		},
	}
	bindEmployeeFlags(add, &addReq)

	var updateReq employees.Request
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change employee details; unset flags keep their value",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			current, err := r.app.Services.Employees.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			req := employees.RequestFrom(current)
			dst := employeeFields(&req)
			for name, value := range employeeFields(&updateReq) {
				if cmd.Flags().Changed(name) {
					*dst[name] = *value
				}
			}
			if _, err := r.app.Services.Employees.Update(cmd.Context(), id, req); err != nil {
				return err
			}
			return r.show(cmd.Context(), fmt.Sprintf("/organization/employees/%d", id))
		},
	}
	bindEmployeeFlags(update, &updateReq)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			e, err := r.app.Services.Employees.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return r.app.Services.Employees.Delete(cmd.Context(), id, e.Name)
		},
	}

	status := &cobra.Command{
		Use:   "status <id> <ACTIVE|INACTIVE|TERMINATED|ON_LEAVE>",
		Short: "Change an employee's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			e, err := r.app.Services.Employees.ChangeStatus(cmd.Context(), id, employees.Status(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s is now %s\n", e.Name, e.Status)
			return nil
		},
	}

	verify := &cobra.Command{
		Use:   "verify <id>",
		Short: "Mark an employee's bank account as verified",
		Args:  oneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := idArg(args)
			if err != nil {
				return err
			}
			e, err := r.app.Services.Employees.VerifyAccount(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(r.out, "%s account: %s\n", e.Name, e.AccountVerificationStatus)
			return nil
		},
	}

	picture := &cobra.Command{
		Use:   "picture <file>",
		Short: "Upload your profile picture (employees)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := media.OpenFile(args[0])
			if err != nil {
				return err
			}
			url, err := r.app.Services.Employees.UpdateProfilePicture(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(r.out, url)
			return nil
		},
	}

	cmd.AddCommand(list, show, add, update, remove, status, verify, picture)
	return cmd
}
