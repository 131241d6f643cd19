package ui

import (
	"fmt"
	"io"
	"net/http"

	"payroll/internal/domain/concerns"
)

func (v *views) employeeDashboard(w io.Writer, r *http.Request) error {
	if v.svc.Dashboard == nil {
		return errUnavailable
	}
	d, err := v.svc.Dashboard.Employee(r.Context())
	if err != nil {
		return err
	}
	title(w, "Welcome, "+d.Profile.Name)
	last := "-"
	if d.LastPaid != nil {
		last = fmt.Sprintf("%s on %s (%s %d)", money(d.LastPaid.NetSalary), date(d.LastPaid.PaymentDate), d.LastPaid.Month, d.LastPaid.Year)
	}
	return fields(w,
		field{"Organization", d.Profile.OrganizationName},
		field{"Designation", d.Profile.Designation},
		field{"Current salary", optionalMoney(d.Profile.CurrentSalary)},
		field{"Account", string(d.Profile.AccountVerificationStatus)},
		field{"Total paid", money(d.TotalPaid)},
		field{"Last payment", last},
	)
}

func (v *views) employeeProfile(w io.Writer, r *http.Request) error {
	if v.svc.Employees == nil {
		return errUnavailable
	}
	p, err := v.svc.Employees.Profile(r.Context())
	if err != nil {
		return err
	}
	title(w, p.Name)
	return fields(w,
		field{"Email", p.Email},
		field{"Phone", p.Phone},
		field{"Address", p.Address},
		field{"Organization", p.OrganizationName},
		field{"Department", p.Department},
		field{"Designation", p.Designation},
		field{"Joined", date(p.DateOfJoining)},
		field{"Bank", p.BankName},
		field{"Account", p.BankAccountNumber},
		field{"IFSC", p.IFSCCode},
		field{"Account verification", string(p.AccountVerificationStatus)},
		field{"Current salary", optionalMoney(p.CurrentSalary)},
		field{"Picture", p.ProfilePictureURL},
	)
}

func (v *views) employeeSalaryHistory(w io.Writer, r *http.Request) error {
	if v.svc.Salary == nil {
		return errUnavailable
	}
	h, err := v.svc.Salary.MyHistory(r.Context(), queryInt(r, "year"))
	if err != nil {
		return err
	}
	heading := "Salary history"
	if h.Year > 0 {
		heading = fmt.Sprintf("Salary history %d", h.Year)
	}
	title(w, heading)
	rows := make([][]string, 0, len(h.Entries))
	for _, e := range h.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%s %d", e.Month, e.Year), money(e.NetSalary), string(e.Status), date(e.PaymentDate),
		})
	}
	if err := table(w, []string{"PERIOD", "NET", "STATUS", "PAID ON"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTotal paid: %s\n", money(h.TotalPaid))
	return nil
}

func (v *views) employeeConcerns(w io.Writer, r *http.Request) error {
	if v.svc.Concerns == nil {
		return errUnavailable
	}
	list, err := v.svc.Concerns.Mine(r.Context())
	if err != nil {
		return err
	}
	concerns.SortByPriority(list)
	title(w, "My concerns")
	if err := concernTable(w, list, false); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nRaise a new one: payrollctl concerns raise --subject <text> --description <text>")
	return nil
}

func (v *views) employeeConcern(w io.Writer, r *http.Request) error {
	if v.svc.Concerns == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	c, err := v.svc.Concerns.GetMine(r.Context(), id)
	if err != nil {
		return err
	}
	return concernDetail(w, c)
}
