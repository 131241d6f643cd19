package ui

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"payroll/internal/domain/concerns"
	"payroll/internal/domain/payments"
	"payroll/internal/domain/reports"
	"payroll/internal/domain/salary"
)

func (v *views) orgDashboard(w io.Writer, r *http.Request) error {
	if v.svc.Dashboard == nil {
		return errUnavailable
	}
	d, err := v.svc.Dashboard.Organization(r.Context())
	if err != nil {
		return err
	}
	title(w, d.Profile.Name+" dashboard")
	s := d.Stats
	if err := fields(w,
		field{"Employees", strconv.Itoa(s.TotalEmployees)},
		field{"Active employees", strconv.Itoa(s.ActiveEmployees)},
		field{"Verified accounts", strconv.Itoa(s.VerifiedEmployees)},
		field{"Pending verifications", strconv.Itoa(s.PendingVerifications)},
		field{"Pending payment requests", strconv.Itoa(s.PendingPayments)},
		field{"Completed payments", strconv.Itoa(s.CompletedPayments)},
		field{"Open concerns", strconv.Itoa(s.OpenConcerns)},
		field{"Critical concerns", strconv.Itoa(s.CriticalConcerns)},
	); err != nil {
		return err
	}
	if !d.Profile.Verified {
		fmt.Fprintln(w, "\nYour organization is awaiting verification by the bank.")
	}
	return nil
}

func (v *views) orgEmployees(w io.Writer, r *http.Request) error {
	if v.svc.Employees == nil {
		return errUnavailable
	}
	list, err := v.svc.Employees.List(r.Context())
	if err != nil {
		return err
	}
	title(w, "Employees")
	shown, pages := paginate(list, queryInt(r, "page"), v.pageSize)
	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10), e.Name, e.Email, e.Department, e.Designation,
			string(e.Status), string(e.AccountVerificationStatus), optionalMoney(e.CurrentSalary),
		})
	}
	if err := table(w, []string{"ID", "NAME", "EMAIL", "DEPARTMENT", "DESIGNATION", "STATUS", "ACCOUNT", "SALARY"}, rows); err != nil {
		return err
	}
	if pages > 1 {
		fmt.Fprintf(w, "\n%d pages, use ?page=N\n", pages)
	}
	return nil
}

func (v *views) orgEmployee(w io.Writer, r *http.Request) error {
	if v.svc.Employees == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	e, err := v.svc.Employees.Get(r.Context(), id)
	if err != nil {
		return err
	}
	title(w, e.Name)
	return fields(w,
		field{"Email", e.Email},
		field{"Phone", e.Phone},
		field{"Address", e.Address},
		field{"Department", e.Department},
		field{"Designation", e.Designation},
		field{"Joined", date(e.DateOfJoining)},
		field{"Status", string(e.Status)},
		field{"Bank", e.BankName},
		field{"Account", e.BankAccountNumber},
		field{"IFSC", e.IFSCCode},
		field{"Account verification", string(e.AccountVerificationStatus)},
		field{"Account proof", e.AccountProofURL},
	)
}

func (v *views) orgSalaryOverview(w io.Writer, r *http.Request) error {
	if v.svc.Salary == nil {
		return errUnavailable
	}
	list, err := v.svc.Salary.Overview(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		return err
	}
	title(w, "Salary structures")
	rows := make([][]string, 0, len(list))
	for _, row := range list {
		current := "-"
		if row.HasActiveSalary {
			current = money(row.CurrentSalary)
		}
		rows = append(rows, []string{
			strconv.FormatInt(row.EmployeeID, 10), row.EmployeeName, row.Department,
			row.Designation, row.Status, current,
		})
	}
	return table(w, []string{"EMPLOYEE", "NAME", "DEPARTMENT", "DESIGNATION", "STATUS", "NET SALARY"}, rows)
}

func (v *views) orgSalaryStructure(w io.Writer, r *http.Request) error {
	if v.svc.Salary == nil {
		return errUnavailable
	}
	employeeID, err := pathID(r, "employeeId")
	if err != nil {
		return err
	}
	history, err := v.svc.Salary.History(r.Context(), employeeID)
	if err != nil {
		return err
	}
	active, ok := salary.Active(history)
	if !ok {
		title(w, fmt.Sprintf("Salary structure for employee %d", employeeID))
		fmt.Fprintf(w, "No active structure. Create one with: payrollctl salary create %d ...\n\n", employeeID)
	} else {
		title(w, "Salary structure for "+active.EmployeeName)
		if err := fields(w,
			field{"Basic", money(active.BasicSalary)},
			field{"HRA", money(active.HRA)},
			field{"Dearness allowance", money(active.DearnessAllowance)},
			field{"Other allowances", money(active.OtherAllowances)},
			field{"Provident fund", money(active.ProvidentFund)},
			field{"Gross", money(active.GrossSalary)},
			field{"Net", money(active.NetSalary)},
			field{"Effective from", date(active.EffectiveFrom)},
		); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "History")
	rows := make([][]string, 0, len(history))
	for _, s := range history {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10), date(s.EffectiveFrom), money(s.GrossSalary),
			money(s.NetSalary), yesNo(s.IsActive),
		})
	}
	return table(w, []string{"ID", "EFFECTIVE", "GROSS", "NET", "ACTIVE"}, rows)
}

func (v *views) orgPaymentRequests(w io.Writer, r *http.Request) error {
	if v.svc.Payments == nil {
		return errUnavailable
	}
	list, err := v.svc.Payments.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		return err
	}
	title(w, "Payment requests")
	c := payments.CountByStatus(list)
	fmt.Fprintf(w, "Total %d  Pending %d  Approved %d  Rejected %d  Completed %d\n\n",
		c.Total, c.Pending, c.Approved, c.Rejected, c.Completed)
	shown, pages := paginate(list, queryInt(r, "page"), v.pageSize)
	if err := paymentTable(w, shown); err != nil {
		return err
	}
	if pages > 1 {
		fmt.Fprintf(w, "\n%d pages, use ?page=N\n", pages)
	}
	return nil
}

func (v *views) orgPaymentRequest(w io.Writer, r *http.Request) error {
	if v.svc.Payments == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	p, err := v.svc.Payments.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if err := paymentDetail(w, p); err != nil {
		return err
	}
	if payments.CanDelete(p.Status) {
		fmt.Fprintf(w, "\nActions: payrollctl payments delete %d\n", p.ID)
	}
	return nil
}

func (v *views) orgVendors(w io.Writer, r *http.Request) error {
	if v.svc.Vendors == nil {
		return errUnavailable
	}
	list, err := v.svc.Vendors.List(r.Context())
	if err != nil {
		return err
	}
	title(w, "Vendors")
	shown, pages := paginate(list, queryInt(r, "page"), v.pageSize)
	rows := make([][]string, 0, len(shown))
	for _, vendor := range shown {
		rows = append(rows, []string{
			strconv.FormatInt(vendor.ID, 10), vendor.Name, vendor.Email, vendor.ServiceType,
			string(vendor.Status), date(vendor.ContractStartDate),
		})
	}
	if err := table(w, []string{"ID", "NAME", "EMAIL", "SERVICE", "STATUS", "CONTRACT START"}, rows); err != nil {
		return err
	}
	if pages > 1 {
		fmt.Fprintf(w, "\n%d pages, use ?page=N\n", pages)
	}
	return nil
}

func (v *views) orgVendor(w io.Writer, r *http.Request) error {
	if v.svc.Vendors == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	vendor, err := v.svc.Vendors.Get(r.Context(), id)
	if err != nil {
		return err
	}
	contract := date(vendor.ContractStartDate)
	if vendor.ContractEndDate != "" {
		contract += " to " + date(vendor.ContractEndDate)
	}
	title(w, vendor.Name)
	return fields(w,
		field{"Email", vendor.Email},
		field{"Phone", vendor.Phone},
		field{"Address", vendor.Address},
		field{"Service", vendor.ServiceType},
		field{"Bank", vendor.BankName},
		field{"Account", vendor.BankAccountNumber},
		field{"IFSC", vendor.IFSCCode},
		field{"PAN", vendor.PANNumber},
		field{"GSTIN", vendor.GSTNumber},
		field{"Contract", contract},
		field{"Status", string(vendor.Status)},
	)
}

func (v *views) orgConcerns(w io.Writer, r *http.Request) error {
	if v.svc.Concerns == nil {
		return errUnavailable
	}
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = concerns.FilterAll
	}
	list, stats, err := v.svc.Concerns.List(r.Context(), filter)
	if err != nil {
		return err
	}
	title(w, "Employee concerns")
	fmt.Fprintf(w, "Total %d  Pending %d  In progress %d  Resolved %d  Critical %d  High %d\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Resolved, stats.Critical, stats.High)
	fmt.Fprintf(w, "Filters: %s\n\n", strings.Join(concerns.Filters, ", "))
	return concernTable(w, list, true)
}

func (v *views) orgConcern(w io.Writer, r *http.Request) error {
	if v.svc.Concerns == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	c, err := v.svc.Concerns.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if err := concernDetail(w, c); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nActions: payrollctl concerns status %d <OPEN|IN_PROGRESS|RESOLVED|CLOSED> | payrollctl concerns respond %d --message <text>\n", c.ID, c.ID)
	return nil
}

func (v *views) orgReports(w io.Writer, _ *http.Request) error {
	if v.svc.Reports == nil {
		return errUnavailable
	}
	title(w, "Reports")
	years := v.svc.Reports.YearOptions()
	yearText := make([]string, 0, len(years))
	for _, y := range years {
		yearText = append(yearText, strconv.Itoa(y))
	}
	return fields(w,
		field{"Employee list", "payrollctl reports employees [--download DIR]"},
		field{"Salary report", fmt.Sprintf("payrollctl reports salary --format <%s|%s> --month <MONTH> --year <YEAR>", reports.FormatExcel, reports.FormatPDF)},
		field{"Months", strings.Join(payments.Months, ", ")},
		field{"Years", strings.Join(yearText, ", ")},
	)
}

func concernTable(w io.Writer, list []concerns.Summary, withEmployee bool) error {
	header := []string{"ID", "SUBJECT", "PRIORITY", "STATUS", "CREATED"}
	if withEmployee {
		header = []string{"ID", "SUBJECT", "EMPLOYEE", "PRIORITY", "STATUS", "CREATED"}
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		row := []string{strconv.FormatInt(c.ID, 10), c.Heading()}
		if withEmployee {
			row = append(row, c.EmployeeName)
		}
		row = append(row, string(c.Priority), string(c.Status), date(c.CreatedAt))
		rows = append(rows, row)
	}
	return table(w, header, rows)
}

func concernDetail(w io.Writer, c concerns.Concern) error {
	title(w, c.Subject)
	if err := fields(w,
		field{"Employee", c.EmployeeName},
		field{"Email", c.EmployeeEmail},
		field{"Priority", string(c.Priority)},
		field{"Status", string(c.Status)},
		field{"Raised", date(c.CreatedAt)},
		field{"Attachment", c.AttachmentURL},
	); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s\n", c.Description)
	if c.Response != "" {
		fmt.Fprintf(w, "\nResponse from %s on %s:\n%s\n", c.RespondedByName, date(c.RespondedAt), c.Response)
	}
	return nil
}
