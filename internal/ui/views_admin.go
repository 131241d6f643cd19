package ui

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"payroll/internal/domain/organizations"
	"payroll/internal/domain/payments"
)

func (v *views) adminDashboard(w io.Writer, r *http.Request) error {
	if v.svc.Dashboard == nil {
		return errUnavailable
	}
	d, err := v.svc.Dashboard.Admin(r.Context())
	if err != nil {
		return err
	}
	title(w, "Bank admin dashboard")
	if err := fields(w,
		field{"Pending organizations", strconv.Itoa(d.Stats.PendingOrgs)},
		field{"Verified organizations", strconv.Itoa(d.Stats.VerifiedOrgs)},
		field{"Pending payment requests", strconv.Itoa(d.Stats.PendingPayments)},
		field{"Processed payments", strconv.FormatInt(d.Stats.ProcessedPayments, 10)},
	); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nPending payment requests")
	pending, err := payments.FilterByStatus(d.PaymentRequests, string(payments.StatusPending))
	if err != nil {
		return err
	}
	if len(pending) > 5 {
		pending = pending[:5]
	}
	return paymentTable(w, pending)
}

func (v *views) adminOrganizations(w io.Writer, r *http.Request) error {
	if v.svc.Organizations == nil {
		return errUnavailable
	}
	q := r.URL.Query()
	filter := q.Get("filter")
	if filter == "" {
		filter = organizations.FilterAll
	}
	list, counts, err := v.svc.Organizations.List(r.Context(), filter, q.Get("search"))
	if err != nil {
		return err
	}
	title(w, "Organizations")
	fmt.Fprintf(w, "Total %d  Pending %d  Verified %d  Rejected %d\n\n", counts.Total, counts.Pending, counts.Verified, counts.Rejected)

	shown, pages := paginate(list, queryInt(r, "page"), v.pageSize)
	rows := make([][]string, 0, len(shown))
	for _, o := range shown {
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10), o.Name, o.Email, o.RegistrationNumber,
			yesNo(o.Verified), o.UserStatus, date(o.CreatedAt),
		})
	}
	if err := table(w, []string{"ID", "NAME", "EMAIL", "REG NO", "VERIFIED", "STATUS", "CREATED"}, rows); err != nil {
		return err
	}
	if pages > 1 {
		fmt.Fprintf(w, "\n%d pages, use ?page=N\n", pages)
	}
	return nil
}

func (v *views) adminOrganization(w io.Writer, r *http.Request) error {
	if v.svc.Organizations == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	o, err := v.svc.Organizations.Get(r.Context(), id)
	if err != nil {
		return err
	}
	title(w, o.Name)
	document := o.VerificationDocumentsURL
	if document != "" {
		document = fmt.Sprintf("%s (%s)", document, organizations.ClassifyDocument(document))
	}
	if err := fields(w,
		field{"Registration number", o.RegistrationNumber},
		field{"Email", o.Email},
		field{"Phone", o.ContactPhone},
		field{"Address", o.Address},
		field{"Verified", yesNo(o.Verified)},
		field{"Verified by", o.VerifiedByName},
		field{"Verified at", date(o.VerifiedAt)},
		field{"Remarks", o.Remarks},
		field{"Document", document},
		field{"Registered", date(o.CreatedAt)},
	); err != nil {
		return err
	}
	if !o.Verified {
		fmt.Fprintf(w, "\nActions: payrollctl orgs verify %d | payrollctl orgs reject %d --remarks <text>\n", o.ID, o.ID)
	}
	return nil
}

func (v *views) adminPaymentRequests(w io.Writer, r *http.Request) error {
	if v.svc.AdminPayments == nil {
		return errUnavailable
	}
	list, err := v.svc.AdminPayments.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		return err
	}
	title(w, "Payment requests")
	fmt.Fprintf(w, "Pending total: %s\n\n", money(payments.PendingTotal(list)))
	shown, pages := paginate(list, queryInt(r, "page"), v.pageSize)
	if err := paymentTable(w, shown); err != nil {
		return err
	}
	if pages > 1 {
		fmt.Fprintf(w, "\n%d pages, use ?page=N\n", pages)
	}
	return nil
}

func (v *views) adminPaymentRequest(w io.Writer, r *http.Request) error {
	if v.svc.AdminPayments == nil {
		return errUnavailable
	}
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	p, err := v.svc.AdminPayments.Get(r.Context(), id)
	if err != nil {
		return err
	}
	if err := paymentDetail(w, p); err != nil {
		return err
	}
	switch {
	case payments.CanApprove(p.Status):
		fmt.Fprintf(w, "\nActions: payrollctl payments approve %d | payrollctl payments reject %d --reason <text>\n", p.ID, p.ID)
	case payments.CanProcess(p.Status):
		fmt.Fprintf(w, "\nActions: payrollctl payments process %d\n", p.ID)
	}
	return nil
}

func paymentTable(w io.Writer, list []payments.Summary) error {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10), p.OrganizationName, string(p.RequestType),
			fmt.Sprintf("%s %d", p.Month, p.Year), money(p.TotalAmount), string(p.Status), date(p.CreatedAt),
		})
	}
	return table(w, []string{"ID", "ORGANIZATION", "TYPE", "PERIOD", "AMOUNT", "STATUS", "CREATED"}, rows)
}

func paymentDetail(w io.Writer, p payments.PaymentRequest) error {
	title(w, fmt.Sprintf("Payment request #%d", p.ID))
	employeeCount := ""
	if p.EmployeeCount != nil {
		employeeCount = strconv.Itoa(*p.EmployeeCount)
	}
	return fields(w,
		field{"Organization", p.OrganizationName},
		field{"Type", string(p.RequestType)},
		field{"Period", fmt.Sprintf("%s %d", p.Month, p.Year)},
		field{"Amount", money(p.TotalAmount)},
		field{"Employees", employeeCount},
		field{"Status", string(p.Status)},
		field{"Remarks", p.Remarks},
		field{"Rejection reason", p.RejectionReason},
		field{"Approved by", p.ApprovedByName},
		field{"Approved at", date(p.ApprovedAt)},
		field{"Created", date(p.CreatedAt)},
	)
}
