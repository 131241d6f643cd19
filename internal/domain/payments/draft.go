package payments

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payroll/internal/domain/employees"
	"payroll/internal/domain/vendors"
	"payroll/internal/transport/http/shared"
)

// Invoice holds the vendor-payment form fields.
type Invoice struct {
	Amount      decimal.Decimal
	Number      string
	Date        string
	Description string
}

// Draft is a payment request being assembled. Only the fields of the
// active type are submitted.
type Draft struct {
	Type      RequestType
	Month     string
	Year      int
	Remarks   string
	Employees *Selection
	Invoice   Invoice

	vendors []vendors.Summary
	vendor  *vendors.Summary
}

func NewDraft(now time.Time, roster []employees.Summary, vendorList []vendors.Summary) *Draft {
	return &Draft{
		Type:      TypeSalary,
		Month:     MonthOf(now),
		Year:      now.Year(),
		Employees: NewSelection(roster),
		vendors:   vendors.Active(vendorList),
	}
}

// SetType switches the request type and drops everything chosen for the
// previous one.
func (d *Draft) SetType(t RequestType) {
	d.Type = t
	d.Employees.Clear()
	d.vendor = nil
	d.Invoice = Invoice{}
}

// Vendors lists the vendors that can be selected.
func (d *Draft) Vendors() []vendors.Summary {
	return d.vendors
}

func (d *Draft) SelectVendor(id int64) error {
	for i := range d.vendors {
		if d.vendors[i].ID == id {
			v := d.vendors[i]
			d.vendor = &v
			return nil
		}
	}
	return ErrVendorInactive
}

func (d *Draft) Vendor() (vendors.Summary, bool) {
	if d.vendor == nil {
		return vendors.Summary{}, false
	}
	return *d.vendor, true
}

// Total is the amount that would be submitted for the active type.
func (d *Draft) Total() decimal.Decimal {
	if d.Type == TypeVendor {
		return d.Invoice.Amount
	}
	return d.Employees.Total()
}

// Build validates the draft and produces the submission body.
func (d *Draft) Build(now time.Time) (CreateRequest, error) {
	switch d.Type {
	case TypeSalary:
		if d.Employees.Count() == 0 {
			return CreateRequest{}, ErrNoEmployees
		}
	case TypeVendor:
		if d.vendor == nil {
			return CreateRequest{}, ErrNoVendor
		}
	default:
		return CreateRequest{}, fmt.Errorf("unknown request type %q", d.Type)
	}

	v := shared.NewValidator()
	if !validMonth(d.Month) {
		v.Add("month", "must be a month name such as JANUARY")
	}
	if !containsYear(YearOptions(now), d.Year) {
		v.Add("year", "must be the current year or one of the two before it")
	}
	if d.Type == TypeVendor {
		if d.Invoice.Amount.LessThan(decimal.NewFromInt(1)) {
			v.Add("vendorAmount", "must be at least 1")
		}
		v.Required("invoiceNumber", d.Invoice.Number, "is required")
		v.Required("invoiceDate", d.Invoice.Date, "is required")
	}
	if err := v.Err(); err != nil {
		return CreateRequest{}, err
	}

	req := CreateRequest{RequestType: d.Type, Month: d.Month, Year: d.Year}
	if d.Type == TypeSalary {
		count := d.Employees.Count()
		req.TotalAmount = d.Employees.Total()
		req.EmployeeCount = &count
		if remarks := strings.TrimSpace(d.Remarks); remarks != "" {
			req.Remarks = &remarks
		}
		return req, nil
	}
	remarks := fmt.Sprintf("Vendor: %s | Invoice: %s | %s", d.vendor.Name, strings.TrimSpace(d.Invoice.Number), strings.TrimSpace(d.Invoice.Description))
	req.TotalAmount = d.Invoice.Amount
	req.Remarks = &remarks
	return req, nil
}

func containsYear(options []int, year int) bool {
	for _, y := range options {
		if y == year {
			return true
		}
	}
	return false
}
