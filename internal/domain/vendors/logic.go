package vendors

import (
	"strings"

	"payroll/internal/transport/http/shared"
)

func ValidateRequest(req Request) error {
	v := shared.NewValidator()
	v.Struct(req)
	v.Enum("serviceType", req.ServiceType, ServiceTypes, "must be one of the listed service types")
	start, end := req.ContractStartDate, ""
	if req.ContractEndDate != nil {
		end = *req.ContractEndDate
	}
	if start != "" {
		startAt, ok := v.Date("contractStartDate", start)
		if ok && end != "" {
			if endAt, ok := v.Date("contractEndDate", end); ok {
				v.DateOrder("contractStartDate", startAt, "contractEndDate", endAt)
			}
		}
	}
	return v.Err()
}

// Normalize trims input and turns blank optional fields into nil.
func Normalize(req Request) Request {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.IFSCCode = strings.ToUpper(strings.TrimSpace(req.IFSCCode))
	req.PANNumber = strings.ToUpper(strings.TrimSpace(req.PANNumber))
	req.GSTNumber = blankToNil(req.GSTNumber, true)
	req.ContractEndDate = blankToNil(req.ContractEndDate, false)
	return req
}

func blankToNil(value *string, upper bool) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	if upper {
		trimmed = strings.ToUpper(trimmed)
	}
	return &trimmed
}

// Active keeps vendors that can be paid.
func Active(list []Summary) []Summary {
	out := make([]Summary, 0, len(list))
	for _, v := range list {
		if v.Status == StatusActive {
			out = append(out, v)
		}
	}
	return out
}
