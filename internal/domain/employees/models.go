package employees

import "github.com/shopspring/decimal"

type Employee struct {
	ID                        int64        `json:"id"`
	OrganizationID            int64        `json:"organizationId"`
	OrganizationName          string       `json:"organizationName"`
	UserID                    int64        `json:"userId"`
	Name                      string       `json:"name"`
	Email                     string       `json:"email"`
	Phone                     string       `json:"phone"`
	Address                   string       `json:"address"`
	Department                string       `json:"department"`
	Designation               string       `json:"designation"`
	DateOfJoining             string       `json:"dateOfJoining"`
	BankAccountNumber         string       `json:"bankAccountNumber"`
	BankName                  string       `json:"bankName"`
	IFSCCode                  string       `json:"ifscCode"`
	AccountProofURL           string       `json:"accountProofUrl,omitempty"`
	AccountVerificationStatus Verification `json:"accountVerificationStatus"`
	Status                    Status       `json:"status"`
	CreatedAt                 string       `json:"createdAt"`
	UpdatedAt                 string       `json:"updatedAt"`
}

// Summary is the list projection returned by GET /org/employees.
type Summary struct {
	ID                        int64               `json:"id"`
	Name                      string              `json:"name"`
	Email                     string              `json:"email"`
	Department                string              `json:"department"`
	Designation               string              `json:"designation"`
	DateOfJoining             string              `json:"dateOfJoining"`
	Status                    Status              `json:"status"`
	AccountVerificationStatus Verification        `json:"accountVerificationStatus"`
	CurrentSalary             decimal.NullDecimal `json:"currentSalary"`
}

type Profile struct {
	ID                        int64               `json:"id"`
	Name                      string              `json:"name"`
	Email                     string              `json:"email"`
	Phone                     string              `json:"phone"`
	Address                   string              `json:"address"`
	Department                string              `json:"department"`
	Designation               string              `json:"designation"`
	DateOfJoining             string              `json:"dateOfJoining"`
	BankAccountNumber         string              `json:"bankAccountNumber"`
	BankName                  string              `json:"bankName"`
	IFSCCode                  string              `json:"ifscCode"`
	AccountVerificationStatus Verification        `json:"accountVerificationStatus"`
	CurrentSalary             decimal.NullDecimal `json:"currentSalary"`
	OrganizationName          string              `json:"organizationName"`
	ProfilePictureURL         string              `json:"profilePictureUrl,omitempty"`
}

// Request is the create/update body.
type Request struct {
	Name              string `json:"name" validate:"required,min=2"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required,phone"`
	Address           string `json:"address" validate:"required"`
	Department        string `json:"department" validate:"required"`
	Designation       string `json:"designation" validate:"required"`
	DateOfJoining     string `json:"dateOfJoining" validate:"required"`
	BankAccountNumber string `json:"bankAccountNumber" validate:"required,bankaccount"`
	BankName          string `json:"bankName" validate:"required"`
	IFSCCode          string `json:"ifscCode" validate:"required,ifsc"`
}

// RequestFrom prefills an update body from a loaded employee.
func RequestFrom(e Employee) Request {
	return Request{
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Address:           e.Address,
		Department:        e.Department,
		Designation:       e.Designation,
		DateOfJoining:     e.DateOfJoining,
		BankAccountNumber: e.BankAccountNumber,
		BankName:          e.BankName,
		IFSCCode:          e.IFSCCode,
	}
}
