package vendors

type Vendor struct {
	ID                int64  `json:"id"`
	OrganizationID    int64  `json:"organizationId"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	ServiceType       string `json:"serviceType"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankName          string `json:"bankName"`
	IFSCCode          string `json:"ifscCode"`
	PANNumber         string `json:"panNumber"`
	GSTNumber         string `json:"gstNumber,omitempty"`
	ContractStartDate string `json:"contractStartDate"`
	ContractEndDate   string `json:"contractEndDate,omitempty"`
	Status            Status `json:"status"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

type Summary struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	ServiceType       string `json:"serviceType"`
	Status            Status `json:"status"`
	ContractStartDate string `json:"contractStartDate"`
}

// Request is the create body. Empty optional fields go out as null.
type Request struct {
	Name              string  `json:"name" validate:"required,min=2"`
	Email             string  `json:"email" validate:"required,email"`
	Phone             string  `json:"phone" validate:"required,phone"`
	Address           string  `json:"address" validate:"required"`
	ServiceType       string  `json:"serviceType" validate:"required"`
	BankAccountNumber string  `json:"bankAccountNumber" validate:"required,bankaccount"`
	BankName          string  `json:"bankName" validate:"required"`
	IFSCCode          string  `json:"ifscCode" validate:"required,ifsc"`
	PANNumber         string  `json:"panNumber" validate:"required,pan"`
	GSTNumber         *string `json:"gstNumber" validate:"omitempty,gstin"`
	ContractStartDate string  `json:"contractStartDate" validate:"required"`
	ContractEndDate   *string `json:"contractEndDate"`
}
