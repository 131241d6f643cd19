package concerns

type Concern struct {
	ID               int64    `json:"id"`
	EmployeeID       int64    `json:"employeeId"`
	EmployeeName     string   `json:"employeeName"`
	EmployeeEmail    string   `json:"employeeEmail"`
	OrganizationID   *int64   `json:"organizationId,omitempty"`
	OrganizationName string   `json:"organizationName,omitempty"`
	Subject          string   `json:"subject"`
	Description      string   `json:"description"`
	Status           Status   `json:"status"`
	Priority         Priority `json:"priority"`
	Response         string   `json:"response,omitempty"`
	RespondedBy      *int64   `json:"respondedBy,omitempty"`
	RespondedByName  string   `json:"respondedByName,omitempty"`
	RespondedAt      string   `json:"respondedAt,omitempty"`
	AttachmentURL    string   `json:"attachmentUrl,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

type Summary struct {
	ID           int64    `json:"id"`
	Subject      string   `json:"subject"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	EmployeeName string   `json:"employeeName"`
	Status       Status   `json:"status"`
	Priority     Priority `json:"priority"`
	CreatedAt    string   `json:"createdAt"`
}

// Heading is the subject, falling back to title for older records.
func (s Summary) Heading() string {
	if s.Subject != "" {
		return s.Subject
	}
	return s.Title
}

type CreateRequest struct {
	Subject       string   `json:"subject"`
	Description   string   `json:"description"`
	Priority      Priority `json:"priority"`
	AttachmentURL *string  `json:"attachmentUrl"`
}

type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Critical   int `json:"critical"`
	High       int `json:"high"`
}

type statusBody struct {
	Status Status `json:"status"`
}

type respondBody struct {
	Response string `json:"response"`
}

type uploadResponse struct {
	FileURL string `json:"fileUrl"`
}
