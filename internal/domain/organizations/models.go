package organizations

type Organization struct {
	ID                       int64  `json:"id"`
	Name                     string `json:"name"`
	RegistrationNumber       string `json:"registrationNumber"`
	Email                    string `json:"email"`
	Address                  string `json:"address"`
	ContactPhone             string `json:"contactPhone"`
	Verified                 bool   `json:"verified"`
	VerificationDocumentsURL string `json:"verificationDocumentsUrl,omitempty"`
	Remarks                  string `json:"remarks,omitempty"`
	VerifiedAt               string `json:"verifiedAt,omitempty"`
	VerifiedBy               *int64 `json:"verifiedBy,omitempty"`
	VerifiedByName           string `json:"verifiedByName,omitempty"`
	CreatedAt                string `json:"createdAt"`
	UpdatedAt                string `json:"updatedAt"`
}

type Summary struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registrationNumber"`
	ContactPhone       string `json:"contactPhone"`
	Verified           bool   `json:"verified"`
	CreatedAt          string `json:"createdAt"`
	UserStatus         string `json:"userStatus,omitempty"`
}

type VerifyRequest struct {
	Verified bool    `json:"verified"`
	Remarks  *string `json:"remarks"`
}

type Counts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Rejected int `json:"rejected"`
}
