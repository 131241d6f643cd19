package auth

type Captcha struct {
	SessionID string `json:"sessionId"`
	ImageData string `json:"imageData"`
}

type LoginRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	CaptchaSessionID string `json:"captchaSessionId"`
	CaptchaAnswer    string `json:"captchaAnswer" validate:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

func (r LoginResponse) User() User {
	return User{UserID: r.UserID, Email: r.Email, Role: r.Role}
}

type OrganizationRegistration struct {
	Name               string `json:"name" validate:"required,min=2"`
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=6"`
	Address            string `json:"address" validate:"required"`
	ContactPhone       string `json:"contactPhone" validate:"required,phone"`
}

type EmployeeRegistration struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required"`
	DocumentProofURL string `json:"documentProofUrl" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,otp"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
