package auth

import (
	"context"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"payroll/internal/transport/http/shared"
)

type ResetStep string

const (
	ResetStepEmail    ResetStep = "email"
	ResetStepOTP      ResetStep = "otp"
	ResetStepPassword ResetStep = "password"
	ResetStepDone     ResetStep = "done"
)

var ErrWrongResetStep = errors.New("password reset is not at this step")

// PasswordReset walks the three reset steps. The OTP is only shape-checked
// here; the backend verifies it when the password is reset.
type PasswordReset struct {
	svc   *Service
	step  ResetStep
	email string
	otp   string
}

func (s *Service) StartPasswordReset() *PasswordReset {
	return &PasswordReset{svc: s, step: ResetStepEmail}
}

func (r *PasswordReset) Step() ResetStep { return r.step }
func (r *PasswordReset) Email() string   { return r.email }

func (r *PasswordReset) RequestOTP(ctx context.Context, email string) error {
	if r.step != ResetStepEmail {
		return ErrWrongResetStep
	}
	if err := r.svc.ForgotPassword(ctx, email); err != nil {
		return err
	}
	r.email = strings.TrimSpace(email)
	r.step = ResetStepOTP
	r.svc.success("OTP sent to your email!")
	return nil
}

// Resume continues a reset whose OTP was requested earlier, possibly by
// another process.
func (r *PasswordReset) Resume(email string) {
	r.email = strings.TrimSpace(email)
	r.otp = ""
	r.step = ResetStepOTP
}

// ResendOTP asks for a fresh code and forgets the one entered so far.
func (r *PasswordReset) ResendOTP(ctx context.Context) error {
	if r.step != ResetStepOTP && r.step != ResetStepPassword {
		return ErrWrongResetStep
	}
	if err := r.svc.ForgotPassword(ctx, r.email); err != nil {
		return err
	}
	r.otp = ""
	r.step = ResetStepOTP
	r.svc.success("New OTP sent to your email!")
	return nil
}

func (r *PasswordReset) EnterOTP(raw string) error {
	if r.step != ResetStepOTP {
		return ErrWrongResetStep
	}
	otp := NormalizeOTP(raw)
	if len(otp) != 6 {
		v := shared.NewValidator()
		v.Add("otp", "must be 6 digits")
		return v.Err()
	}
	r.otp = otp
	r.step = ResetStepPassword
	r.svc.success("OTP verified! Set your new password.")
	return nil
}

func (r *PasswordReset) Reset(ctx context.Context, newPassword, confirm string) (string, error) {
	if r.step != ResetStepPassword {
		return "", ErrWrongResetStep
	}
	if err := r.svc.ResetPassword(ctx, r.email, r.otp, newPassword, confirm); err != nil {
		return "", err
	}
	r.step = ResetStepDone
	r.svc.success("Password reset successfully! Please login.")
	return LoginPath, nil
}

// Back returns to the previous step.
func (r *PasswordReset) Back() {
	switch r.step {
	case ResetStepOTP:
		r.step = ResetStepEmail
	case ResetStepPassword:
		r.step = ResetStepOTP
	}
}

// NormalizeOTP keeps the first six digits of pasted input.
func NormalizeOTP(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}
