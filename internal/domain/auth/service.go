package auth

import (
	"context"
	"encoding/base64"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/platform/media"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
)

// SessionStore persists the identity of the signed-in user.
type SessionStore interface {
	Save(token string, user User) error
	Clear() error
}

// DocumentUploader is the media capability used during registration.
type DocumentUploader interface {
	UploadDocument(ctx context.Context, f media.File, folder string) (string, error)
	Rules() media.Rules
}

type Notifier interface {
	Success(message string)
}

type Service struct {
	Store    *Store
	session  SessionStore
	uploads  DocumentUploader
	notifier Notifier
	logger   *logrus.Entry
}

func NewService(store *Store, session SessionStore, uploads DocumentUploader, notifier Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{Store: store, session: session, uploads: uploads, notifier: notifier, logger: logger}
}

func (s *Service) Captcha(ctx context.Context) (Captcha, error) {
	return s.Store.Captcha(ctx)
}

// SaveCaptchaImage writes the captcha data URL to path as a binary image.
func SaveCaptchaImage(c Captcha, path string) error {
	data := c.ImageData
	idx := strings.Index(data, ";base64,")
	if !strings.HasPrefix(data, "data:") || idx < 0 {
		return ErrBadCaptchaImage
	}
	raw, err := base64.StdEncoding.DecodeString(data[idx+len(";base64,"):])
	if err != nil {
		return errors.Wrap(ErrBadCaptchaImage, err.Error())
	}
	return errors.Wrapf(os.WriteFile(path, raw, 0o600), "write captcha image %s", path)
}

// Login authenticates, persists the session and returns the landing path
// for the role.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, string, error) {
	req.Email = strings.TrimSpace(req.Email)
	v := shared.NewValidator()
	v.Struct(req)
	if err := v.Err(); err != nil {
		return LoginResponse{}, "", err
	}
	if strings.TrimSpace(req.CaptchaSessionID) == "" {
		return LoginResponse{}, "", ErrMissingCaptcha
	}

	resp, err := s.Store.Login(ctx, req)
	if err != nil {
		return LoginResponse{}, "", err
	}
	if err := s.session.Save(resp.Token, resp.User()); err != nil {
		return LoginResponse{}, "", errors.Wrap(err, "persist session")
	}
	s.logger.WithFields(logrus.Fields{"userId": resp.UserID, "role": resp.Role}).Info("logged in")
	s.success("Login successful!")
	return resp, DashboardPath(resp.Role), nil
}

// Logout drops the local session; the backend keeps no server-side state
// for it.
func (s *Service) Logout() (string, error) {
	if err := s.session.Clear(); err != nil {
		return "", errors.Wrap(err, "clear session")
	}
	return LoginPath, nil
}

// RegisterOrganization submits the organization with its verification
// document and signs the new account in.
func (s *Service) RegisterOrganization(ctx context.Context, reg OrganizationRegistration, document media.File) (LoginResponse, string, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	v := shared.NewValidator()
	v.Struct(reg)
	if err := v.Err(); err != nil {
		return LoginResponse{}, "", err
	}
	if len(document.Data) == 0 {
		return LoginResponse{}, "", ErrNoDocument
	}
	if s.uploads != nil {
		if err := s.uploads.Rules().Validate(document); err != nil {
			return LoginResponse{}, "", err
		}
	}

	form := api.NewMultipart().
		JSON("organization", reg).
		File("file", document.Name, document.ContentType, document.Data)
	resp, err := s.Store.RegisterOrganization(ctx, form)
	if err != nil {
		return LoginResponse{}, "", err
	}
	if err := s.session.Save(resp.Token, resp.User()); err != nil {
		return LoginResponse{}, "", errors.Wrap(err, "persist session")
	}
	s.success("Registration successful! Your account is pending verification.")
	return resp, DashboardPath(RoleOrganization), nil
}

// RegisterEmployee completes an invited employee's account. When proof is
// given and no URL was supplied, the proof is uploaded first.
func (s *Service) RegisterEmployee(ctx context.Context, reg EmployeeRegistration, proof *media.File) (string, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	v := shared.NewValidator()
	v.Struct(EmployeeRegistration{
		Email:            reg.Email,
		Password:         reg.Password,
		ConfirmPassword:  reg.ConfirmPassword,
		DocumentProofURL: "pending",
	})
	if reg.Password != "" && !CheckPasswordStrength(reg.Password).OK() {
		v.Add("password", "must contain a number, an upper case letter, a lower case letter and one of "+passwordSpecials)
	}
	validatePasswordPair(v, "password", reg.Password, "confirmPassword", reg.ConfirmPassword)
	if reg.DocumentProofURL == "" && proof == nil {
		v.Add("documentProofUrl", "is required")
	}
	if err := v.Err(); err != nil {
		return "", err
	}

	if reg.DocumentProofURL == "" {
		if s.uploads == nil {
			return "", errors.New("no media uploader configured")
		}
		url, err := s.uploads.UploadDocument(ctx, *proof, media.FolderEmployeeProofs)
		if err != nil {
			return "", err
		}
		reg.DocumentProofURL = url
	}

	if _, err := s.Store.RegisterEmployee(ctx, reg); err != nil {
		return "", err
	}
	s.success("Registration completed successfully! Please login with your credentials.")
	return LoginPath, nil
}

func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	v := shared.NewValidator()
	v.Struct(struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: email})
	if err := v.Err(); err != nil {
		return err
	}
	_, err := s.Store.ForgotPassword(ctx, email)
	return err
}

func (s *Service) ResetPassword(ctx context.Context, email, otp, newPassword, confirm string) error {
	req := ResetPasswordRequest{Email: strings.TrimSpace(email), OTP: otp, NewPassword: newPassword}
	v := shared.NewValidator()
	v.Struct(req)
	validatePasswordPair(v, "newPassword", newPassword, "confirmPassword", confirm)
	if err := v.Err(); err != nil {
		return err
	}
	_, err := s.Store.ResetPassword(ctx, req)
	return err
}

func (s *Service) success(message string) {
	if s.notifier != nil {
		s.notifier.Success(message)
	}
}
