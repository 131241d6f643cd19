package employees

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/platform/media"
	"payroll/internal/transport/http/shared"
)

// PictureUploader stores a profile picture and returns its URL.
type PictureUploader interface {
	UploadProfilePicture(ctx context.Context, f media.File) (string, error)
}

type Service struct {
	Store    *Store
	confirm  shared.Confirmer
	notifier shared.Notifier
	pictures PictureUploader
	logger   *logrus.Entry
}

func NewService(store *Store, confirm shared.Confirmer, notifier shared.Notifier, pictures PictureUploader, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		Store:    store,
		confirm:  confirm,
		notifier: shared.NotifierOrNop(notifier),
		pictures: pictures,
		logger:   logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.Store.List(ctx)
}

// Eligible lists the employees that can be included in a salary
// disbursement.
func (s *Service) Eligible(ctx context.Context) ([]Summary, error) {
	list, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterEligible(list), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Employee, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req Request) (Employee, error) {
	req = normalize(req)
	if err := ValidateRequest(req); err != nil {
		return Employee{}, err
	}
	out, err := s.Store.Create(ctx, req)
	if err != nil {
		return Employee{}, err
	}
	s.notifier.Success("Employee created successfully! Invitation email sent.")
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req Request) (Employee, error) {
	req = normalize(req)
	if err := ValidateRequest(req); err != nil {
		return Employee{}, err
	}
	out, err := s.Store.Update(ctx, id, req)
	if err != nil {
		return Employee{}, err
	}
	s.notifier.Success("Employee updated successfully!")
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64, name string) error {
	if err := shared.Ask(s.confirm, `Are you sure you want to delete employee "`+name+`"?`); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Employee deleted successfully")
	return nil
}

// ChangeStatus moves an employee to next and returns the reloaded record.
func (s *Service) ChangeStatus(ctx context.Context, id int64, next Status) (Employee, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if err := CanChangeStatus(current.Status, next); err != nil {
		return Employee{}, err
	}
	if err := shared.Ask(s.confirm, StatusPrompt(next)); err != nil {
		return Employee{}, err
	}
	if err := s.Store.SetStatus(ctx, id, next); err != nil {
		return Employee{}, err
	}
	s.logger.WithFields(logrus.Fields{"employeeId": id, "from": current.Status, "to": next}).Info("employee status changed")
	if current.Status == StatusTerminated {
		s.notifier.Success("Employee reactivated successfully")
	} else {
		s.notifier.Success("Employee status updated to " + string(next))
	}
	return s.Store.Get(ctx, id)
}

// VerifyAccount marks the employee's bank account verified. Terminated
// employees cannot be verified.
func (s *Service) VerifyAccount(ctx context.Context, id int64) (Employee, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Employee{}, err
	}
	if current.Status == StatusTerminated {
		s.notifier.Error("Cannot verify account for terminated employee")
		return Employee{}, ErrTerminated
	}
	if err := shared.Ask(s.confirm, "Are you sure you want to verify this employee account?"); err != nil {
		return Employee{}, err
	}
	if err := s.Store.VerifyAccount(ctx, id); err != nil {
		return Employee{}, err
	}
	s.notifier.Success("Employee account verified successfully")
	return s.Store.Get(ctx, id)
}

func (s *Service) Profile(ctx context.Context) (Profile, error) {
	return s.Store.Profile(ctx)
}

// UpdateProfilePicture uploads f to the media host, then records the URL
// on the profile.
func (s *Service) UpdateProfilePicture(ctx context.Context, f media.File) (string, error) {
	if s.pictures == nil {
		return "", errors.New("no media uploader configured")
	}
	url, err := s.pictures.UploadProfilePicture(ctx, f)
	if err != nil {
		return "", err
	}
	if err := s.Store.SetProfilePicture(ctx, url); err != nil {
		return "", errors.Wrap(err, "save profile picture")
	}
	s.notifier.Success("Profile picture updated successfully")
	return url, nil
}
