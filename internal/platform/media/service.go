package media

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/platform/config"
	"payroll/internal/transport/http/shared"
)

const (
	FolderDocuments      = "payroll/documents"
	FolderProfiles       = "payroll/profiles"
	FolderEmployeeProofs = "employee_documents"
)

// Uploader is the media host capability: store a file, return its URL.
type Uploader interface {
	Upload(ctx context.Context, f File, folder string) (string, error)
}

type Notifier interface {
	Error(message string)
}

// Service validates before uploading and reports failures to the user.
// Nothing is retried.
type Service struct {
	uploader Uploader
	rules    Rules
	notifier Notifier
	logger   *logrus.Entry
}

func NewService(uploader Uploader, rules Rules, notifier Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{uploader: uploader, rules: rules, notifier: notifier, logger: logger}
}

// NewUploader builds the provider named in opts.
func NewUploader(opts config.MediaOptions, hc *http.Client) (Uploader, error) {
	switch opts.Provider {
	case config.MediaProviderCloudinary, "":
		return NewCloudinary(opts.UploadURL(), opts.CloudinaryPreset, hc), nil
	case config.MediaProviderMinIO:
		return NewMinIO(opts.MinIOEndpoint, opts.MinIOAccessKey, opts.MinIOSecretKey, opts.MinIOBucket, opts.MinIOSecure)
	default:
		return nil, errors.Wrap(ErrUnknownProvider, opts.Provider)
	}
}

// RulesFrom converts configured limits into Rules.
func RulesFrom(opts config.MediaOptions) Rules {
	return Rules{MaxMB: opts.MaxUploadMB, AllowedTypes: opts.AllowedTypes}
}

func (s *Service) Rules() Rules {
	return s.rules
}

// UploadDocument stores f under folder, or the default documents folder
// when folder is empty.
func (s *Service) UploadDocument(ctx context.Context, f File, folder string) (string, error) {
	if folder == "" {
		folder = FolderDocuments
	}
	return s.upload(ctx, f, folder, s.rules, "Failed to upload document. Please try again.")
}

func (s *Service) UploadProfilePicture(ctx context.Context, f File) (string, error) {
	return s.upload(ctx, f, FolderProfiles, ProfilePictureRules, "Failed to upload profile picture. Please try again.")
}

func (s *Service) upload(ctx context.Context, f File, folder string, rules Rules, failure string) (string, error) {
	if err := rules.Validate(f); err != nil {
		s.notify(ValidationMessage(err))
		return "", err
	}
	url, err := s.uploader.Upload(ctx, f, folder)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"file":   f.Name,
			"folder": folder,
			"bytes":  f.Size(),
		}).Warn("media upload failed")
		s.notify(failure)
		return "", err
	}
	s.logger.WithFields(logrus.Fields{"file": f.Name, "folder": folder}).Debug("media uploaded")
	return url, nil
}

func (s *Service) notify(message string) {
	if s.notifier != nil {
		s.notifier.Error(message)
	}
}

// ValidationMessage is the user-facing text for a rejected file.
func ValidationMessage(err error) string {
	var verr *shared.ValidationError
	if errors.As(err, &verr) && len(verr.Issues) > 0 {
		return "File " + verr.Issues[0].Reason
	}
	return err.Error()
}
