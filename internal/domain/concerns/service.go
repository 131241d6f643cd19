package concerns

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/platform/media"
	"payroll/internal/transport/http/shared"
)

type Service struct {
	Store    *Store
	rules    media.Rules
	notifier shared.Notifier
	logger   *logrus.Entry
}

func NewService(store *Store, rules media.Rules, notifier shared.Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{Store: store, rules: rules, notifier: shared.NotifierOrNop(notifier), logger: logger}
}

// Raise files a new concern for the signed-in employee. The attachment,
// when given, is checked and uploaded first; a failed upload stops the
// submission.
func (s *Service) Raise(ctx context.Context, req CreateRequest, attachment *media.File) (Concern, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Description = strings.TrimSpace(req.Description)
	if req.Priority == "" {
		req.Priority = PriorityMedium
	}
	if err := validateCreate(req); err != nil {
		return Concern{}, err
	}
	if attachment != nil {
		if err := s.rules.Validate(*attachment); err != nil {
			s.notifier.Error(media.ValidationMessage(err))
			return Concern{}, err
		}
		url, err := s.Store.UploadAttachment(ctx, *attachment)
		if err != nil {
			return Concern{}, errors.Wrap(err, "upload concern attachment")
		}
		req.AttachmentURL = &url
		s.notifier.Success("File uploaded successfully")
	}
	out, err := s.Store.Create(ctx, req)
	if err != nil {
		return Concern{}, err
	}
	s.notifier.Success("Concern raised successfully")
	return out, nil
}

func (s *Service) Mine(ctx context.Context) ([]Summary, error) {
	return s.Store.Mine(ctx)
}

func (s *Service) GetMine(ctx context.Context, id int64) (Concern, error) {
	return s.Store.GetMine(ctx, id)
}

// List returns the organization's concerns through filter, plus stats over
// the unfiltered list.
func (s *Service) List(ctx context.Context, filter string) ([]Summary, Stats, error) {
	all, err := s.Store.List(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	filtered, err := Filter(all, filter)
	if err != nil {
		return nil, Stats{}, err
	}
	return filtered, ComputeStats(all), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Concern, error) {
	return s.Store.Get(ctx, id)
}

// UpdateStatus moves a concern to any status; staff may reopen or skip
// steps.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (Concern, error) {
	if !status.Valid() {
		return Concern{}, ErrUnknownStatus
	}
	if err := s.Store.SetStatus(ctx, id, status); err != nil {
		return Concern{}, err
	}
	s.logger.WithFields(logrus.Fields{"concernId": id, "status": status}).Info("concern status updated")
	s.notifier.Success("Status updated to " + string(status))
	return s.Store.Get(ctx, id)
}

func (s *Service) Respond(ctx context.Context, id int64, response string) (Concern, error) {
	response = strings.TrimSpace(response)
	if err := validateResponse(response); err != nil {
		return Concern{}, err
	}
	if err := s.Store.Respond(ctx, id, response); err != nil {
		return Concern{}, err
	}
	s.notifier.Success("Response submitted successfully")
	return s.Store.Get(ctx, id)
}
