package organizations

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"payroll/internal/transport/http/shared"
)

type Service struct {
	Store    *Store
	confirm  shared.Confirmer
	notifier shared.Notifier
	logger   *logrus.Entry
}

func NewService(store *Store, confirm shared.Confirmer, notifier shared.Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{Store: store, confirm: confirm, notifier: shared.NotifierOrNop(notifier), logger: logger}
}

func (s *Service) List(ctx context.Context, filter, search string) ([]Summary, Counts, error) {
	list, err := s.Store.List(ctx, filter)
	if err != nil {
		return nil, Counts{}, err
	}
	return Search(list, search), Count(list), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Organization, error) {
	return s.Store.Get(ctx, id)
}

// Verify approves or rejects an organization's registration and returns
// the reloaded record.
func (s *Service) Verify(ctx context.Context, id int64, approve bool, remarks string) (Organization, error) {
	prompt := "Are you sure you want to verify this organization? This will allow them to access the system."
	if !approve {
		prompt = "Are you sure you want to reject this organization verification?"
	}
	if err := shared.Ask(s.confirm, prompt); err != nil {
		return Organization{}, err
	}
	req := VerifyRequest{Verified: approve}
	if remarks = strings.TrimSpace(remarks); remarks != "" {
		req.Remarks = &remarks
	}
	if err := s.Store.Verify(ctx, id, req); err != nil {
		return Organization{}, err
	}
	s.logger.WithFields(logrus.Fields{"organizationId": id, "verified": approve}).Info("organization verification decided")
	if approve {
		s.notifier.Success("Organization verified successfully")
	} else {
		s.notifier.Success("Organization verification rejected")
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) Profile(ctx context.Context) (Organization, error) {
	return s.Store.Profile(ctx)
}
