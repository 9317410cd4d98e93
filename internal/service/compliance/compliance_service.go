package compliance

import (
	"context"
	"sync"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/logger"
)

type companyResolver interface {
	Canonical(name string) (string, error)
	Companies() []string
}

// Service holds the review status of every directory company. Every company
// starts pending; a set status stays until overwritten, last write wins.
type Service struct {
	directory companyResolver

	mu       sync.RWMutex
	statuses map[string]domain.ComplianceStatus
}

func NewComplianceService(directory companyResolver) *Service {
	companies := directory.Companies()
	statuses := make(map[string]domain.ComplianceStatus, len(companies))
	for _, name := range companies {
		statuses[name] = domain.ComplianceStatusPending
	}

	return &Service{directory: directory, statuses: statuses}
}

func (s *Service) Get(name string) (domain.ComplianceStatus, error) {
	canonical, err := s.directory.Canonical(name)
	if err != nil {
		return "", err
	}
	return s.Status(canonical), nil
}

// Status reads the status of an already resolved company.
func (s *Service) Status(canonical string) domain.ComplianceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if status, ok := s.statuses[canonical]; ok {
		return status
	}
	return domain.ComplianceStatusPending
}

func (s *Service) Approve(ctx context.Context, name string) (domain.ComplianceStatus, error) {
	return s.set(ctx, name, domain.ComplianceStatusApproved)
}

func (s *Service) Reject(ctx context.Context, name string) (domain.ComplianceStatus, error) {
	return s.set(ctx, name, domain.ComplianceStatusRejected)
}

func (s *Service) set(ctx context.Context, name string, status domain.ComplianceStatus) (domain.ComplianceStatus, error) {
	canonical, err := s.directory.Canonical(name)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	prev := s.statuses[canonical]
	s.statuses[canonical] = status
	s.mu.Unlock()

	logger.Infow(ctx, "compliance status changed", "company", canonical, "from", prev, "to", status)
	return status, nil
}
