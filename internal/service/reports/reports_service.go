package reports

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type artifactStore interface {
	Put(ctx context.Context, name string, data []byte) error
}

type recordSource interface {
	Records() []*domain.CompanyRecord
}

// Service turns the dataset into downloadable CSV reports.
type Service struct {
	records   recordSource
	artifacts artifactStore
	publicURL string
	now       func() time.Time

	mu      sync.RWMutex
	reports []domain.Report
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewReportsService(records recordSource, artifacts artifactStore, publicURL string, opts ...Option) *Service {
	s := &Service{
		records:   records,
		artifacts: artifacts,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Seed(reports []domain.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, reports...)
}

// Generate writes a report artifact for kind and records it. Nothing is
// recorded when the artifact could not be written.
func (s *Service) Generate(ctx context.Context, kind string) (domain.Report, error) {
	k := domain.ReportKind(strings.ToLower(strings.TrimSpace(kind)))
	if !k.Valid() {
		return domain.Report{}, fmt.Errorf("unknown report type %q: %w", kind, constants.ErrInvalidArgument)
	}

	data, err := render(k, s.records.Records())
	if err != nil {
		logger.Errorf(ctx, "render %s report: %s", k, err.Error())
		return domain.Report{}, fmt.Errorf("render %s report: %s: %w", k, err.Error(), constants.ErrInternal)
	}

	now := s.now().UTC()
	id := uuid.New()
	filename := fmt.Sprintf("%s_report_%s_%s.csv", k, now.Format("20060102_150405"), id.String()[:8])

	if err = s.artifacts.Put(ctx, filename, data); err != nil {
		logger.Errorf(ctx, "store report %s: %s", filename, err.Error())
		return domain.Report{}, fmt.Errorf("store report %s: %s: %w", filename, err.Error(), constants.ErrInternal)
	}

	report := domain.Report{
		ID:       id,
		Date:     now,
		Kind:     k,
		Type:     cases.Title(language.English).String(string(k)) + " Report",
		URL:      s.publicURL + "/" + filename,
		Filename: filename,
	}

	s.mu.Lock()
	s.reports = append(s.reports, report)
	s.mu.Unlock()

	logger.Infow(ctx, "report generated", "kind", k, "file", filename, "bytes", len(data))
	return report, nil
}

func (s *Service) List() []domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, len(s.reports))
	copy(out, s.reports)
	return out
}
