package portal

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/service/board"
	"github.com/ougirez/coalportal/internal/service/compliance"
	"github.com/ougirez/coalportal/internal/service/directory"
	"github.com/ougirez/coalportal/internal/service/messages"
	"github.com/ougirez/coalportal/internal/service/reports"
	"github.com/shopspring/decimal"
)

// Service is the government portal facade over the registries.
type Service struct {
	directory  *directory.Service
	compliance *compliance.Service
	messages   *messages.Service
	board      *board.Service
	reports    *reports.Service
	now        func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewPortalService(
	directory *directory.Service,
	compliance *compliance.Service,
	messages *messages.Service,
	board *board.Service,
	reports *reports.Service,
	opts ...Option,
) *Service {
	s := &Service{
		directory:  directory,
		compliance: compliance,
		messages:   messages,
		board:      board,
		reports:    reports,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CompanyCount() int {
	return len(s.directory.Companies())
}

func (s *Service) Approve(ctx context.Context, company string) (domain.StatusChange, error) {
	status, err := s.compliance.Approve(ctx, company)
	if err != nil {
		return domain.StatusChange{}, err
	}
	return domain.StatusChange{
		Message: fmt.Sprintf("%s approved successfully", s.directory.ResolveAlias(company)),
		Status:  status,
	}, nil
}

func (s *Service) Reject(ctx context.Context, company string) (domain.StatusChange, error) {
	status, err := s.compliance.Reject(ctx, company)
	if err != nil {
		return domain.StatusChange{}, err
	}
	return domain.StatusChange{
		Message: fmt.Sprintf("%s rejected successfully", s.directory.ResolveAlias(company)),
		Status:  status,
	}, nil
}

func (s *Service) SendNotice(ctx context.Context, text string) (domain.NoticeResult, error) {
	notice, err := s.board.PostNotice(ctx, text)
	if err != nil {
		return domain.NoticeResult{}, err
	}
	return domain.NoticeResult{Message: "Notice sent successfully", Notice: notice}, nil
}

func (s *Service) Notices() []domain.Notice {
	return s.board.Notices()
}

func (s *Service) StartAuction(ctx context.Context, name string, reserve decimal.Decimal) (domain.AuctionResult, error) {
	auction, err := s.board.StartAuction(ctx, name, reserve)
	if err != nil {
		return domain.AuctionResult{}, err
	}
	return domain.AuctionResult{Message: "Auction started successfully", Auction: auction}, nil
}

func (s *Service) Auctions() []domain.Auction {
	return s.board.Auctions()
}

func (s *Service) GenerateReport(ctx context.Context, kind string) (domain.ReportResult, error) {
	report, err := s.reports.Generate(ctx, kind)
	if err != nil {
		return domain.ReportResult{}, err
	}
	return domain.ReportResult{Message: "Report generated successfully", Report: report}, nil
}

func (s *Service) Reports() []domain.Report {
	return s.reports.List()
}

func (s *Service) SendMessage(ctx context.Context, in messages.SendInput) (domain.MessageResult, error) {
	msg, err := s.messages.Send(ctx, in)
	if err != nil {
		return domain.MessageResult{}, err
	}
	return domain.MessageResult{Message: "Message sent successfully", Data: msg}, nil
}

func (s *Service) Messages(company string) (iter.Seq[domain.Message], error) {
	return s.messages.ForCompany(company)
}

func (s *Service) AllMessages() []domain.Message {
	return s.messages.All()
}
