package board

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service keeps the broadcast notices and the auction listings.
type Service struct {
	now func() time.Time

	noticesMx sync.RWMutex
	notices   []domain.Notice

	auctionsMx sync.RWMutex
	auctions   []domain.Auction
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewBoardService(opts ...Option) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed appends initial content without validation of timestamps.
func (s *Service) Seed(notices []domain.Notice, auctions []domain.Auction) {
	s.noticesMx.Lock()
	s.notices = append(s.notices, notices...)
	s.noticesMx.Unlock()

	s.auctionsMx.Lock()
	s.auctions = append(s.auctions, auctions...)
	s.auctionsMx.Unlock()
}

func (s *Service) PostNotice(ctx context.Context, text string) (domain.Notice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Notice{}, fmt.Errorf("empty notice: %w", constants.ErrInvalidArgument)
	}

	notice := domain.Notice{Date: s.now().UTC(), Text: text}

	s.noticesMx.Lock()
	s.notices = append(s.notices, notice)
	s.noticesMx.Unlock()

	logger.Infof(ctx, "notice posted: %s", text)
	return notice, nil
}

func (s *Service) Notices() []domain.Notice {
	s.noticesMx.RLock()
	defer s.noticesMx.RUnlock()

	out := make([]domain.Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// StartAuction opens a new auction. There is no close or bid operation, the
// status stays Open.
func (s *Service) StartAuction(ctx context.Context, name string, reserve decimal.Decimal) (domain.Auction, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Auction{}, fmt.Errorf("empty auction name: %w", constants.ErrInvalidArgument)
	}
	if !reserve.IsPositive() {
		return domain.Auction{}, fmt.Errorf("reserve price %s must be positive: %w", reserve.String(), constants.ErrInvalidArgument)
	}

	auction := domain.Auction{
		Name:      name,
		Reserve:   reserve,
		Status:    domain.AuctionStatusOpen,
		CreatedAt: s.now().UTC(),
	}

	s.auctionsMx.Lock()
	s.auctions = append(s.auctions, auction)
	s.auctionsMx.Unlock()

	logger.Infow(ctx, "auction started", "name", name, "reserve", reserve.String())
	return auction, nil
}

func (s *Service) Auctions() []domain.Auction {
	s.auctionsMx.RLock()
	defer s.auctionsMx.RUnlock()

	out := make([]domain.Auction, len(s.auctions))
	copy(out, s.auctions)
	return out
}
