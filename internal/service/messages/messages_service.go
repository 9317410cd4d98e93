package messages

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/logger"
)

type companyResolver interface {
	Canonical(name string) (string, error)
}

type SendInput struct {
	Company string
	Sender  string
	Text    string
}

// Service is an append-only log of messages exchanged with companies.
type Service struct {
	directory companyResolver
	now       func() time.Time

	mu       sync.RWMutex
	messages []domain.Message
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewMessagesService(directory companyResolver, opts ...Option) *Service {
	s := &Service{
		directory: directory,
		now:       time.Now,
		messages:  make([]domain.Message, 0, 64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Send(ctx context.Context, in SendInput) (domain.Message, error) {
	sender, text := strings.TrimSpace(in.Sender), strings.TrimSpace(in.Text)
	if sender == "" || text == "" {
		return domain.Message{}, fmt.Errorf("sender and text are required: %w", constants.ErrInvalidArgument)
	}

	canonical, err := s.directory.Canonical(in.Company)
	if err != nil {
		return domain.Message{}, fmt.Errorf("unknown company %q: %w", in.Company, constants.ErrInvalidArgument)
	}

	msg := domain.Message{
		ID:        uuid.New(),
		Company:   canonical,
		Sender:    sender,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	logger.Infow(ctx, "message sent", "id", msg.ID.String(), "company", canonical, "sender", sender)
	return msg, nil
}

// ForCompany yields the company's messages in append order. The sequence is
// bound to the log as of the call and can be ranged over more than once.
func (s *Service) ForCompany(name string) (iter.Seq[domain.Message], error) {
	canonical, err := s.directory.Canonical(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	snapshot := s.messages[:len(s.messages):len(s.messages)]
	s.mu.RUnlock()

	return func(yield func(domain.Message) bool) {
		for _, msg := range snapshot {
			if msg.Company != canonical {
				continue
			}
			if !yield(msg) {
				return
			}
		}
	}, nil
}

func (s *Service) All() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
