package directory

import (
	"fmt"
	"strings"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
)

// Service is a read-only view over the company dataset. It is built once at
// startup and safe for concurrent use.
type Service struct {
	records   []*domain.CompanyRecord
	companies []string
	rows      map[string][]*domain.CompanyRecord
	aliases   map[string]string
	display   map[string]string
}

func NewDirectoryService(records []*domain.CompanyRecord, aliases []domain.Alias) *Service {
	s := &Service{
		records:   records,
		companies: make([]string, 0, 16),
		rows:      make(map[string][]*domain.CompanyRecord, 16),
		aliases:   make(map[string]string, len(aliases)),
		display:   make(map[string]string, len(aliases)),
	}

	for _, r := range records {
		r.CompanyName = strings.TrimSpace(r.CompanyName)
		if _, ok := s.rows[r.CompanyName]; !ok {
			s.companies = append(s.companies, r.CompanyName)
		}
		s.rows[r.CompanyName] = append(s.rows[r.CompanyName], r)
	}

	for _, a := range aliases {
		alias, name := strings.TrimSpace(a.Alias), strings.TrimSpace(a.Name)
		// a dataset company keeps its own name even when it matches an alias
		if _, ok := s.rows[alias]; ok {
			continue
		}
		s.aliases[alias] = name
		if _, ok := s.display[name]; !ok {
			s.display[name] = alias
		}
	}

	return s
}

// ResolveAlias maps a short name to its canonical name. Unknown names pass through trimmed.
// Aliases that collide with a dataset company name are ignored.
func (s *Service) ResolveAlias(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := s.aliases[name]; ok {
		return canonical
	}
	return name
}

func (s *Service) Exists(canonical string) bool {
	_, ok := s.rows[canonical]
	return ok
}

// Canonical resolves name and checks it against the dataset.
func (s *Service) Canonical(name string) (string, error) {
	canonical := s.ResolveAlias(name)
	if !s.Exists(canonical) {
		return "", fmt.Errorf("company %q: %w", name, constants.ErrNotFound)
	}
	return canonical, nil
}

// Companies lists canonical names in order of first appearance in the dataset.
func (s *Service) Companies() []string {
	out := make([]string, len(s.companies))
	copy(out, s.companies)
	return out
}

// Rows returns the rows of a canonical name as listed by Companies, without alias resolution.
func (s *Service) Rows(canonical string) []*domain.CompanyRecord {
	return s.rows[canonical]
}

func (s *Service) RowsFor(name string) ([]*domain.CompanyRecord, error) {
	canonical, err := s.Canonical(name)
	if err != nil {
		return nil, err
	}
	return s.rows[canonical], nil
}

// Records returns every dataset row in dataset order.
func (s *Service) Records() []*domain.CompanyRecord {
	return s.records
}

// DisplayName returns the configured short name for canonical, or canonical itself.
func (s *Service) DisplayName(canonical string) string {
	if alias, ok := s.display[canonical]; ok {
		return alias
	}
	return canonical
}
