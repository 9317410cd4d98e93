package seed

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/coalportal/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Data is the initial board and report content of a fresh portal.
type Data struct {
	Notices  []domain.Notice
	Auctions []domain.Auction
	Reports  []domain.Report
}

type file struct {
	Notices  []domain.Notice `yaml:"notices"`
	Auctions []auction       `yaml:"auctions"`
	Reports  []report        `yaml:"reports"`
}

type auction struct {
	Name    string    `yaml:"name"`
	Reserve float64   `yaml:"reserve"`
	Status  string    `yaml:"status"`
	Created time.Time `yaml:"created"`
}

type report struct {
	Date     time.Time `yaml:"date"`
	Kind     string    `yaml:"kind"`
	Type     string    `yaml:"type"`
	URL      string    `yaml:"url"`
	Filename string    `yaml:"filename"`
}

// Load reads a seed file. An empty path yields empty data.
func Load(path string) (*Data, error) {
	if path == "" {
		return &Data{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	data := &Data{
		Notices:  make([]domain.Notice, 0, len(f.Notices)),
		Auctions: make([]domain.Auction, 0, len(f.Auctions)),
		Reports:  make([]domain.Report, 0, len(f.Reports)),
	}

	for i, n := range f.Notices {
		if strings.TrimSpace(n.Text) == "" {
			return nil, fmt.Errorf("notices[%d]: empty text", i)
		}
		data.Notices = append(data.Notices, n)
	}

	for i, a := range f.Auctions {
		if a.Name == "" || math.IsNaN(a.Reserve) || math.IsInf(a.Reserve, 0) || a.Reserve <= 0 {
			return nil, fmt.Errorf("auctions[%d]: name and positive reserve are required", i)
		}
		reserve := decimal.NewFromFloat(a.Reserve)
		status := domain.AuctionStatus(a.Status)
		if status == "" {
			status = domain.AuctionStatusOpen
		}
		data.Auctions = append(data.Auctions, domain.Auction{
			Name:      a.Name,
			Reserve:   reserve,
			Status:    status,
			CreatedAt: a.Created,
		})
	}

	for i, r := range f.Reports {
		kind := domain.ReportKind(r.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("reports[%d]: unknown kind %q", i, r.Kind)
		}
		data.Reports = append(data.Reports, domain.Report{
			ID:       uuid.New(),
			Date:     r.Date,
			Kind:     kind,
			Type:     r.Type,
			URL:      r.URL,
			Filename: r.Filename,
		})
	}

	return data, nil
}
