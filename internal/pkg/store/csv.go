package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/logger"
)

// Dataset column names as written by the synthetic generator.
const (
	ColCompanyID              = "CompanyID"
	ColCompanyName            = "CompanyName"
	ColYear                   = "Year"
	ColTotalCO2Emissions      = "Total_CO2_Emissions_Tons"
	ColCarbonOffsets          = "CarbonOffsets_Tons"
	ColRenewableEnergyUsage   = "RenewableEnergyUsage_MWh"
	ColAfforestation          = "Afforestation_Acres"
	ColInvestmentGreenTech    = "Investment_Green_Technologies"
	ColCoalProduced           = "CoalProduced_Tons"
	ColNetCO2Emissions        = "Net_CO2_Emissions_Tons"
	ColEmissionIntensity      = "Emission_Intensity"
	ColGreenInvestmentRatio   = "Green_Investment_Ratio"
	ColRenewableIntensity     = "RenewableEnergy_Intensity"
	ColEmissionIntensityDiff  = "Emission_Intensity_Difference"
	ColGreenInvestmentDiff    = "Green_Investment_Ratio_Difference"
	ColRenewableIntensityDiff = "RenewableEnergy_Intensity_Difference"
	ColScore                  = "Score"
)

var requiredColumns = []string{ColCompanyName, ColYear, ColCoalProduced, ColTotalCO2Emissions}

var optionalColumns = map[string]func(r *domain.CompanyRecord) **float64{
	ColNetCO2Emissions:      func(r *domain.CompanyRecord) **float64 { return &r.NetCO2EmissionsTons },
	ColCarbonOffsets:        func(r *domain.CompanyRecord) **float64 { return &r.CarbonOffsetsTons },
	ColEmissionIntensity:    func(r *domain.CompanyRecord) **float64 { return &r.EmissionIntensity },
	ColGreenInvestmentRatio: func(r *domain.CompanyRecord) **float64 { return &r.GreenInvestmentRatio },
	ColRenewableEnergyUsage: func(r *domain.CompanyRecord) **float64 { return &r.RenewableEnergyUsageMWh },
	ColAfforestation:        func(r *domain.CompanyRecord) **float64 { return &r.AfforestationAcres },
	ColScore:                func(r *domain.CompanyRecord) **float64 { return &r.Score },
}

type csvStore struct {
	source        string
	client        *http.Client
	retryInterval time.Duration
	maxRetries    uint64
}

type CSVOption func(*csvStore)

func WithHTTPClient(client *http.Client) CSVOption {
	return func(s *csvStore) { s.client = client }
}

func WithRetry(interval time.Duration, maxRetries uint64) CSVOption {
	return func(s *csvStore) {
		s.retryInterval = interval
		s.maxRetries = maxRetries
	}
}

// NewCSVStore reads the dataset from a local CSV file or from an http(s) URL.
func NewCSVStore(source string, opts ...CSVOption) Store {
	s := &csvStore{
		source:        source,
		client:        http.DefaultClient,
		retryInterval: 200 * time.Millisecond,
		maxRetries:    10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *csvStore) ListCompanyRecords(ctx context.Context) (records []*domain.CompanyRecord, err error) {
	var body io.ReadCloser
	if isRemote(s.source) {
		body, err = s.fetch(ctx)
	} else {
		body, err = os.Open(s.source)
	}
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", s.source, err)
	}
	defer func() {
		closeErr := body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close dataset: %w", closeErr)
		}
	}()

	records, err = ParseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", s.source, err)
	}

	logger.Infof(ctx, "loaded %d company records from %s", len(records), s.source)
	return records, nil
}

func (s *csvStore) fetch(ctx context.Context) (io.ReadCloser, error) {
	var resp *http.Response
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, s.source, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			r, httpErr := s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if r.StatusCode != http.StatusOK {
				_ = r.Body.Close()
				statusErr := fmt.Errorf("status code error: %d %s", r.StatusCode, r.Status)
				if r.StatusCode >= 400 && r.StatusCode < 500 {
					return backoff.Permanent(statusErr)
				}
				logger.Warnf(ctx, "dataset fetch retry: %s", statusErr.Error())
				return statusErr
			}

			resp = r
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryInterval), s.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ParseCSV decodes dataset rows. Columns are matched by header name; unknown
// columns are ignored and optional ones may be missing or left empty.
func ParseCSV(r io.Reader) ([]*domain.CompanyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty dataset")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	records := make([]*domain.CompanyRecord, 0, 1024)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		record, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, index map[string]int) (*domain.CompanyRecord, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := &domain.CompanyRecord{
		CompanyID:   cell(ColCompanyID),
		CompanyName: cell(ColCompanyName),
	}
	if record.CompanyName == "" {
		return nil, fmt.Errorf("empty %s", ColCompanyName)
	}

	year, err := parseYear(cell(ColYear))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ColYear, err)
	}
	record.Year = year

	if record.CoalProducedTons, err = parseRequired(cell(ColCoalProduced)); err != nil {
		return nil, fmt.Errorf("%s: %w", ColCoalProduced, err)
	}
	if record.TotalCO2EmissionsTons, err = parseRequired(cell(ColTotalCO2Emissions)); err != nil {
		return nil, fmt.Errorf("%s: %w", ColTotalCO2Emissions, err)
	}

	for col, field := range optionalColumns {
		raw := cell(col)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", col, err)
		}
		// nan and inf cells count as missing
		if !finite(v) {
			continue
		}
		*field(record) = &v
	}

	return record, nil
}

func parseRequired(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if !finite(v) {
		return 0, fmt.Errorf("non-finite value %q", raw)
	}
	return v, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseYear(raw string) (domain.Year, error) {
	if year, err := strconv.Atoi(raw); err == nil {
		return year, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return domain.Year(f), nil
}
