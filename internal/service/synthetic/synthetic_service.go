package synthetic

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/ougirez/coalportal/internal/pkg/logger"
	"github.com/ougirez/coalportal/internal/pkg/store"
	"github.com/shopspring/decimal"
)

var IndianCompanies = []string{
	"Coal India Limited", "Adani Enterprises", "Singareni Collieries", "NLC India Limited",
	"South Eastern Coalfields", "Western Coalfields", "Central Coalfields",
	"Eastern Coalfields", "Mahanadi Coalfields", "Northern Coalfields",
	"Bharat Coking Coal", "Tata Steel Mining", "Hindalco Industries",
}

var header = []string{
	store.ColCompanyID, store.ColCompanyName, store.ColYear, store.ColTotalCO2Emissions, store.ColCarbonOffsets,
	store.ColRenewableEnergyUsage, store.ColAfforestation, store.ColInvestmentGreenTech,
	store.ColCoalProduced, store.ColNetCO2Emissions, store.ColEmissionIntensity,
	store.ColGreenInvestmentRatio, store.ColRenewableIntensity, store.ColEmissionIntensityDiff,
	store.ColGreenInvestmentDiff, store.ColRenewableIntensityDiff, store.ColScore,
}

type Options struct {
	Companies int
	FromYear  int
	ToYear    int
	Seed      uint64
}

func DefaultOptions() Options {
	return Options{Companies: 500, FromYear: 2014, ToYear: 2023, Seed: 1}
}

func (o Options) validate() error {
	if o.Companies <= 0 {
		return fmt.Errorf("companies must be positive, got %d", o.Companies)
	}
	if o.ToYear < o.FromYear {
		return fmt.Errorf("year range %d-%d is empty", o.FromYear, o.ToYear)
	}
	return nil
}

// Service writes synthetic company datasets. The same seed always yields the same file.
type Service struct {
	opts Options
}

func NewSyntheticService(opts Options) *Service {
	return &Service{opts: opts}
}

// WriteFile generates the dataset into path and returns the number of rows.
func (s *Service) WriteFile(ctx context.Context, path string) (rows int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	rows, err = s.Generate(f)
	if err != nil {
		return 0, err
	}

	logger.Infof(ctx, "generated %s with %d rows", path, rows)
	return rows, nil
}

func (s *Service) Generate(w io.Writer) (int, error) {
	if err := s.opts.validate(); err != nil {
		return 0, err
	}

	rnd := rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed^0x9e3779b97f4a7c15))
	between := func(lo, hi int64) int64 { return lo + rnd.Int64N(hi-lo) }
	uniform := func(lo, hi float64) string {
		return decimal.NewFromFloat(lo + rnd.Float64()*(hi-lo)).Round(6).String()
	}
	ratio := func(a, b int64) string {
		return decimal.NewFromInt(a).Div(decimal.NewFromInt(b)).Round(3).String()
	}
	itoa := func(v int64) string { return strconv.FormatInt(v, 10) }

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	rows := 0
	for i := 0; i < s.opts.Companies; i++ {
		id := fmt.Sprintf("IND%03d", i+1)
		name := IndianCompanies[i%len(IndianCompanies)]

		for year := s.opts.FromYear; year <= s.opts.ToYear; year++ {
			totalCO2 := between(100000, 10000000)
			offsets := rnd.Int64N(totalCO2 * 8 / 10)
			renewable := between(1000, 500000)
			afforestation := between(100, 5000)
			greenInvestment := between(1000000, 100000000)
			produced := between(50000, 2000000)
			net := totalCO2 - offsets

			record := []string{
				id, name, strconv.Itoa(year), itoa(totalCO2), itoa(offsets),
				itoa(renewable), itoa(afforestation), itoa(greenInvestment),
				itoa(produced), itoa(net), ratio(net, produced),
				ratio(greenInvestment, produced*1000), ratio(renewable, produced),
				uniform(-1, 1), uniform(-0.5, 0.5), uniform(-0.5, 0.5), uniform(0, 250),
			}
			if err := cw.Write(record); err != nil {
				return rows, fmt.Errorf("write row %s/%d: %w", id, year, err)
			}
			rows++
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flush csv: %w", err)
	}

	return rows, nil
}
