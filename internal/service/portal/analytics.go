package portal

import (
	"math"
	"sort"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	daysInYear   = decimal.NewFromInt(365)
	monthsInYear = decimal.NewFromInt(12)
)

// CompanySummary lists every directory company in directory order. Means with
// no underlying values are left nil.
func (s *Service) CompanySummary() []domain.CompanySummary {
	companies := s.directory.Companies()
	out := make([]domain.CompanySummary, 0, len(companies))

	for _, name := range companies {
		rows := s.directory.Rows(name)
		out = append(out, domain.CompanySummary{
			Company:       s.directory.DisplayName(name),
			CanonicalName: name,
			Production:    sum(rows, production).IntPart(),
			Emissions:     sum(rows, emissions).IntPart(),
			Intensity: mean(rows, func(r *domain.CompanyRecord) *float64 {
				if v, ok := r.Intensity(); ok {
					return &v
				}
				return nil
			}, 3),
			Score:                mean(rows, func(r *domain.CompanyRecord) *float64 { return r.Score }, 2),
			GreenInvestmentRatio: mean(rows, func(r *domain.CompanyRecord) *float64 { return r.GreenInvestmentRatio }, 2),
			Status:               s.compliance.Status(name),
		})
	}

	return out
}

// Companies is the government list view.
func (s *Service) Companies() []domain.CompanyListItem {
	summary := s.CompanySummary()
	out := make([]domain.CompanyListItem, 0, len(summary))
	for _, c := range summary {
		out = append(out, domain.CompanyListItem{
			Name:             c.Company,
			Production:       c.Production,
			Emissions:        c.Emissions,
			ComplianceStatus: c.Status,
		})
	}
	return out
}

func (s *Service) IndustryOverview() domain.IndustryOverview {
	records := s.directory.Records()
	return domain.IndustryOverview{
		TotalProduction: sum(records, production).IntPart(),
		TotalEmissions:  sum(records, emissions).IntPart(),
		ActiveCompanies: len(s.directory.Companies()),
	}
}

// PredictFuture extrapolates the yearly industry totals one period ahead using
// the mean period-over-period growth. Periods whose previous value is zero do
// not contribute a growth rate. With fewer than two periods the forecast is the
// mean of all rows for the next calendar year.
func (s *Service) PredictFuture() domain.Forecast {
	records := s.directory.Records()

	byYear := make(map[domain.Year][]*domain.CompanyRecord)
	for _, r := range records {
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	years := make([]domain.Year, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	if len(years) < 2 {
		prod, em := decimal.Zero, decimal.Zero
		if n := int64(len(records)); n > 0 {
			prod = sum(records, production).Div(decimal.NewFromInt(n))
			em = sum(records, emissions).Div(decimal.NewFromInt(n))
		}
		return domain.Forecast{
			Year:                s.now().Year() + 1,
			PredictedProduction: prod.Round(2).InexactFloat64(),
			PredictedEmissions:  em.Round(2).InexactFloat64(),
		}
	}

	prodSeries := make([]decimal.Decimal, 0, len(years))
	emSeries := make([]decimal.Decimal, 0, len(years))
	for _, y := range years {
		prodSeries = append(prodSeries, sum(byYear[y], production))
		emSeries = append(emSeries, sum(byYear[y], emissions))
	}

	return domain.Forecast{
		Year:                years[len(years)-1] + 1,
		PredictedProduction: extrapolate(prodSeries).Round(2).InexactFloat64(),
		PredictedEmissions:  extrapolate(emSeries).Round(2).InexactFloat64(),
	}
}

func (s *Service) Production(company string) (domain.ProductionView, error) {
	rows, err := s.directory.RowsFor(company)
	if err != nil {
		return domain.ProductionView{}, err
	}

	total := sum(rows, production)
	avg := total.Div(decimal.NewFromInt(int64(len(rows))))

	return domain.ProductionView{
		Daily:   avg.Div(daysInYear).Floor().IntPart(),
		Monthly: avg.Div(monthsInYear).Floor().IntPart(),
		Yearly:  total.IntPart(),
	}, nil
}

// Compliance reports the registry status for every review area.
func (s *Service) Compliance(company string) (domain.ComplianceView, error) {
	status, err := s.compliance.Get(company)
	if err != nil {
		return domain.ComplianceView{}, err
	}
	return domain.ComplianceView{Environmental: status, Safety: status, Report: status}, nil
}

type EmissionInput struct {
	Production float64
	CoalType   float64
	Energy     float64
	Factor     float64
}

// EstimateEmission is production * factor * (1 + coal_type/10) * energy / 1000.
func (s *Service) EstimateEmission(in EmissionInput) domain.EmissionEstimate {
	v := decimal.NewFromFloat(in.Production).
		Mul(decimal.NewFromFloat(in.Factor)).
		Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(in.CoalType).Div(decimal.NewFromInt(10)))).
		Mul(decimal.NewFromFloat(in.Energy)).
		Div(decimal.NewFromInt(1000))

	return domain.EmissionEstimate{Prediction: v.Round(2).InexactFloat64()}
}

func extrapolate(series []decimal.Decimal) decimal.Decimal {
	growth, n := decimal.Zero, 0
	for i := 1; i < len(series); i++ {
		prev := series[i-1]
		if prev.IsZero() {
			continue
		}
		growth = growth.Add(series[i].Sub(prev).Div(prev))
		n++
	}
	if n > 0 {
		growth = growth.Div(decimal.NewFromInt(int64(n)))
	}

	return series[len(series)-1].Mul(decimal.NewFromInt(1).Add(growth))
}

func production(r *domain.CompanyRecord) float64 { return r.CoalProducedTons }

func emissions(r *domain.CompanyRecord) float64 { return r.TotalCO2EmissionsTons }

func sum(rows []*domain.CompanyRecord, field func(*domain.CompanyRecord) float64) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if v := field(r); finite(v) {
			total = total.Add(decimal.NewFromFloat(v))
		}
	}
	return total
}

func mean(rows []*domain.CompanyRecord, field func(*domain.CompanyRecord) *float64, places int32) *float64 {
	total, n := decimal.Zero, 0
	for _, r := range rows {
		if v := field(r); v != nil && finite(*v) {
			total = total.Add(decimal.NewFromFloat(*v))
			n++
		}
	}
	if n == 0 {
		return nil
	}
	v := total.Div(decimal.NewFromInt(int64(n))).Round(places).InexactFloat64()
	return &v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
