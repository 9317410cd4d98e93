package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"sort"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/shopspring/decimal"
)

type column struct {
	name  string
	value func(rows []*domain.CompanyRecord) string
}

var layouts = map[domain.ReportKind][]column{
	domain.ReportKindProduction: {
		{"Total_Production_Tons", sumOf(func(r *domain.CompanyRecord) *float64 { return &r.CoalProducedTons })},
		{"Years_Covered", func(rows []*domain.CompanyRecord) string { return fmt.Sprint(len(rows)) }},
	},
	domain.ReportKindEmissions: {
		{"Total_CO2_Emissions_Tons", sumOf(func(r *domain.CompanyRecord) *float64 { return &r.TotalCO2EmissionsTons })},
		{"Net_CO2_Emissions_Tons", sumOf(func(r *domain.CompanyRecord) *float64 { return r.NetCO2EmissionsTons })},
		{"Emission_Intensity", meanOf(func(r *domain.CompanyRecord) *float64 {
			if v, ok := r.Intensity(); ok {
				return &v
			}
			return nil
		})},
	},
	domain.ReportKindCompliance: {
		{"Score", meanOf(func(r *domain.CompanyRecord) *float64 { return r.Score })},
		{"Green_Investment_Ratio", meanOf(func(r *domain.CompanyRecord) *float64 { return r.GreenInvestmentRatio })},
		{"RenewableEnergyUsage_MWh", sumOf(func(r *domain.CompanyRecord) *float64 { return r.RenewableEnergyUsageMWh })},
		{"Afforestation_Acres", sumOf(func(r *domain.CompanyRecord) *float64 { return r.AfforestationAcres })},
	},
}

// sumOf adds the present values; a company without any value gets an empty cell.
func sumOf(field func(*domain.CompanyRecord) *float64) func([]*domain.CompanyRecord) string {
	return func(rows []*domain.CompanyRecord) string {
		total, n := collect(rows, field)
		if n == 0 {
			return ""
		}
		return total.String()
	}
}

func meanOf(field func(*domain.CompanyRecord) *float64) func([]*domain.CompanyRecord) string {
	return func(rows []*domain.CompanyRecord) string {
		total, n := collect(rows, field)
		if n == 0 {
			return ""
		}
		return total.Div(decimal.NewFromInt(int64(n))).Round(6).String()
	}
}

func collect(rows []*domain.CompanyRecord, field func(*domain.CompanyRecord) *float64) (decimal.Decimal, int) {
	total, n := decimal.Zero, 0
	for _, r := range rows {
		if v := field(r); v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
			total = total.Add(decimal.NewFromFloat(*v))
			n++
		}
	}
	return total, n
}

// render groups records by company and encodes one CSV row per company, sorted by name.
func render(kind domain.ReportKind, records []*domain.CompanyRecord) ([]byte, error) {
	layout, ok := layouts[kind]
	if !ok {
		return nil, fmt.Errorf("no layout for report kind %q", kind)
	}

	grouped := make(map[string][]*domain.CompanyRecord)
	for _, r := range records {
		grouped[r.CompanyName] = append(grouped[r.CompanyName], r)
	}
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(layout)+1)
	header = append(header, "CompanyName")
	for _, col := range layout {
		header = append(header, col.name)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, name := range names {
		row := make([]string, 0, len(layout)+1)
		row = append(row, name)
		for _, col := range layout {
			row = append(row, col.value(grouped[name]))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %s: %w", name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
