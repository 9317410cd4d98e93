package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/logger"
)

var companyRecordColumns = []string{
	"company_id",
	"company_name",
	"year",
	"coal_produced_tons",
	"total_co2_emissions_tons",
	"net_co2_emissions_tons",
	"carbon_offsets_tons",
	"emission_intensity",
	"green_investment_ratio",
	"renewable_energy_usage_mwh",
	"afforestation_acres",
	"score",
}

type pgStore struct {
	pool Pool
}

// NewPostgresStore reads the dataset from the company_records table.
func NewPostgresStore(pool Pool) Store {
	return &pgStore{pool: pool}
}

func (s *pgStore) ListCompanyRecords(ctx context.Context) ([]*domain.CompanyRecord, error) {
	query := builder().Select(companyRecordColumns...).
		From(tableCompanyRecords).
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Errorf(ctx, "query company records: %s", err.Error())
		return nil, wrapErr(err)
	}
	defer rows.Close()

	records := make([]*domain.CompanyRecord, 0, 256)
	for rows.Next() {
		var (
			r        domain.CompanyRecord
			optional [7]pgtype.Float8
		)

		err = rows.Scan(
			&r.CompanyID,
			&r.CompanyName,
			&r.Year,
			&r.CoalProducedTons,
			&r.TotalCO2EmissionsTons,
			&optional[0], &optional[1], &optional[2], &optional[3],
			&optional[4], &optional[5], &optional[6],
		)
		if err != nil {
			return nil, fmt.Errorf("scan company record: %w", err)
		}
		r.CompanyName = strings.TrimSpace(r.CompanyName)
		if !finite(r.CoalProducedTons) || !finite(r.TotalCO2EmissionsTons) {
			return nil, fmt.Errorf("company record %s/%d: non-finite production or emissions", r.CompanyName, r.Year)
		}

		r.NetCO2EmissionsTons = float8Ptr(optional[0])
		r.CarbonOffsetsTons = float8Ptr(optional[1])
		r.EmissionIntensity = float8Ptr(optional[2])
		r.GreenInvestmentRatio = float8Ptr(optional[3])
		r.RenewableEnergyUsageMWh = float8Ptr(optional[4])
		r.AfforestationAcres = float8Ptr(optional[5])
		r.Score = float8Ptr(optional[6])

		records = append(records, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(err)
	}

	return records, nil
}

func float8Ptr(v pgtype.Float8) *float64 {
	if !v.Valid || !finite(v.Float64) {
		return nil
	}
	f := v.Float64
	return &f
}
