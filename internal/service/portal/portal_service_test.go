package portal

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/service/board"
	"github.com/ougirez/coalportal/internal/service/compliance"
	"github.com/ougirez/coalportal/internal/service/directory"
	"github.com/ougirez/coalportal/internal/service/messages"
	"github.com/ougirez/coalportal/internal/service/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr(v float64) *float64 { return &v }

type discardArtifacts struct{}

func (discardArtifacts) Put(context.Context, string, []byte) error { return nil }

func newTestService(records []*domain.CompanyRecord) *Service {
	clock := func() time.Time { return fixedNow }
	dir := directory.NewDirectoryService(records, []domain.Alias{{Alias: "BCCL", Name: "Bharat Coking Coal"}})
	return NewPortalService(
		dir,
		compliance.NewComplianceService(dir),
		messages.NewMessagesService(dir, messages.WithClock(clock)),
		board.NewBoardService(board.WithClock(clock)),
		reports.NewReportsService(dir, discardArtifacts{}, "http://localhost/reports", reports.WithClock(clock)),
		WithClock(clock),
	)
}

func twoYearRecords() []*domain.CompanyRecord {
	return []*domain.CompanyRecord{
		{
			CompanyName: "Coal India Limited", Year: 2020, CoalProducedTons: 1000, TotalCO2EmissionsTons: 100,
			NetCO2EmissionsTons: ptr(90), Score: ptr(70.456), GreenInvestmentRatio: ptr(0.1234),
		},
		{
			CompanyName: "Bharat Coking Coal", Year: 2020, CoalProducedTons: 0, TotalCO2EmissionsTons: 0,
		},
		{
			CompanyName: "Coal India Limited", Year: 2021, CoalProducedTons: 2000, TotalCO2EmissionsTons: 150,
			EmissionIntensity: ptr(0.0456), Score: ptr(80),
		},
	}
}

func TestCompanySummary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestService(twoYearRecords())

	_, err := s.Approve(ctx, "BCCL")
	require.NoError(t, err)

	summary := s.CompanySummary()
	require.Len(t, summary, s.CompanyCount())

	cil := summary[0]
	assert.Equal(t, "Coal India Limited", cil.Company)
	assert.Equal(t, int64(3000), cil.Production)
	assert.Equal(t, int64(250), cil.Emissions)
	require.NotNil(t, cil.Intensity)
	assert.Equal(t, 0.068, *cil.Intensity)
	require.NotNil(t, cil.Score)
	assert.Equal(t, 75.23, *cil.Score)
	require.NotNil(t, cil.GreenInvestmentRatio)
	assert.Equal(t, 0.12, *cil.GreenInvestmentRatio)
	assert.Equal(t, domain.ComplianceStatusPending, cil.Status)

	bccl := summary[1]
	assert.Equal(t, "BCCL", bccl.Company)
	assert.Equal(t, "Bharat Coking Coal", bccl.CanonicalName)
	assert.Nil(t, bccl.Intensity, "zero production leaves intensity absent")
	assert.Nil(t, bccl.Score)
	assert.Equal(t, domain.ComplianceStatusApproved, bccl.Status)

	list := s.Companies()
	require.Len(t, list, 2)
	assert.Equal(t, domain.CompanyListItem{Name: "BCCL", ComplianceStatus: domain.ComplianceStatusApproved}, list[1])
}

func TestCompanySummary_AliasNamedAndPaddedCompanies(t *testing.T) {
	t.Parallel()

	s := newTestService([]*domain.CompanyRecord{
		{CompanyName: "BCCL", Year: 2020, CoalProducedTons: 100, TotalCO2EmissionsTons: 10},
		{CompanyName: " Coal India Limited  ", Year: 2020, CoalProducedTons: 1000, TotalCO2EmissionsTons: 100},
		{CompanyName: "Coal India Limited", Year: 2021, CoalProducedTons: 2000, TotalCO2EmissionsTons: 150},
	})

	summary := s.CompanySummary()
	require.Len(t, summary, s.CompanyCount())
	require.Len(t, summary, 2)

	assert.Equal(t, "BCCL", summary[0].CanonicalName)
	assert.Equal(t, int64(100), summary[0].Production)
	assert.Equal(t, "Coal India Limited", summary[1].CanonicalName)
	assert.Equal(t, int64(3000), summary[1].Production)
	assert.Len(t, s.Companies(), 2)
}

func TestIndustryOverview(t *testing.T) {
	t.Parallel()

	overview := newTestService(twoYearRecords()).IndustryOverview()
	assert.Equal(t, domain.IndustryOverview{TotalProduction: 3000, TotalEmissions: 250, ActiveCompanies: 2}, overview)
}

func TestPredictFuture_Growth(t *testing.T) {
	t.Parallel()

	forecast := newTestService(twoYearRecords()).PredictFuture()
	assert.Equal(t, 2022, forecast.Year)
	assert.Equal(t, 4000.0, forecast.PredictedProduction)
	assert.Equal(t, 225.0, forecast.PredictedEmissions)
}

func TestPredictFuture_SkipsZeroPeriods(t *testing.T) {
	t.Parallel()

	records := []*domain.CompanyRecord{
		{CompanyName: "A", Year: 2019, CoalProducedTons: 0, TotalCO2EmissionsTons: 10},
		{CompanyName: "A", Year: 2020, CoalProducedTons: 1000, TotalCO2EmissionsTons: 20},
		{CompanyName: "A", Year: 2021, CoalProducedTons: 2000, TotalCO2EmissionsTons: 20},
	}

	forecast := newTestService(records).PredictFuture()
	assert.Equal(t, 2022, forecast.Year)
	assert.Equal(t, 4000.0, forecast.PredictedProduction)
	assert.Equal(t, 30.0, forecast.PredictedEmissions)
}

func TestPredictFuture_SinglePeriodUsesMeans(t *testing.T) {
	t.Parallel()

	records := []*domain.CompanyRecord{
		{CompanyName: "A", Year: 2020, CoalProducedTons: 100, TotalCO2EmissionsTons: 10},
		{CompanyName: "B", Year: 2020, CoalProducedTons: 201, TotalCO2EmissionsTons: 21},
		{CompanyName: "C", Year: 2020, CoalProducedTons: 300, TotalCO2EmissionsTons: 30},
	}

	forecast := newTestService(records).PredictFuture()
	assert.Equal(t, fixedNow.Year()+1, forecast.Year)
	assert.Equal(t, 200.33, forecast.PredictedProduction)
	assert.Equal(t, 20.33, forecast.PredictedEmissions)
}

func TestProduction(t *testing.T) {
	t.Parallel()

	s := newTestService(twoYearRecords())

	view, err := s.Production("Coal India Limited")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductionView{Daily: 4, Monthly: 125, Yearly: 3000}, view)

	_, err = s.Production("Nobody")
	require.ErrorIs(t, err, constants.ErrNotFound)
}

func TestCompliance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestService(twoYearRecords())

	res, err := s.Reject(ctx, "Coal India Limited")
	require.NoError(t, err)
	assert.Equal(t, "Coal India Limited rejected successfully", res.Message)

	view, err := s.Compliance("Coal India Limited")
	require.NoError(t, err)
	assert.Equal(t, domain.ComplianceView{
		Environmental: domain.ComplianceStatusRejected,
		Safety:        domain.ComplianceStatusRejected,
		Report:        domain.ComplianceStatusRejected,
	}, view)

	_, err = s.Compliance("Nobody")
	require.ErrorIs(t, err, constants.ErrNotFound)
}

func TestEstimateEmission(t *testing.T) {
	t.Parallel()

	s := newTestService(twoYearRecords())
	assert.Equal(t, 9.0, s.EstimateEmission(EmissionInput{Production: 1000, CoalType: 5, Energy: 3, Factor: 2}).Prediction)
	assert.Equal(t, 0.68, s.EstimateEmission(EmissionInput{Production: 1234, CoalType: 1, Energy: 1, Factor: 0.5}).Prediction)
}

func TestDelegations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestService(twoYearRecords())

	approved, err := s.Approve(ctx, "BCCL")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusChange{Message: "Bharat Coking Coal approved successfully", Status: domain.ComplianceStatusApproved}, approved)

	_, err = s.SendNotice(ctx, "Quarterly audit")
	require.NoError(t, err)
	assert.Len(t, s.Notices(), 1)

	auction, err := s.StartAuction(ctx, "Coal Block B", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "Auction started successfully", auction.Message)
	assert.Len(t, s.Auctions(), 1)

	report, err := s.GenerateReport(ctx, "production")
	require.NoError(t, err)
	assert.Equal(t, "Report generated successfully", report.Message)
	assert.Len(t, s.Reports(), 1)

	sent, err := s.SendMessage(ctx, messages.SendInput{Company: "BCCL", Sender: "BCCL", Text: "Audit submitted"})
	require.NoError(t, err)
	seq, err := s.Messages("Bharat Coking Coal")
	require.NoError(t, err)
	assert.Equal(t, []domain.Message{sent.Data}, slices.Collect(seq))
	assert.Len(t, s.AllMessages(), 1)
}
