package synthetic

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/ougirez/coalportal/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ParsesBack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rows, err := NewSyntheticService(Options{Companies: 15, FromYear: 2020, ToYear: 2022, Seed: 7}).Generate(&buf)
	require.NoError(t, err)
	assert.Equal(t, 45, rows)

	records, err := store.ParseCSV(&buf)
	require.NoError(t, err)
	require.Len(t, records, 45)

	assert.Equal(t, "IND001", records[0].CompanyID)
	assert.Equal(t, "Coal India Limited", records[0].CompanyName)
	assert.Equal(t, 2020, records[0].Year)
	assert.Equal(t, "Coal India Limited", records[13*3].CompanyName, "names cycle after the list ends")

	for _, r := range records {
		require.NotNil(t, r.NetCO2EmissionsTons)
		require.NotNil(t, r.CarbonOffsetsTons)
		assert.InDelta(t, r.TotalCO2EmissionsTons-*r.CarbonOffsetsTons, *r.NetCO2EmissionsTons, 0.5)
		assert.GreaterOrEqual(t, r.CoalProducedTons, 50000.0)
		require.NotNil(t, r.Score)
		assert.GreaterOrEqual(t, *r.Score, 0.0)
		assert.LessOrEqual(t, *r.Score, 250.0)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	opts := Options{Companies: 3, FromYear: 2014, ToYear: 2016, Seed: 42}

	var a, b bytes.Buffer
	_, err := NewSyntheticService(opts).Generate(&a)
	require.NoError(t, err)
	_, err = NewSyntheticService(opts).Generate(&b)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	opts.Seed = 43
	var c bytes.Buffer
	_, err = NewSyntheticService(opts).Generate(&c)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerate_InvalidOptions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := NewSyntheticService(Options{Companies: 0, FromYear: 2020, ToYear: 2021}).Generate(&buf)
	require.Error(t, err)
	_, err = NewSyntheticService(Options{Companies: 1, FromYear: 2022, ToYear: 2021}).Generate(&buf)
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "companies.csv")
	rows, err := NewSyntheticService(Options{Companies: 2, FromYear: 2020, ToYear: 2020, Seed: 1}).WriteFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	records, err := store.NewCSVStore(path).ListCompanyRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
