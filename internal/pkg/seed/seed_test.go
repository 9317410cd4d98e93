package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
notices:
  - date: 2025-11-15
    text: New emission norms effective November 2025
auctions:
  - name: Coal Block A
    reserve: 1000000
    status: Open
    created: 2025-03-03
reports:
  - date: 2025-03-01
    kind: production
    type: Production Report
    url: https://example.com/report.pdf
`

func TestParse(t *testing.T) {
	t.Parallel()

	data, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, data.Notices, 1)
	assert.Equal(t, "New emission norms effective November 2025", data.Notices[0].Text)
	assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), data.Notices[0].Date)

	require.Len(t, data.Auctions, 1)
	assert.Equal(t, "Coal Block A", data.Auctions[0].Name)
	assert.Equal(t, "1000000", data.Auctions[0].Reserve.String())
	assert.Equal(t, domain.AuctionStatusOpen, data.Auctions[0].Status)

	require.Len(t, data.Reports, 1)
	assert.Equal(t, domain.ReportKindProduction, data.Reports[0].Kind)
	assert.NotEqual(t, [16]byte{}, [16]byte(data.Reports[0].ID))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"zero reserve": "auctions:\n  - name: A\n    reserve: 0\n",
		"nan reserve":  "auctions:\n  - name: A\n    reserve: .nan\n",
		"inf reserve":  "auctions:\n  - name: A\n    reserve: .inf\n",
		"empty notice": "notices:\n  - text: \"\"\n",
		"unknown kind": "reports:\n  - kind: safety\n",
		"bad yaml":     "notices: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	empty, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, empty.Notices)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, data.Auctions, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
