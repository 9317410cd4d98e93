package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Init(""))

	assert.Equal(t, ":5005", viper.GetString(constants.ViperServerAddrKey))
	assert.Equal(t, 10*time.Second, viper.GetDuration(constants.ViperServerShutdownTimeoutKey))
	assert.Equal(t, constants.DatasetSourceCSV, viper.GetString(constants.ViperDatasetSourceKey))
	assert.Equal(t, "reports", viper.GetString(constants.ViperReportsDirKey))

	aliases, err := Aliases()
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "BCCL", aliases[0].Alias)
	assert.Equal(t, "Bharat Coking Coal", aliases[0].Name)
}

func TestInit_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORTAL_SERVER_ADDR", ":9000")
	t.Setenv("PORTAL_AUTH_SECRET", "s3cret")

	require.NoError(t, Init(""))

	assert.Equal(t, ":9000", viper.GetString(constants.ViperServerAddrKey))
	assert.Equal(t, "s3cret", viper.GetString(constants.ViperSecretKey))
}

func TestInit_File(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  addr: ":7070"
dataset:
  source: postgres
  dsn: postgres://portal@localhost/portal
directory:
  aliases:
    - alias: BCCL
      name: Bharat Coking Coal
    - alias: CIL
      name: Coal India Limited
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	require.NoError(t, Init(path))

	assert.Equal(t, ":7070", viper.GetString(constants.ViperServerAddrKey))
	assert.Equal(t, constants.DatasetSourcePG, viper.GetString(constants.ViperDatasetSourceKey))

	aliases, err := Aliases()
	require.NoError(t, err)
	require.Len(t, aliases, 2)
	assert.Equal(t, "CIL", aliases[1].Alias)
	assert.Equal(t, "Coal India Limited", aliases[1].Name)
}

func TestInit_MissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
