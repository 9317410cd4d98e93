package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ougirez/coalportal/internal/domain"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Init registers defaults, binds PORTAL_* environment variables and, when path is
// not empty, reads the YAML config file on top of them.
func Init(path string) error {
	setDefaults()

	viper.SetEnvPrefix(constants.ViperEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault(constants.ViperServerAddrKey, ":5005")
	viper.SetDefault(constants.ViperServerShutdownTimeoutKey, 10*time.Second)
	viper.SetDefault(constants.ViperServerAllowOriginsKey, []string{"http://localhost:3000"})

	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperLogEncodingKey, "json")

	viper.SetDefault(constants.ViperDatasetSourceKey, constants.DatasetSourceCSV)
	viper.SetDefault(constants.ViperDatasetPathKey, "modified_indian_coal_companies.csv")
	viper.SetDefault(constants.ViperDatasetDSNKey, "")

	viper.SetDefault(constants.ViperDirectoryAliasesKey, []map[string]string{
		{"alias": "BCCL", "name": "Bharat Coking Coal"},
	})

	viper.SetDefault(constants.ViperReportsDirKey, "reports")
	viper.SetDefault(constants.ViperReportsPublicURLKey, "http://localhost:5005/reports")

	viper.SetDefault(constants.ViperSeedPathKey, "")

	viper.SetDefault(constants.ViperSecretKey, "")
	viper.SetDefault(constants.ViperTokenTTLKey, 24*time.Hour)
}

// Aliases decodes the configured short-name table.
func Aliases() ([]domain.Alias, error) {
	var aliases []domain.Alias
	if err := viper.UnmarshalKey(constants.ViperDirectoryAliasesKey, &aliases); err != nil {
		return nil, fmt.Errorf("decode %s: %w", constants.ViperDirectoryAliasesKey, err)
	}

	for i, a := range aliases {
		if strings.TrimSpace(a.Alias) == "" || strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("%s[%d]: alias and name are required", constants.ViperDirectoryAliasesKey, i)
		}
	}

	return aliases, nil
}
