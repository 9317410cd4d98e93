package constants

const (
	ViperServerAddrKey            = "server.addr"
	ViperServerShutdownTimeoutKey = "server.shutdown_timeout"
	ViperServerAllowOriginsKey    = "server.allow_origins"

	ViperLogLevelKey    = "log.level"
	ViperLogEncodingKey = "log.encoding"

	ViperDatasetSourceKey = "dataset.source"
	ViperDatasetPathKey   = "dataset.path"
	ViperDatasetDSNKey    = "dataset.dsn"

	ViperDirectoryAliasesKey = "directory.aliases"

	ViperReportsDirKey       = "reports.dir"
	ViperReportsPublicURLKey = "reports.public_url"

	ViperSeedPathKey = "seed.path"

	ViperSecretKey   = "auth.secret"
	ViperTokenTTLKey = "auth.token_ttl"

	ViperEnvPrefix = "PORTAL"
)

const (
	DatasetSourceCSV = "csv"
	DatasetSourcePG  = "postgres"
)

const CookieKeyAuthToken = "admin_token"
