package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "MUNCH"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "MUNCH_APP_ENV"
	EnvPort     = "MUNCH_APP_PORT"
	EnvRedisURL = "MUNCH_REDIS_URL"

	EnvDBDSN  = "MUNCH_DB_DSN"
	EnvDBHost = "MUNCH_DB_HOST"
	EnvDBUser = "MUNCH_DB_USER"
	EnvDBName = "MUNCH_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
