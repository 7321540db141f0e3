package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix mostly documents intent.
const EnvPrefix = "AEROTRAVEL"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "AEROTRAVEL_APP_ENV"
	EnvRedisURL = "AEROTRAVEL_REDIS_URL"
	EnvDBDSN    = "AEROTRAVEL_DB_DSN"
	EnvDBHost   = "AEROTRAVEL_DB_HOST"
	EnvDBUser   = "AEROTRAVEL_DB_USER"
	EnvDBName   = "AEROTRAVEL_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
