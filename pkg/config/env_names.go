package config

// EnvPrefix namespaces every configuration variable consumed by the service.
const EnvPrefix = "SUPPLIERDISC"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "SUPPLIERDISC_APP_ENV"
	EnvPort       = "SUPPLIERDISC_APP_PORT"
	EnvDBDSN      = "SUPPLIERDISC_DB_DSN"
	EnvDBHost     = "SUPPLIERDISC_DB_HOST"
	EnvDBUser     = "SUPPLIERDISC_DB_USER"
	EnvDBName     = "SUPPLIERDISC_DB_NAME"
	EnvRedisURL   = "SUPPLIERDISC_REDIS_URL"
	EnvJWTSecret  = "SUPPLIERDISC_JWT_SECRET"
	EnvJWTIssuer  = "SUPPLIERDISC_JWT_ISSUER"
	EnvJWTExpMins = "SUPPLIERDISC_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
