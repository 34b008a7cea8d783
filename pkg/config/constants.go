package config

// EnvPrefix is handed to envconfig.Process. Field tags spell out the full
// variable names, so the prefix only matters for untagged fields.
const EnvPrefix = "INVOICING"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names recognized by Load.
const (
	EnvAppEnv         = "INVOICING_APP_ENV"
	EnvPort           = "INVOICING_APP_PORT"
	EnvLogLevel       = "INVOICING_LOG_LEVEL"
	EnvLogWarnStack   = "INVOICING_LOG_WARN_STACK"
	EnvCORSOrigins    = "INVOICING_CORS_ALLOWED_ORIGINS"
	EnvQuotesMaxItems = "INVOICING_QUOTES_MAX_ITEMS"
)
