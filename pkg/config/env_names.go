package config

const (
	EnvPrefix = "partdepot"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv        = "PARTDEPOT_APP_ENV"
	EnvPort          = "PARTDEPOT_APP_PORT"
	EnvLogLevel      = "PARTDEPOT_LOG_LEVEL"
	EnvAutoApprove   = "PARTDEPOT_AUTO_APPROVE_SELLERS"
	EnvAssistBaseURL = "PARTDEPOT_ASSIST_BASE_URL"
	EnvAssistAPIKey  = "PARTDEPOT_ASSIST_API_KEY"
)
