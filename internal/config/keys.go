package config

const (
	KeyMotionAPIKey  = "motion_api_key"
	KeyMotionBaseURL = "motion_base_url"
	KeyMotionTimeout = "motion_timeout"
	KeyLogLevel      = "log_level"
	KeyHost          = "host"
	KeyPort          = "port"
	KeyJSONRPCPath   = "jsonrpc_path"
)
