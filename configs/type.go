package config

type Config struct {
	Agent  AgentConfig  `yaml:"agent"`
	Nimbus NimbusConfig `yaml:"nimbus"`
	Notify NotifyConfig `yaml:"notify"`
}

type AgentConfig struct {
	LogLevel  string `yaml:"log_level"`
	PlanGlob  string `yaml:"plan_glob"`
	ReportDir string `yaml:"report_dir"` // defaults to "reports"
	DryRun    bool   `yaml:"dry_run"`
}

type NimbusConfig struct {
	// BaseURL is used exactly as configured, no trailing-slash cleanup.
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"` // falls back to NIMBUS_API_TOKEN
	VerifySSL      bool   `yaml:"verify_ssl"`
	RequestTimeout int    `yaml:"request_timeout"` // in seconds, 0 leaves the client without a timeout
}

type NotifyConfig struct {
	WebhookURL string `yaml:"webhook_url"` // empty disables run notifications
}
