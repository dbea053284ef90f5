package model

// Config is the top-level structure of config.yaml.
type Config struct {
	Token    string   `mapstructure:"TOKEN"`
	Commands Commands `mapstructure:"commands"`
	ModerBot ModerBot `mapstructure:"moderBot"`
	Database Database `mapstructure:"database"`
	Redis    Redis    `mapstructure:"redis"`
	AdminAPI AdminAPI `mapstructure:"adminApi"`
}

// ModerBot corresponds to the "moderBot" section.
type ModerBot struct {
	Report ReportConfig `mapstructure:"report"`
	Gate   GateConfig   `mapstructure:"gate"`
}

// ReportConfig corresponds to the "report" section.
type ReportConfig struct {
	ReviewChannelID  string `mapstructure:"review_channel_id"`
	PublishChannelID string `mapstructure:"publish_channel_id"`
}

// GateConfig corresponds to the "gate" section.
type GateConfig struct {
	ChallengeTTLSeconds int `mapstructure:"challenge_ttl_seconds"`
	ReminderSeconds     int `mapstructure:"reminder_seconds"`
}

// Commands corresponds to the "commands" section.
type Commands struct {
	Allowguilds []string `mapstructure:"allowguilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth corresponds to the "auth" section.
type Auth struct {
	Developers  []string `mapstructure:"Developers"`
	AdminsRoles []string `mapstructure:"AdminsRoles"`
}

// Database corresponds to the "database" section.
type Database struct {
	Path string `mapstructure:"path"`
}

// Redis corresponds to the "redis" section.
type Redis struct {
	Addr string `mapstructure:"addr"`
}

// AdminAPI corresponds to the "adminApi" section.
type AdminAPI struct {
	Listen string `mapstructure:"listen"`
	Token  string `mapstructure:"token"`
}
