package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt salts the public identifiers handed out by the API.
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
	NodeID   int64  `json:"node_id" yaml:"node_id"`
}

type Cors struct {
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

type RateLimit struct {
	RequestsPerMinute int `json:"requests_per_minute" yaml:"requests_per_minute"`
	Burst             int `json:"burst" yaml:"burst"`
}

func ProvideRateLimitConfig(cfg *Config) *RateLimit {
	return cfg.RateLimit
}
