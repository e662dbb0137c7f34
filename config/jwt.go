package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// token lifetimes in seconds
	AccessExpire  int64 `json:"access_expire" yaml:"access_expire"`
	RefreshExpire int64 `json:"refresh_expire" yaml:"refresh_expire"`
}

func (j *Jwt) applyDefaults() {
	if j.AccessExpire == 0 {
		j.AccessExpire = 24 * 3600
	}
	if j.RefreshExpire == 0 {
		j.RefreshExpire = 10 * 24 * 3600
	}
}

func (j *Jwt) AccessTTL() time.Duration {
	return time.Duration(j.AccessExpire) * time.Second
}

func (j *Jwt) RefreshTTL() time.Duration {
	return time.Duration(j.RefreshExpire) * time.Second
}

func ProvideJwtConfig(cfg *Config) *Jwt {
	return cfg.Jwt
}
