package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	MySQL     *MySQL     `json:"mysql" yaml:"mysql"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	Media     *Media     `json:"media" yaml:"media"`
	Oss       *OssConfig `json:"oss" yaml:"oss"`
	Minio     *Minio     `json:"minio" yaml:"minio"`
	Upload    *Upload    `json:"upload" yaml:"upload"`
	Log       *Log       `json:"log" yaml:"log"`
	Cors      *Cors      `json:"cors" yaml:"cors"`
	RateLimit *RateLimit `json:"rate_limit" yaml:"rate_limit"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads the yaml file at filename, expanding ${VAR} references from the
// environment, and fills in defaults for anything left unset.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8000
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	c.Jwt.applyDefaults()
	if c.Media == nil {
		c.Media = &Media{}
	}
	if c.Media.Driver == "" {
		c.Media.Driver = MediaDriverOss
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.Minio == nil {
		c.Minio = &Minio{}
	}
	if c.Upload == nil {
		c.Upload = &Upload{}
	}
	c.Upload.applyDefaults()
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 60
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
