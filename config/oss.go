package config

const (
	MediaDriverOss   = "oss"
	MediaDriverMinio = "minio"
)

type Media struct {
	Driver string `json:"driver" yaml:"driver"`
	// PublicBaseURL is prefixed to object keys to build the URLs handed to clients.
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
	// ProbeDuration runs ffprobe on uploaded videos to record their length.
	ProbeDuration bool `json:"probe_duration" yaml:"probe_duration"`
}

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
}

type Minio struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"access_key" yaml:"access_key"`
	SecretKey string `json:"secret_key" yaml:"secret_key"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	Region    string `json:"region" yaml:"region"`
	UseSSL    bool   `json:"use_ssl" yaml:"use_ssl"`
}

func ProvideMediaConfig(cfg *Config) *Media {
	return cfg.Media
}
