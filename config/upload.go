package config

type Upload struct {
	TempDir       string `json:"temp_dir" yaml:"temp_dir"`
	MaxImageBytes int64  `json:"max_image_bytes" yaml:"max_image_bytes"`
	MaxVideoBytes int64  `json:"max_video_bytes" yaml:"max_video_bytes"`
}

func (u *Upload) applyDefaults() {
	if u.TempDir == "" {
		u.TempDir = "./public/temp"
	}
	if u.MaxImageBytes == 0 {
		u.MaxImageBytes = 10 << 20
	}
	if u.MaxVideoBytes == 0 {
		u.MaxVideoBytes = 500 << 20
	}
}

func ProvideUploadConfig(cfg *Config) *Upload {
	return cfg.Upload
}

type Log struct {
	Level string `json:"level" yaml:"level"`
	// File enables a rotating log file next to stdout.
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
}
