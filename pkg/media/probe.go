package media

import (
	"context"
	"time"

	"Vidtube/config"

	"github.com/tidwall/gjson"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Prober reads the playback length of a video file in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FFProber shells out to ffprobe.
type FFProber struct {
	Timeout time.Duration
}

func (p FFProber) Duration(ctx context.Context, path string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	out, err := ffmpeg.ProbeWithTimeout(path, p.Timeout, ffmpeg.KwArgs{})
	if err != nil {
		return 0, err
	}
	return gjson.Get(out, "format.duration").Float(), nil
}

// NoopProber is used when probing is disabled.
type NoopProber struct{}

func (NoopProber) Duration(context.Context, string) (float64, error) { return 0, nil }

func NewProber(probe bool) Prober {
	if probe {
		return FFProber{Timeout: 30 * time.Second}
	}
	return NoopProber{}
}

func ProvideProber(conf *config.Media) Prober {
	return NewProber(conf.ProbeDuration)
}
