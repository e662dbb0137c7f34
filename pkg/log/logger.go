package log

import (
	"io"
	"os"
	"strconv"
	"strings"

	"Vidtube/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var L *zap.Logger

func init() {
	L = newLogger(zap.InfoLevel, os.Stdout)
}

// Setup rebuilds L from the log section of the config. A configured file is
// written through lumberjack in addition to stdout.
func Setup(conf *config.Log) {
	if conf == nil {
		return
	}
	level, err := zapcore.ParseLevel(conf.Level)
	if err != nil {
		level = zap.InfoLevel
	}

	var out io.Writer = os.Stdout
	if conf.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    orDefault(conf.MaxSizeMB, 100),
			MaxBackups: orDefault(conf.MaxBackups, 3),
			MaxAge:     orDefault(conf.MaxAgeDays, 28),
			Compress:   true,
		})
	}
	L = newLogger(level, out)
}

func newLogger(level zapcore.Level, out io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		projectName := "Vidtube"

		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(out),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
