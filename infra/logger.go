package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger 初始化全域 zerolog，ENV=production 時輸出 JSON
func InitLogger(version string) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(os.Getenv("LOG_LEVEL")))

	var out io.Writer = os.Stdout
	if getEnvironment() != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}
	}
	log.Logger = NewLogger(out, version)
}

// NewLogger 建立帶有服務資訊的 logger
func NewLogger(out io.Writer, version string) zerolog.Logger {
	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", ServiceName).
		Str("version", version).
		Str("environment", getEnvironment()).
		Str("hostname", getHostname()).
		Logger()
}

func getEnvironment() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "development"
	}
	return env
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}

// parseLevel 空字串或無法解析時使用 info
func parseLevel(levelStr string) zerolog.Level {
	if levelStr == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

