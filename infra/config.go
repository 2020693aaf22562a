package infra

import (
	"errors"
	"fmt"
	"os"
	"time"

	"maps-gateway/utils"

	"gopkg.in/yaml.v3"
)

const (
	defaultGoogleBaseURL  = "https://maps.googleapis.com"
	defaultTimeoutSeconds = 10
	defaultTimeZone       = "Asia/Tokyo"
	defaultRetentionDays  = 30
)

type Config struct {
	App struct {
		AppVersion      string `yaml:"app_version"`
		DefaultTimeZone string `yaml:"default_time_zone"` // target_time 未帶偏移量時使用
	} `yaml:"app"`
	Google struct {
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"google"`
	MongoDB struct {
		URI            string `yaml:"uri"`
		Database       string `yaml:"database"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		RetentionDays  int    `yaml:"retention_days"` // 使用日誌保留天數
	} `yaml:"mongodb"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Otel struct {
		Enabled         bool   `yaml:"enabled"`
		Endpoint        string `yaml:"endpoint"`
		DevelopmentMode bool   `yaml:"development_mode"`
	} `yaml:"otel"`
	CertBaseURL string `yaml:"cert_base_url"`
}

var AppConfig Config

// LoadConfig 讀取 config.yml；檔案不存在時只用預設值與環境變數
func LoadConfig(path string) error {
	cfg, err := ReadConfig(path)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// ReadConfig 讀取設定檔並套用預設值與環境變數覆寫
func ReadConfig(path string) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// 容器環境通常只給環境變數
	default:
		return Config{}, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		c.Google.APIKey = key
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		c.Otel.Endpoint = endpoint
	}
}

func (c *Config) applyDefaults() {
	if c.Google.BaseURL == "" {
		c.Google.BaseURL = defaultGoogleBaseURL
	}
	if c.Google.TimeoutSeconds <= 0 {
		c.Google.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.App.DefaultTimeZone == "" {
		c.App.DefaultTimeZone = defaultTimeZone
	}
	if c.MongoDB.Database == "" {
		c.MongoDB.Database = "maps_gateway"
	}
	if c.MongoDB.TimeoutSeconds <= 0 {
		c.MongoDB.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.MongoDB.RetentionDays <= 0 {
		c.MongoDB.RetentionDays = defaultRetentionDays
	}
	if c.Otel.Endpoint == "" {
		c.Otel.Endpoint = "localhost:4317"
	}
	if c.App.AppVersion == "" {
		c.App.AppVersion = "1.0.0"
	}
}

// Validate 啟動時檢查，缺少 API key 直接失敗
func (c Config) Validate() error {
	if c.Google.APIKey == "" {
		return errors.New("google.api_key is not set (config.yml or GOOGLE_MAPS_API_KEY)")
	}
	if _, err := utils.LoadLocation(c.App.DefaultTimeZone); err != nil {
		return fmt.Errorf("app.default_time_zone: %w", err)
	}
	return nil
}

// GoogleTimeout 單次 Google 呼叫的期限
func (c Config) GoogleTimeout() time.Duration {
	return time.Duration(c.Google.TimeoutSeconds) * time.Second
}

// UsageLogRetention 使用日誌在 MongoDB 的保留期間
func (c Config) UsageLogRetention() time.Duration {
	return time.Duration(c.MongoDB.RetentionDays) * 24 * time.Hour
}
