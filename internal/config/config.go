package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/TMS-AdminService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Database    DatabaseConfig    `toml:"database"`
	TourBackend TourBackendConfig `toml:"tour_backend"`
	Cache       CacheConfig       `toml:"cache"`
	Drafts      DraftsConfig      `toml:"drafts"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к PostgreSQL (автосохранение черновиков)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// TourBackendConfig настройки клиента REST-бэкенда туров
type TourBackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// CacheConfig окна устаревания и очистки кеша запросов
type CacheConfig struct {
	StaleAfterSeconds int `toml:"stale_after_seconds"`
	GCAfterSeconds    int `toml:"gc_after_seconds"`
}

// DraftsConfig настройки формы черновиков
type DraftsConfig struct {
	ValidateQuietMillis int `toml:"validate_quiet_millis"` // окно коалесцирования валидации
	SessionMaxAgeHours  int `toml:"session_max_age_hours"` // возраст, после которого сессия считается брошенной
	PurgeIntervalMins   int `toml:"purge_interval_mins"`   // период фоновой чистки брошенных сессий
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if cfg.Server.HTTPPort <= 0 {
		return nil, fmt.Errorf("config: server.http_port must be positive")
	}
	if cfg.TourBackend.URL == "" {
		return nil, fmt.Errorf("config: tour_backend.url is required")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "tms-admin-service"
	}
	if c.TourBackend.Timeout == 0 {
		c.TourBackend.Timeout = 10
	}
	if c.Cache.StaleAfterSeconds == 0 {
		c.Cache.StaleAfterSeconds = domain.DefaultStaleAfterSeconds
	}
	if c.Cache.GCAfterSeconds == 0 {
		c.Cache.GCAfterSeconds = domain.DefaultGCAfterSeconds
	}
	if c.Drafts.ValidateQuietMillis == 0 {
		c.Drafts.ValidateQuietMillis = 300
	}
	if c.Drafts.SessionMaxAgeHours == 0 {
		c.Drafts.SessionMaxAgeHours = 24
	}
	if c.Drafts.PurgeIntervalMins == 0 {
		c.Drafts.PurgeIntervalMins = 60
	}
}
