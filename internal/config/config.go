package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Database DatabaseConfig `toml:"database"`
	Calendar CalendarConfig `toml:"calendar"`
	Geocoder GeocoderConfig `toml:"geocoder"`
	Mail     MailConfig     `toml:"mail"`
	Payment  PaymentConfig  `toml:"payment"`
	Metrics  MetricsConfig  `toml:"metrics"`
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

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к базе данных
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarConfig настройки интеграции с Google Calendar
// Пустые credentials переводят резолвер слотов в симуляцию
type CalendarConfig struct {
	BaseURL    string `toml:"base_url"`
	CalendarID string `toml:"calendar_id"`
	APIKey     string `toml:"api_key"`
	Timeout    int    `toml:"timeout"` // секунды
}

// GeocoderConfig настройки интеграции с Nominatim
type GeocoderConfig struct {
	BaseURL     string `toml:"base_url"`
	CountryCode string `toml:"country_code"`
	Timeout     int    `toml:"timeout"` // секунды
}

// MailConfig настройки SMTP
type MailConfig struct {
	Enabled   bool   `toml:"enabled"`
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	FromEmail string `toml:"from_email"`
}

// PaymentConfig настройки имитации платежного провайдера
type PaymentConfig struct {
	DelayMillis int `toml:"delay_millis"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла
// Секреты можно переопределить переменными окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides переопределяет секреты из окружения
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("GOOGLE_CALENDAR_API_KEY"); v != "" {
		cfg.Calendar.APIKey = v
	}
	if v := os.Getenv("GOOGLE_CALENDAR_ID"); v != "" {
		cfg.Calendar.CalendarID = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Mail.Password = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}
