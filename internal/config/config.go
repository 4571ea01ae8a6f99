package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Event source kinds.
const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled    bool
	DatasetTTL time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// DashboardConfig - behaviour of dashboard sessions
type DashboardConfig struct {
	Source         string
	Debounce       time.Duration
	ListLimit      int
	CameraZoom     int
	SessionIdleTTL time.Duration
	SweepInterval  time.Duration
	FetchTimeout   time.Duration
	TimeZone       string
}

// Load reads .env from the working directory when present, then the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads configuration from path (optional) and the environment.
// Environment variables win over the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:    v.GetBool("CACHE_ENABLED"),
			DatasetTTL: time.Duration(v.GetInt("DATASET_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Dashboard: DashboardConfig{
			Source:         strings.ToLower(v.GetString("DASHBOARD_SOURCE")),
			Debounce:       time.Duration(v.GetInt("DASHBOARD_DEBOUNCE_MS")) * time.Millisecond,
			ListLimit:      v.GetInt("DASHBOARD_LIST_LIMIT"),
			CameraZoom:     v.GetInt("DASHBOARD_CAMERA_ZOOM"),
			SessionIdleTTL: time.Duration(v.GetInt("DASHBOARD_SESSION_TTL")) * time.Second,
			SweepInterval:  time.Duration(v.GetInt("DASHBOARD_SWEEP_INTERVAL")) * time.Second,
			FetchTimeout:   time.Duration(v.GetInt("DASHBOARD_FETCH_TIMEOUT")) * time.Second,
			TimeZone:       v.GetString("DASHBOARD_TIMEZONE"),
		},
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.DatasetTTL == 0 {
		c.Cache.DatasetTTL = 5 * time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Dashboard.Source == "" {
		c.Dashboard.Source = SourceStatic
	}
	if c.Dashboard.Debounce == 0 {
		c.Dashboard.Debounce = 300 * time.Millisecond
	}
	if c.Dashboard.ListLimit == 0 {
		c.Dashboard.ListLimit = 8
	}
	if c.Dashboard.CameraZoom == 0 {
		c.Dashboard.CameraZoom = 13
	}
	if c.Dashboard.SessionIdleTTL == 0 {
		c.Dashboard.SessionIdleTTL = 30 * time.Minute
	}
	if c.Dashboard.SweepInterval == 0 {
		c.Dashboard.SweepInterval = time.Minute
	}
	if c.Dashboard.FetchTimeout == 0 {
		c.Dashboard.FetchTimeout = 10 * time.Second
	}
	if c.Dashboard.TimeZone == "" {
		c.Dashboard.TimeZone = "Pacific/Auckland"
	}
}

func (c *Config) validate() error {
	switch c.Dashboard.Source {
	case SourceStatic, SourcePostgres:
	default:
		return fmt.Errorf("unknown DASHBOARD_SOURCE %q", c.Dashboard.Source)
	}
	if c.Dashboard.ListLimit < 0 {
		return fmt.Errorf("DASHBOARD_LIST_LIMIT must not be negative")
	}
	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
