package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Storage     StorageConfig
	Redis       RedisConfig
	Database    DatabaseConfig
	Resolver    ResolverConfig
	Geolocation GeolocationConfig
	Recorder    RecorderConfig
	Language    LanguageConfig
	Log         LogConfig
	Worker      WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// StorageConfig selects the local key-value backend. "sqlite" keeps
// everything on disk next to the process; "redis" shares the entries with
// the cache instance.
type StorageConfig struct {
	Driver     string
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
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

type ResolverConfig struct {
	AdvisoryDelay time.Duration
	FetchTimeout  time.Duration
}

type GeolocationConfig struct {
	BaseURL        string
	RequestTimeout int
	Consent        bool
}

type RecorderConfig struct {
	QueueSize     int
	PublishEvents bool
}

type LanguageConfig struct {
	Default string
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	BatchSize         int
	StreamReadTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Storage: StorageConfig{
			Driver:     viper.GetString("STORAGE_DRIVER"),
			SQLitePath: viper.GetString("STORAGE_SQLITE_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Resolver: ResolverConfig{
			AdvisoryDelay: time.Duration(viper.GetInt("RESOLVER_ADVISORY_DELAY")) * time.Millisecond,
			FetchTimeout:  time.Duration(viper.GetInt("RESOLVER_FETCH_TIMEOUT")) * time.Millisecond,
		},
		Geolocation: GeolocationConfig{
			BaseURL:        viper.GetString("GEO_BASE_URL"),
			RequestTimeout: viper.GetInt("GEO_REQUEST_TIMEOUT"),
			Consent:        viper.GetBool("GEO_CONSENT"),
		},
		Recorder: RecorderConfig{
			QueueSize:     viper.GetInt("RECORDER_QUEUE_SIZE"),
			PublishEvents: viper.GetBool("RECORDER_PUBLISH_EVENTS"),
		},
		Language: LanguageConfig{
			Default: viper.GetString("LANGUAGE_DEFAULT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:         viper.GetInt("WORKER_BATCH_SIZE"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "sqlite"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "findhelp.db"
	}
	if cfg.Resolver.AdvisoryDelay == 0 {
		cfg.Resolver.AdvisoryDelay = 8 * time.Second
	}
	if cfg.Resolver.FetchTimeout == 0 {
		cfg.Resolver.FetchTimeout = 20 * time.Second
	}
	if cfg.Geolocation.BaseURL == "" {
		cfg.Geolocation.BaseURL = "http://ip-api.com"
	}
	if cfg.Geolocation.RequestTimeout == 0 {
		cfg.Geolocation.RequestTimeout = 5
	}
	if cfg.Recorder.QueueSize == 0 {
		cfg.Recorder.QueueSize = 256
	}
	if cfg.Language.Default == "" {
		cfg.Language.Default = "en"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "interaction-archive-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
