package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	ODsay    ODsayConfig
	Kakao    KakaoConfig
	Planner  PlannerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
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
	RouteCacheTTL   time.Duration
	GeocodeCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
}

// ODsayConfig - настройки провайдера поиска маршрутов
type ODsayConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RateLimit      float64 // запросов в секунду
	RateBurst      int
}

// KakaoConfig - настройки геокодера
type KakaoConfig struct {
	RESTKey        string
	BaseURL        string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

type PlannerConfig struct {
	DefaultProfileID string
	HistoryLimit     int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен, переменные окружения имеют приоритет
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
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
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheTTL:   time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
		},
		ODsay: ODsayConfig{
			APIKey:         viper.GetString("ODSAY_KEY"),
			BaseURL:        viper.GetString("ODSAY_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("ODSAY_TIMEOUT")) * time.Second,
			RateLimit:      viper.GetFloat64("ODSAY_RATE_LIMIT"),
			RateBurst:      viper.GetInt("ODSAY_RATE_BURST"),
		},
		Kakao: KakaoConfig{
			RESTKey:        viper.GetString("KAKAO_REST_KEY"),
			BaseURL:        viper.GetString("KAKAO_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("KAKAO_TIMEOUT")) * time.Second,
			RateLimit:      viper.GetFloat64("KAKAO_RATE_LIMIT"),
			RateBurst:      viper.GetInt("KAKAO_RATE_BURST"),
		},
		Planner: PlannerConfig{
			DefaultProfileID: viper.GetString("PLANNER_DEFAULT_PROFILE"),
			HistoryLimit:     viper.GetInt("PLANNER_HISTORY_LIMIT"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults - значения по умолчанию для незаданных параметров
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 10 * time.Minute
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "route-history-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}
	if cfg.ODsay.BaseURL == "" {
		cfg.ODsay.BaseURL = "https://api.odsay.com/v1/api"
	}
	if cfg.ODsay.RequestTimeout == 0 {
		cfg.ODsay.RequestTimeout = 10 * time.Second
	}
	if cfg.ODsay.RateLimit == 0 {
		cfg.ODsay.RateLimit = 5
	}
	if cfg.ODsay.RateBurst == 0 {
		cfg.ODsay.RateBurst = 5
	}
	if cfg.Kakao.BaseURL == "" {
		cfg.Kakao.BaseURL = "https://dapi.kakao.com"
	}
	if cfg.Kakao.RequestTimeout == 0 {
		cfg.Kakao.RequestTimeout = 5 * time.Second
	}
	if cfg.Kakao.RateLimit == 0 {
		cfg.Kakao.RateLimit = 10
	}
	if cfg.Kakao.RateBurst == 0 {
		cfg.Kakao.RateBurst = 10
	}
	if cfg.Planner.DefaultProfileID == "" {
		cfg.Planner.DefaultProfileID = "default"
	}
	if cfg.Planner.HistoryLimit == 0 {
		cfg.Planner.HistoryLimit = 50
	}
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
