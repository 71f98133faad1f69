// Package config loads the console's settings from defaults, an optional config file, a .env
// file and SM_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rogerio-castellano/sales-console/internal/models"
)

const envPrefix = "SM"

type Config struct {
	Addr           string
	Services       Services
	HTTPTimeout    time.Duration
	SessionBackend string
	SessionFile    string
	RedisAddr      string
	DatabaseURL    string
	RateLimit      RateLimit
	Development    bool
	Users          []models.User
}

type Services struct {
	Commercial string `mapstructure:"commercial"`
	Stock      string `mapstructure:"stock"`
	Sale       string `mapstructure:"sale"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// DefaultUsers is the directory shown by the users view when none is configured.
var DefaultUsers = []models.User{
	{ID: 1, Login: "admin", Role: "Administrator"},
	{ID: 2, Login: "sales_manager", Role: "Sales Manager"},
	{ID: 3, Login: "stock_clerk", Role: "Stock Clerk"},
	{ID: 4, Login: "john_doe", Role: "Salesperson"},
	{ID: 5, Login: "marie_smith", Role: "Salesperson"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("services.commercial", "http://localhost:8081")
	v.SetDefault("services.stock", "http://localhost:8082")
	v.SetDefault("services.sale", "http://localhost:8083")
	v.SetDefault("http.timeout", "0s")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.file", "sessions.json")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("database.url", "")
	v.SetDefault("ratelimit.rps", 5)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("log.development", false)
}

// Load reads the configuration. configFile may be empty, in which case ./config.yaml is used
// when present. A missing .env file is not an error.
func Load(configFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Addr: v.GetString("server.addr"),
		Services: Services{
			Commercial: v.GetString("services.commercial"),
			Stock:      v.GetString("services.stock"),
			Sale:       v.GetString("services.sale"),
		},
		HTTPTimeout:    v.GetDuration("http.timeout"),
		SessionBackend: strings.ToLower(v.GetString("session.backend")),
		SessionFile:    v.GetString("session.file"),
		RedisAddr:      v.GetString("redis.addr"),
		DatabaseURL:    v.GetString("database.url"),
		RateLimit: RateLimit{
			RPS:   v.GetFloat64("ratelimit.rps"),
			Burst: v.GetInt("ratelimit.burst"),
		},
		Development: v.GetBool("log.development"),
	}

	if v.IsSet("users") {
		if err := v.UnmarshalKey("users", &cfg.Users); err != nil {
			return Config{}, fmt.Errorf("invalid users: %w", err)
		}
	}
	if len(cfg.Users) == 0 {
		cfg.Users = DefaultUsers
	}

	switch cfg.SessionBackend {
	case "memory", "file", "redis", "postgres":
	default:
		return Config{}, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
	if cfg.SessionBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("session backend postgres needs database.url")
	}
	return cfg, nil
}
