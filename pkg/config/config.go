package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Subscription  SubscriptionConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
		if strings.TrimSpace(cfg.DB.DSN) == "" {
			return nil, fmt.Errorf("RAIZAPP_DB_DSN is required when RAIZAPP_USE_SQLITE is set")
		}
	} else if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RAIZAPP_APP_ENV" required:"true"`
	Port         string `envconfig:"RAIZAPP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RAIZAPP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RAIZAPP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RAIZAPP_DB_DSN"`
	Driver string `envconfig:"RAIZAPP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RAIZAPP_DB_HOST"`
	LegacyPort     int    `envconfig:"RAIZAPP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RAIZAPP_DB_USER"`
	LegacyPassword string `envconfig:"RAIZAPP_DB_PASSWORD"`
	LegacyName     string `envconfig:"RAIZAPP_DB_NAME"`
	LegacySSLMode  string `envconfig:"RAIZAPP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RAIZAPP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RAIZAPP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RAIZAPP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RAIZAPP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if strings.TrimSpace(d.DSN) != "" {
		return nil
	}
	if d.LegacyHost == "" || d.LegacyUser == "" || d.LegacyName == "" {
		return fmt.Errorf("either RAIZAPP_DB_DSN or host/user/name settings are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.LegacyUser, d.LegacyPassword),
		Host:   d.LegacyHost + ":" + strconv.Itoa(d.LegacyPort),
		Path:   "/" + d.LegacyName,
	}
	q := url.Values{}
	q.Set("sslmode", d.LegacySSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"RAIZAPP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"RAIZAPP_REDIS_ADDR"`
	Password     string        `envconfig:"RAIZAPP_REDIS_PASSWORD"`
	DB           int           `envconfig:"RAIZAPP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RAIZAPP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RAIZAPP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RAIZAPP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RAIZAPP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RAIZAPP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"RAIZAPP_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"RAIZAPP_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"RAIZAPP_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"RAIZAPP_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	MinLength        int `envconfig:"RAIZAPP_PASSWORD_MIN_LENGTH" default:"6"`
	ArgonMemoryKB    int `envconfig:"RAIZAPP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RAIZAPP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RAIZAPP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RAIZAPP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RAIZAPP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"RAIZAPP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"RAIZAPP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"RAIZAPP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"RAIZAPP_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"RAIZAPP_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"RAIZAPP_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type SubscriptionConfig struct {
	TrialDays int `envconfig:"RAIZAPP_SUBSCRIPTION_TRIAL_DAYS" default:"7"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RAIZAPP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RAIZAPP_AUTO_MIGRATE" default:"false"`
}
