package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Iyzico       IyzicoConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MUNCH_APP_ENV" required:"true"`
	Port         string `envconfig:"MUNCH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MUNCH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MUNCH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MUNCH_DB_DSN"`
	Driver string `envconfig:"MUNCH_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MUNCH_DB_HOST"`
	LegacyPort     int    `envconfig:"MUNCH_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MUNCH_DB_USER"`
	LegacyPassword string `envconfig:"MUNCH_DB_PASSWORD"`
	LegacyName     string `envconfig:"MUNCH_DB_NAME"`
	LegacySSLMode  string `envconfig:"MUNCH_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MUNCH_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MUNCH_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MUNCH_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MUNCH_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MUNCH_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MUNCH_REDIS_ADDR"`
	Password     string        `envconfig:"MUNCH_REDIS_PASSWORD"`
	DB           int           `envconfig:"MUNCH_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MUNCH_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MUNCH_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MUNCH_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MUNCH_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MUNCH_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	TTLHours int `envconfig:"MUNCH_CART_TTL_HOURS" default:"168"`
}

// TTL returns how long an untouched cart survives in storage. Zero disables expiry.
func (c CartConfig) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 0
	}
	return time.Duration(c.TTLHours) * time.Hour
}

type IyzicoConfig struct {
	APIKey    string `envconfig:"MUNCH_IYZICO_API_KEY"`
	SecretKey string `envconfig:"MUNCH_IYZICO_SECRET_KEY"`
	BaseURL   string `envconfig:"MUNCH_IYZICO_BASE_URL" default:"https://sandbox-api.iyzipay.com"`
	Env       string `envconfig:"MUNCH_IYZICO_ENV" default:"sandbox"`
}

// Environment returns the normalized gateway environment (sandbox/live).
func (i IyzicoConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(i.Env))
	if env == "" {
		return "sandbox"
	}
	return env
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"MUNCH_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"MUNCH_AUTO_MIGRATE" default:"false"`
	AutoSeed    bool `envconfig:"MUNCH_AUTO_SEED" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
