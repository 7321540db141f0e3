package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	Service    ServiceConfig
	DB         DBConfig
	Redis      RedisConfig
	Insights   InsightsConfig
	Gatekeeper GatekeeperConfig
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
	Env          string `envconfig:"AEROTRAVEL_APP_ENV" required:"true"`
	LogLevel     string `envconfig:"AEROTRAVEL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AEROTRAVEL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"AEROTRAVEL_SERVICE_KIND" default:"engine"`
}

type DBConfig struct {
	DSN    string `envconfig:"AEROTRAVEL_DB_DSN"`
	Driver string `envconfig:"AEROTRAVEL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AEROTRAVEL_DB_HOST"`
	LegacyPort     int    `envconfig:"AEROTRAVEL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AEROTRAVEL_DB_USER"`
	LegacyPassword string `envconfig:"AEROTRAVEL_DB_PASSWORD"`
	LegacyName     string `envconfig:"AEROTRAVEL_DB_NAME"`
	LegacySSLMode  string `envconfig:"AEROTRAVEL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AEROTRAVEL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AEROTRAVEL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AEROTRAVEL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AEROTRAVEL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AEROTRAVEL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"AEROTRAVEL_REDIS_ADDR"`
	Password     string        `envconfig:"AEROTRAVEL_REDIS_PASSWORD"`
	DB           int           `envconfig:"AEROTRAVEL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AEROTRAVEL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AEROTRAVEL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AEROTRAVEL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AEROTRAVEL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AEROTRAVEL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// InsightsConfig tunes the unified metrics report. The report is a reporting
// surface, not a realtime feed, so the cache TTL is measured in minutes.
type InsightsConfig struct {
	ReportTTL time.Duration `envconfig:"AEROTRAVEL_INSIGHTS_REPORT_TTL" default:"10m"`

	// Trend thresholds. Rating-like scalars compare on an absolute delta;
	// count- and amount-like scalars compare on a relative fraction.
	TrendRatingDelta    float64 `envconfig:"AEROTRAVEL_INSIGHTS_TREND_RATING_DELTA" default:"0.2"`
	TrendRelativeMargin float64 `envconfig:"AEROTRAVEL_INSIGHTS_TREND_RELATIVE_MARGIN" default:"0.10"`
}

type GatekeeperConfig struct {
	Interval time.Duration `envconfig:"AEROTRAVEL_GATEKEEPER_INTERVAL" default:"24h"`
	LockTTL  time.Duration `envconfig:"AEROTRAVEL_GATEKEEPER_LOCK_TTL" default:"25h"`
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
