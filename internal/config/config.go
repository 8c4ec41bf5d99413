package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Remote   RemoteConfig   `yaml:"remote"`
	Local    LocalConfig    `yaml:"local"`
	Auth     AuthConfig     `yaml:"auth"`
	Identity IdentityConfig `yaml:"identity"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// RemoteConfig holds the remote PostgreSQL store settings.
// The remote store is optional: it is enabled only when both URL and
// AccessKey are present. AccessKey is used as the database password.
type RemoteConfig struct {
	URL             string        `yaml:"url"                env:"REMOTE_URL"`
	AccessKey       string        `yaml:"access_key"         env:"REMOTE_ACCESS_KEY"`
	MaxConns        int32         `yaml:"max_conns"          env:"REMOTE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"REMOTE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"REMOTE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"REMOTE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectAttempts uint          `yaml:"connect_attempts"   env:"REMOTE_CONNECT_ATTEMPTS"   env-default:"3"`
	ConnectDelay    time.Duration `yaml:"connect_delay"      env:"REMOTE_CONNECT_DELAY"      env-default:"1s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"REMOTE_AUTO_MIGRATE"       env-default:"true"`
}

// IsConfigured reports whether the remote store should be used at all.
func (c RemoteConfig) IsConfigured() bool {
	return c.URL != "" && c.AccessKey != ""
}

// LocalConfig holds the on-disk key-value store settings.
type LocalConfig struct {
	DataDir string `yaml:"data_dir" env:"LOCAL_DATA_DIR" env-default:"./data"`
}

// AuthConfig holds platform authentication and session settings.
type AuthConfig struct {
	BotToken       string        `yaml:"bot_token"         env:"AUTH_BOT_TOKEN"`
	JWTSecret      string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"scorekeeper"`
	SessionTTL     time.Duration `yaml:"session_ttl"       env:"AUTH_SESSION_TTL"       env-default:"24h"`
	InitDataMaxAge time.Duration `yaml:"init_data_max_age" env:"AUTH_INIT_DATA_MAX_AGE" env-default:"24h"`
	LoginRateLimit int           `yaml:"login_rate_limit"  env:"AUTH_LOGIN_RATE_LIMIT"  env-default:"20"`
}

// TelegramEnabled reports whether Mini App launch data can be verified.
func (c AuthConfig) TelegramEnabled() bool {
	return c.BotToken != ""
}

// IdentityConfig holds identity service settings.
type IdentityConfig struct {
	CacheSize int `yaml:"cache_size" env:"IDENTITY_CACHE_SIZE" env-default:"1024"`
}

// LogConfig holds logging settings. When File is set, logs are written to a
// rotating file instead of stdout.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"`
	Compress   bool   `yaml:"compress"     env:"LOG_COMPRESS"     env-default:"true"`
}
