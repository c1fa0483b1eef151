package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Verification VerificationConfig
	SMS          SMSConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// VerificationConfig contains the OTP challenge knobs. The struct is injected
// into the auth usecase so production/development behavior stays auditable in
// one place instead of env lookups scattered through the logic.
type VerificationConfig struct {
	TTLSec      int  // challenge lifetime, default 120
	GraceSec    int  // how long a consumed record remains queryable, default 300
	MaxAttempts int  // verification attempts per challenge, default 3
	RevealCode  bool // include the raw code in API responses (development only)
	Debug       bool // verbose diagnostics on failed lookups (development only)
}

// SMSConfig contains the Kavenegar delivery gateway configuration
type SMSConfig struct {
	Enabled    bool // when false codes are logged instead of sent
	APIKey     string
	Sender     string
	BaseURL    string
	TimeoutSec int
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
