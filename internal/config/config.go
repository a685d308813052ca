package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	AccessTokenTTLMin  int    `mapstructure:"ACCESS_TOKEN_TTL_MIN"`
	RefreshTokenTTLHrs int    `mapstructure:"REFRESH_TOKEN_TTL_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// SMTP configuration for outbound notifications
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// RabbitMQ configuration; empty URL selects the in-memory queue
	AMQPURL       string `mapstructure:"AMQP_URL"`
	EmailQueue    string `mapstructure:"EMAIL_QUEUE"`
	EmailAttempts int    `mapstructure:"EMAIL_MAX_ATTEMPTS"`

	// AI triage provider configuration
	TriageAPIURL       string `mapstructure:"TRIAGE_API_URL"`
	TriageOAuthURL     string `mapstructure:"TRIAGE_OAUTH_URL"`
	TriageClientID     string `mapstructure:"TRIAGE_CLIENT_ID"`
	TriageClientSecret string `mapstructure:"TRIAGE_CLIENT_SECRET"`
	TriageModel        string `mapstructure:"TRIAGE_MODEL"`

	// Export object storage (S3-compatible) configuration
	ExportBucket    string `mapstructure:"EXPORT_BUCKET"`
	ExportEndpoint  string `mapstructure:"EXPORT_ENDPOINT"`
	ExportRegion    string `mapstructure:"EXPORT_REGION"`
	ExportAccessKey string `mapstructure:"EXPORT_ACCESS_KEY"`
	ExportSecretKey string `mapstructure:"EXPORT_SECRET_KEY"`

	// LDAP directory for personnel lookup
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Public base URL used in survey invite links
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	// How long an unanswered survey stays answerable
	SurveyTTLHrs int `mapstructure:"SURVEY_TTL_HOURS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7040")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "helpdesk_admin")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("ACCESS_TOKEN_TTL_MIN", 30)
	viper.SetDefault("REFRESH_TOKEN_TTL_HOURS", 168)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// SMTP defaults (empty host selects the log sender)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_FROM", "helpdesk@localhost")

	// Queue defaults
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("EMAIL_QUEUE", "email_sends")
	viper.SetDefault("EMAIL_MAX_ATTEMPTS", 3)

	// Triage defaults
	viper.SetDefault("TRIAGE_API_URL", "")
	viper.SetDefault("TRIAGE_OAUTH_URL", "")
	viper.SetDefault("TRIAGE_MODEL", "triage-small")

	// Export storage defaults
	viper.SetDefault("EXPORT_BUCKET", "")
	viper.SetDefault("EXPORT_REGION", "auto")

	// LDAP defaults
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	viper.SetDefault("SURVEY_TTL_HOURS", 720)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.EmailAttempts < 1 {
		return fmt.Errorf("EMAIL_MAX_ATTEMPTS must be at least 1")
	}

	if config.SurveyTTLHrs < 1 {
		return fmt.Errorf("SURVEY_TTL_HOURS must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
