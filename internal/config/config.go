package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists the origins allowed to call the API from a browser.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// DatabaseConfig contains the document store connection settings.
type DatabaseConfig struct {
	URI                   string `mapstructure:"uri"                     validate:"required,url"`
	Name                  string `mapstructure:"name"                    validate:"required"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// MailConfig contains SMTP settings for transactional email.
// When Enabled is false notifications are discarded.
type MailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"     validate:"required_if=Enabled true"`
	Port     int    `mapstructure:"port"     validate:"gt=0,lt=65536"`
	Username string `mapstructure:"username" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password" validate:"required_if=Enabled true"`
	From     string `mapstructure:"from"     validate:"required_if=Enabled true"`
}

// PaymentConfig contains payment processor settings.
type PaymentConfig struct {
	StripeSecretKey string `mapstructure:"stripe_secret_key" validate:"required"`
	Currency        string `mapstructure:"currency"          validate:"required,len=3"`
}
