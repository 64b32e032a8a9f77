package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string   `mapstructure:"APP_PORT"`
	Env               string   `mapstructure:"ENV"`
	LogLevel          string   `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`

	// Public site configuration. PublicBaseURL is the trusted origin the
	// customer is redirected back to after checkout.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
	ConfirmPath   string `mapstructure:"CONFIRM_PATH"`

	// Square configuration.
	SquareAccessToken string `mapstructure:"SQUARE_ACCESS_TOKEN"`
	SquareLocationID  string `mapstructure:"SQUARE_LOCATION_ID"`
	SquareEnv         string `mapstructure:"SQUARE_ENV"`
	SquareVersion     string `mapstructure:"SQUARE_VERSION"`

	// SendGrid configuration.
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailToOwner   string `mapstructure:"EMAIL_TO_OWNER"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDedupeDB int    `mapstructure:"REDIS_DEDUPE_DB"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Charge guardrails in minor units (cents).
	MinChargeCents int64 `mapstructure:"MIN_CHARGE_CENTS"`
	MaxChargeCents int64 `mapstructure:"MAX_CHARGE_CENTS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"https://mltorlandotransportation.com"})
	viper.SetDefault("PUBLIC_BASE_URL", "https://mltorlandotransportation.com")
	viper.SetDefault("CONFIRM_PATH", "/payment-confirmed.html")
	viper.SetDefault("SQUARE_ENV", "production")
	viper.SetDefault("SQUARE_VERSION", "2025-10-16")
	viper.SetDefault("EMAIL_TO_OWNER", "mltorlando@yahoo.com")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DEDUPE_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("MIN_CHARGE_CENTS", 100)
	viper.SetDefault("MAX_CHARGE_CENTS", 500000)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
