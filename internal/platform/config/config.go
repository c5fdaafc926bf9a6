package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// FX provider config
	FxBaseURL      string `mapstructure:"FX_BASE_URL"`
	FxFetchTimeout time.Duration
	FxCacheTTL     time.Duration

	// Redis rate cache, optional. Empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP.
	RateLimit string `mapstructure:"RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "trip-planner-app")
	viper.SetDefault("FX_BASE_URL", "https://api.frankfurter.app")
	viper.SetDefault("FX_FETCH_TIMEOUT", "5s")
	viper.SetDefault("FX_CACHE_TTL", "1h")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	// Actual environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Secret
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1 // Default to 1 hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	// Load JWT Issuer
	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "trip-planner-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	fxFetchTimeoutStr := viper.GetString("FX_FETCH_TIMEOUT")
	fxFetchTimeout, err := time.ParseDuration(fxFetchTimeoutStr)
	if err != nil {
		fxFetchTimeout = 5 * time.Second
		if fxFetchTimeoutStr != "" {
			log.Printf("Warning: Invalid value for FX_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", fxFetchTimeoutStr, fxFetchTimeout.String())
		}
	}

	fxCacheTTLStr := viper.GetString("FX_CACHE_TTL")
	fxCacheTTL, err := time.ParseDuration(fxCacheTTLStr)
	if err != nil {
		fxCacheTTL = time.Hour
		if fxCacheTTLStr != "" {
			log.Printf("Warning: Invalid value for FX_CACHE_TTL ('%s'). Defaulting to %s.\n", fxCacheTTLStr, fxCacheTTL.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.FxBaseURL = viper.GetString("FX_BASE_URL")
	cfg.FxFetchTimeout = fxFetchTimeout
	cfg.FxCacheTTL = fxCacheTTL
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
