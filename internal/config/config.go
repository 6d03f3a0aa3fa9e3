// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	RateLimit   RateLimitConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	AWS         AWSConfig
	Blockchain  BlockchainConfig
	Email       EmailConfig
	I18n        I18nConfig
	Frontend    FrontendConfig
}

type FrontendConfig struct {
	BaseURL string
}

type ServerConfig struct {
	Port           string
	Host           string
	ReadTimeout    int
	WriteTimeout   int
	IdleTimeout    int
	AllowedOrigins []string
	UploadsDir     string
}

// RateLimitConfig sets the per-IP request budgets for each middleware
// tier. Anchor covers the chain-transacting endpoints (verify, mint),
// which hold a transaction open until the receipt lands.
type RateLimitConfig struct {
	GeneralPerSecond int
	AuthPerMinute    int
	UploadPerMinute  int
	AnchorPerMinute  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // in hours
	RefreshTokenTTL int // in hours
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type BlockchainConfig struct {
	Network        string
	RPCURL         string
	PrivateKey     string
	ChainID        int64
	DeploymentsDir string
	AnchorAddress  string // backend wallet authorized to write anchors
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS",
				[]string{"http://localhost:5173", "http://localhost:3000"}),
			UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
		},
		RateLimit: RateLimitConfig{
			GeneralPerSecond: getEnvAsInt("RATE_LIMIT_GENERAL_PER_SECOND", 10),
			AuthPerMinute:    getEnvAsInt("RATE_LIMIT_AUTH_PER_MINUTE", 5),
			UploadPerMinute:  getEnvAsInt("RATE_LIMIT_UPLOAD_PER_MINUTE", 10),
			AnchorPerMinute:  getEnvAsInt("RATE_LIMIT_ANCHOR_PER_MINUTE", 3),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "truvalue_registry"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL:  getEnvAsInt("JWT_ACCESS_TTL", 24),   // 24 hours
			RefreshTokenTTL: getEnvAsInt("JWT_REFRESH_TTL", 168), // 7 days
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "eu-central-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "truvalue-asset-documents"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Blockchain: BlockchainConfig{
			Network:        getEnv("BLOCKCHAIN_NETWORK", "sepolia"),
			RPCURL:         getEnv("BLOCKCHAIN_RPC_URL", ""),
			PrivateKey:     getEnv("BLOCKCHAIN_PRIVATE_KEY", ""),
			ChainID:        int64(getEnvAsInt("BLOCKCHAIN_CHAIN_ID", 11155111)),
			DeploymentsDir: getEnv("DEPLOYMENTS_DIR", "./deployments"),
			AnchorAddress:  getEnv("BACKEND_ANCHOR_ADDRESS", ""),
		},
		Email: EmailConfig{
			SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			FromEmail:    getEnv("FROM_EMAIL", "noreply@truvalue.io"),
			FromName:     getEnv("FROM_NAME", "Truvalue Registry"),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Blockchain.RPCURL != "" && c.Blockchain.PrivateKey == "" {
		return fmt.Errorf("BLOCKCHAIN_PRIVATE_KEY is required when an RPC URL is configured")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
