package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	Port     string
	LogLevel string

	CartBackend string
	CartKey     string
	DatabaseURL string

	DynamoDBTable    string
	DynamoDBEndpoint string
	AWSRegion        string

	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int

	DeliveryFee decimal.Decimal
	Currency    currency.Unit

	SessionIdleTimeout time.Duration
}

// LoadConfig reads the environment. Unparsable numbers and currencies fall back to defaults;
// Validate reports combinations that cannot run.
func LoadConfig() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CartBackend:      getEnv("CART_BACKEND", BackendMemory),
		CartKey:          getEnv("CART_KEY", "petclub-cart"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DynamoDBTable:    getEnv("DYNAMODB_TABLE", "petclub-carts"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		RabbitMQURL:      getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:    getEnv("RABBITMQ_QUEUE", "petclub_orders"),
		ChannelPoolSize:  getEnvAsInt("CHANNEL_POOL_SIZE", 4),
		DeliveryFee:      getEnvAsDecimal("DELIVERY_FEE", decimal.RequireFromString("15.00")),
		Currency:         getEnvAsCurrency("CURRENCY", currency.BRL),

		SessionIdleTimeout: getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
	}
}

func (c *Config) Validate() error {
	var errs []error

	switch c.CartBackend {
	case BackendMemory, BackendDynamoDB:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for cart backend[%s]", c.CartBackend))
		}
	default:
		errs = append(errs, fmt.Errorf("cart backend[%s] is not supported", c.CartBackend))
	}

	if c.CartBackend == BackendDynamoDB && c.DynamoDBTable == "" {
		errs = append(errs, fmt.Errorf("DYNAMODB_TABLE is empty"))
	}
	if c.CartKey == "" {
		errs = append(errs, fmt.Errorf("CART_KEY is empty"))
	}
	if c.DeliveryFee.IsNegative() {
		errs = append(errs, fmt.Errorf("delivery fee[%s] is negative", c.DeliveryFee))
	}
	if c.RabbitMQURL != "" && c.ChannelPoolSize < 1 {
		errs = append(errs, fmt.Errorf("channel pool size[%d] is below 1", c.ChannelPoolSize))
	}

	if c.SessionIdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("session idle timeout[%s] is not positive", c.SessionIdleTimeout))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsCurrency(key string, defaultValue currency.Unit) currency.Unit {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := currency.ParseISO(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
