package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	// ApplicationsTopic enables the application-submitted consumer when set.
	ApplicationsTopic string
	ConsumerGroup     string
}

// UnderwritingConfig carries the tunable amounts of the recommendation rule
// chain. The rule thresholds themselves are fixed policy.
type UnderwritingConfig struct {
	HighRiskAmountCeiling decimal.Decimal
	HighRiskAmountCap     decimal.Decimal
}

type Config struct {
	GRPCPort     int
	HTTPPort     int
	DB           DatabaseConfig
	Kafka        KafkaConfig
	Underwriting UnderwritingConfig
	ServiceName  string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9095),
		HTTPPort: getEnvInt("HTTP_PORT", 8095),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "amana"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "amana_financing"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers:           []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:             getEnv("KAFKA_TOPIC", "financing-events"),
			ApplicationsTopic: getEnv("KAFKA_APPLICATIONS_TOPIC", ""),
			ConsumerGroup:     getEnv("KAFKA_CONSUMER_GROUP", "financing-service"),
		},
		Underwriting: UnderwritingConfig{
			HighRiskAmountCeiling: getEnvDecimal("HIGH_RISK_AMOUNT_CEILING", decimal.NewFromInt(5_000_000)),
			HighRiskAmountCap:     getEnvDecimal("HIGH_RISK_AMOUNT_CAP", decimal.NewFromInt(3_000_000)),
		},
		ServiceName: "financing-service",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
