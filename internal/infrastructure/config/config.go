package config

import (
	"os"
	"strconv"
	"strings"

	"reforma_xpto/internal/infrastructure/logging"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"

	CounterMemory   = "memory"
	CounterRedis    = "redis"
	CounterPostgres = "postgres"
)

// Config is the process configuration read from the environment.
//
// A .env file is loaded by cmd/api through godotenv/autoload before Load runs.
type Config struct {
	Port int

	StorageDriver string
	CounterDriver string

	RedisAddress string
	DatabaseURL  string

	RabbitMQURL      string
	RabbitMQExchange string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	SequencePrefix string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
}

func Load() Config {
	return Config{
		Port:                   getenvInt("PORT", 8080),
		StorageDriver:          strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageMemory)),
		CounterDriver:          strings.ToLower(getenvDefault("COUNTER_DRIVER", CounterMemory)),
		RedisAddress:           getenvDefault("REDIS_ADDRESS", "localhost:6379"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       getenvDefault("RABBITMQ_EXCHANGE", "backoffice_documents"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		SequencePrefix:         getenvDefault("SEQUENCE_PREFIX", "0000"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.Default().Warnf("[config] %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}
