package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type OutboxConfig struct {
	BatchSize int
	Interval  time.Duration
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

// RegisterConfig tunes the point-of-sale flow itself rather than any
// backing service.
type RegisterConfig struct {
	DebounceWindow    time.Duration
	LowStockThreshold int
	ReceiptsDir       string
}

// PrinterConfig points at a raw-socket thermal printer. Leaving Address
// empty (or Enabled false) runs the register in file-only receipt mode.
type PrinterConfig struct {
	Enabled     bool
	Address     string
	DialTimeout time.Duration
}

// ShopConfig carries the receipt header identity.
type ShopConfig struct {
	Name           string
	AddressLines   []string
	Phone          string
	CurrencyPrefix string
}

type Config struct {
	Mongo    MongoConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Outbox   OutboxConfig
	HTTP     HTTPConfig
	Register RegisterConfig
	Printer  PrinterConfig
	Shop     ShopConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "pos"),
			Timeout:                time.Duration(getIntEnv("MONGO_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
		},
		Redis: RedisConfig{
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Outbox: OutboxConfig{
			BatchSize: getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:  time.Duration(getIntEnv("OUTBOX_INTERVAL", 500)) * time.Millisecond,
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		Register: RegisterConfig{
			DebounceWindow:    time.Duration(getIntEnv("REGISTER_DEBOUNCE_WINDOW_MS", 200)) * time.Millisecond,
			LowStockThreshold: getIntEnv("REGISTER_LOW_STOCK_THRESHOLD", 10),
			ReceiptsDir:       getStringEnv("REGISTER_RECEIPTS_DIR", "receipts"),
		},
		Printer: PrinterConfig{
			Enabled:     getBoolEnv("PRINTER_ENABLED", false),
			Address:     getStringEnv("PRINTER_ADDRESS", ""),
			DialTimeout: time.Duration(getIntEnv("PRINTER_DIAL_TIMEOUT", 3)) * time.Second,
		},
		Shop: ShopConfig{
			Name:           getStringEnv("SHOP_NAME", "TOKO GRAND"),
			AddressLines:   splitLines(getStringEnv("SHOP_ADDRESS", "Jl. Raya Utama No. 123")),
			Phone:          getStringEnv("SHOP_PHONE", "0812-3456-7890"),
			CurrencyPrefix: getStringEnv("SHOP_CURRENCY_PREFIX", "Rp"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			ExchangeConfigs: []ExchangeConfig{
				{
					Name:       getStringEnv("RABBITMQ_SALE_EXCHANGE_NAME", "exchange.sale"),
					Type:       getStringEnv("RABBITMQ_SALE_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
				{
					Name:       getStringEnv("RABBITMQ_PRODUCT_EXCHANGE_NAME", "exchange.product"),
					Type:       getStringEnv("RABBITMQ_PRODUCT_EXCHANGE_TYPE", "direct"),
					Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
					AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
				},
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "pos-register"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}

// splitLines turns a "|"-separated env value into receipt header lines.
func splitLines(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}
