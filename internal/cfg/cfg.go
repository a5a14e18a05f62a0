package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

type Config struct {
	Http     *HTTPConfig
	Redis    *RedisCfg
	Kafka    *KafkaCfg
	Checkout *CheckoutCfg
	Catalog  *CatalogCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	CartTTL     time.Duration // время жизни корзины сессии
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// CheckoutCfg — параметры расчёта заказа и канал передачи.
type CheckoutCfg struct {
	FreeShippingOver decimal.Decimal // порог бесплатной доставки
	ShippingFee      decimal.Decimal
	TaxRate          decimal.Decimal
	WhatsAppNumber   string
}

type CatalogCfg struct {
	DataFile    string // путь к JSON-файлу каталога; пусто — встроенные данные
	LatestLimit int
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	godotenv.Load()

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	checkout, err := loadCheckoutCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:     http,
		Redis:    redis,
		Kafka:    kafka,
		Checkout: checkout,
		Catalog:  catalog,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr        = "localhost:6379"
		defaultDB          = 0
		defaultMaxRetries  = 3
		defaultDialTimeout = 5 * time.Second
		defaultTimeout     = 3 * time.Second
		defaultCartTTL     = 72 * time.Hour
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	timeout, err := parseDurationEnv("REDIS_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_TIMEOUT")
		return nil, err
	}

	cartTTL, err := parseDurationEnv("CART_TTL", defaultCartTTL)
	if err != nil {
		log.Errorf(err, "invalid CART_TTL")
		return nil, err
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		CartTTL:     cartTTL,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultBrokers           = "localhost:9092"
		defaultTopic             = "orders.placed"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokers := strings.Split(getEnvOrDefault("KAFKA_BROKERS", defaultBrokers), ",")

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadCheckoutCfg(log logger.Logger) (*CheckoutCfg, error) {
	const (
		defaultFreeShippingOver = "100"
		defaultShippingFee      = "10"
		defaultTaxRate          = "0.07"
	)

	freeOver, err := parseDecimalEnv("FREE_SHIPPING_OVER", defaultFreeShippingOver)
	if err != nil {
		log.Errorf(err, "invalid FREE_SHIPPING_OVER")
		return nil, err
	}

	fee, err := parseDecimalEnv("SHIPPING_FEE", defaultShippingFee)
	if err != nil {
		log.Errorf(err, "invalid SHIPPING_FEE")
		return nil, err
	}

	taxRate, err := parseDecimalEnv("TAX_RATE", defaultTaxRate)
	if err != nil {
		log.Errorf(err, "invalid TAX_RATE")
		return nil, err
	}

	number := getEnv("WHATSAPP_NUMBER")
	if number == "" {
		err := fmt.Errorf("WHATSAPP_NUMBER is required")
		log.Errorf(err, "missing WHATSAPP_NUMBER")
		return nil, err
	}

	return &CheckoutCfg{
		FreeShippingOver: freeOver,
		ShippingFee:      fee,
		TaxRate:          taxRate,
		WhatsAppNumber:   number,
	}, nil
}

func loadCatalogCfg() (*CatalogCfg, error) {
	const defaultLatestLimit = 4

	latestLimit, err := parseIntEnv("LATEST_LIMIT", defaultLatestLimit)
	if err != nil {
		return nil, e.Wrap("LATEST_LIMIT", err)
	}

	return &CatalogCfg{
		DataFile:    getEnv("CATALOG_FILE"),
		LatestLimit: latestLimit,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseDecimalEnv(key, defaultValue string) (decimal.Decimal, error) {
	v := getEnvOrDefault(key, defaultValue)

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, e.ErrIncorrectEnvVariable
	}

	if d.LessThan(decimal.Zero) {
		return decimal.Zero, e.ErrIncorrectEnvVariable
	}

	return d, nil
}
