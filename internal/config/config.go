package config

import (
	"log"
	"os"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env        string `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer `yaml:"http_server"`
	OrderDB    `yaml:"order_db"`
	LogConfig  `yaml:"log_config"`
	KafkaService `yaml:"kafka_service"`
	Gateway    `yaml:"payment_gateway"`
	Pricing    `yaml:"pricing"`
	Orders     `yaml:"orders"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

type KafkaService struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"order-events"`
}

type Gateway struct {
	BaseURL string        `yaml:"base_url" env:"GATEWAY_BASE_URL"`
	APIKey  string        `yaml:"api_key" env:"GATEWAY_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"GATEWAY_TIMEOUT" env-default:"10s"`
}

// Pricing mirrors the operator-facing price table. USD-denominated.
type Pricing struct {
	BasePriceAssignment   float64 `yaml:"base_price_assignment" env:"BASE_PRICE_ASSIGNMENT" env-default:"20.0"`
	BasePriceProject      float64 `yaml:"base_price_project" env:"BASE_PRICE_PROJECT" env-default:"50.0"`
	BasePricePresentation float64 `yaml:"base_price_presentation" env:"BASE_PRICE_PRESENTATION" env-default:"30.0"`
	BasePriceRedesign     float64 `yaml:"base_price_redesign" env:"BASE_PRICE_REDESIGN" env-default:"25.0"`
	BasePriceSummary      float64 `yaml:"base_price_summary" env:"BASE_PRICE_SUMMARY" env-default:"15.0"`
	BasePriceExpress      float64 `yaml:"base_price_express" env:"BASE_PRICE_EXPRESS" env-default:"50.0"`

	UrgencyMultiplier24h float64 `yaml:"urgency_multiplier_24h" env:"URGENCY_MULTIPLIER_24H" env-default:"2.0"`

	RateUSDToJOD float64 `yaml:"rate_usd_to_jod" env:"RATE_USD_TO_JOD" env-default:"0.71"`
	RateUSDToAED float64 `yaml:"rate_usd_to_aed" env:"RATE_USD_TO_AED" env-default:"3.67"`
	RateUSDToSAR float64 `yaml:"rate_usd_to_sar" env:"RATE_USD_TO_SAR" env-default:"3.75"`
}

type Orders struct {
	// Pending orders with no payment activity are swept after this window.
	ExpiryWindow time.Duration `yaml:"expiry_window" env:"ORDER_EXPIRY_WINDOW" env-default:"72h"`
	QuoteCacheTTL time.Duration `yaml:"quote_cache_ttl" env:"QUOTE_CACHE_TTL" env-default:"5m"`
}

// Tables assembles the injected pricing configuration.
func (p Pricing) Tables() pricing.Tables {
	return pricing.Tables{
		BasePrices: map[domain.ServiceType]float64{
			domain.ServiceAssignment:   p.BasePriceAssignment,
			domain.ServiceProject:      p.BasePriceProject,
			domain.ServicePresentation: p.BasePricePresentation,
			domain.ServiceRedesign:     p.BasePriceRedesign,
			domain.ServiceSummary:      p.BasePriceSummary,
			domain.ServiceExpress:      p.BasePriceExpress,
		},
		AcademicMultipliers: pricing.DefaultAcademicMultipliers(),
		CurrencyRates: map[string]float64{
			"USD": 1.0,
			"JOD": p.RateUSDToJOD,
			"AED": p.RateUSDToAED,
			"SAR": p.RateUSDToSAR,
		},
		Urgency24h: p.UrgencyMultiplier24h,
	}
}

func MustLoad() *OrderConfig {
	configPath := os.Getenv("ORDER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
