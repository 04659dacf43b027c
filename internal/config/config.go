package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Security struct {
	JWTKey   string        `yaml:"jwt_key" env:"JWT_KEY" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"12h"`
}

type Insurance struct {
	// Share of the subtotal the insurer covers when the active prescription
	// names a provider. The till applies a flat 70%.
	CoveragePercent int64 `yaml:"coverage_percent" env:"INSURANCE_COVERAGE_PERCENT" env-default:"70"`
}

type Redis struct {
	Enabled     bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Addr        string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password    string `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	ReceiptList string `yaml:"receipt_list" env:"REDIS_RECEIPT_LIST" env-default:"pharmacy:receipts"`
}

type SendGrid struct {
	Enabled   bool   `yaml:"enabled" env:"SENDGRID_ENABLED" env-default:"false"`
	APIKey    string `yaml:"api_key" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"from_email" env:"SENDGRID_FROM_EMAIL"`
	FromName  string `yaml:"from_name" env:"SENDGRID_FROM_NAME"`
	ReceiptTo string `yaml:"receipt_to" env:"SENDGRID_RECEIPT_TO"`
}

type Tracing struct {
	Enabled  bool   `yaml:"enabled" env:"TRACING_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"OTLP_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Security   Security  `yaml:"security"`
	Insurance  Insurance `yaml:"insurance"`
	Redis      Redis     `yaml:"redis"`
	SendGrid   SendGrid  `yaml:"sendgrid"`
	Tracing    Tracing   `yaml:"tracing"`

	// Fixed data supplied at startup: the cashier table and the sellable
	// catalog. Neither mutates during a session.
	Users   []models.User           `yaml:"users"`
	Catalog []models.MedicationItem `yaml:"catalog"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	if len(cfg.Users) == 0 {
		log.Fatal("config must supply at least one user")
	}

	if len(cfg.Catalog) == 0 {
		log.Fatal("config must supply a medication catalog")
	}

	return &cfg
}
