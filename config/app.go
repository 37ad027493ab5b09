package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"mft"`
	Port    string `env:"PORT" envDefault:"8080"`
	Env     string `env:"APP_ENV" envDefault:"dev"`
	Debug   bool   `env:"DEBUG"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"mft_db"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		cfg := &Config{}
		if err := env.Parse(cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		AppConfig = cfg
	})
}
