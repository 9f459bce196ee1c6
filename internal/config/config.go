package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const sandboxBaseURL = "https://api-m.sandbox.paypal.com"

type Config struct {
	PORT                 string
	MONGO_URL            string
	MONGO_DB             string
	PAYPAL_CLIENT_ID     string
	PAYPAL_CLIENT_SECRET string
	PAYPAL_BASE_URL      string
	KAFKA_ADDRESS        string
	ES_URL               string
	ES_USER              string
	ES_PASSWORD          string
	LOG_LEVEL            string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:                 os.Getenv("PORT"),
		MONGO_URL:            os.Getenv("MONGO_URL"),
		MONGO_DB:             os.Getenv("MONGO_DB"),
		PAYPAL_CLIENT_ID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PAYPAL_CLIENT_SECRET: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PAYPAL_BASE_URL:      os.Getenv("PAYPAL_BASE_URL"),
		KAFKA_ADDRESS:        os.Getenv("KAFKA_ADDRESS"),
		ES_URL:               os.Getenv("ES_URL"),
		ES_USER:              os.Getenv("ES_USER"),
		ES_PASSWORD:          os.Getenv("ES_PASSWORD"),
		LOG_LEVEL:            os.Getenv("LOG_LEVEL"),
	}

	if config.PORT == "" {
		config.PORT = "3000"
	}
	if config.PAYPAL_BASE_URL == "" {
		config.PAYPAL_BASE_URL = sandboxBaseURL
	}
	if config.MONGO_DB == "" {
		config.MONGO_DB = "storefront"
	}

	return config, nil
}
