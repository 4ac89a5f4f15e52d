package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	JWT     JWTConfig
	Issuers IssuerConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// IssuerConfig sets the simulated latency of the external billing and
// signature stubs
type IssuerConfig struct {
	ReceiptLatency   time.Duration
	SignatureLatency time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 8 * time.Hour
	}

	receiptLatency, err := time.ParseDuration(viper.GetString("RECEIPT_LATENCY"))
	if err != nil {
		receiptLatency = 800 * time.Millisecond
	}

	signatureLatency, err := time.ParseDuration(viper.GetString("SIGN_LATENCY"))
	if err != nil {
		signatureLatency = 1200 * time.Millisecond
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Issuers: IssuerConfig{
			ReceiptLatency:   receiptLatency,
			SignatureLatency: signatureLatency,
		},
	}

	return config, nil
}
