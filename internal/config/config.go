package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress      string `env:"RUN_ADDRESS"`
	RecordKeeperURL string `env:"RECORD_KEEPER_ADDRESS"`
	BakongStatusURL string `env:"BAKONG_STATUS_ADDRESS"`
	ProvisioningURL string `env:"PROVISIONING_ADDRESS"`
	ProvisioningKey string `env:"PROVISIONING_KEY"`
	JWTUserSecret   string `env:"JWT_USER_SECRET"`
	// SignerMode выбирает реализацию кодировщика платежной строки:
	// khqr.ModeBakong или khqr.ModeStub.
	SignerMode string `env:"SIGNER_MODE"`

	// Реквизиты мерчанта, зашиваемые в платежную строку.
	BankAccount   string `env:"MERCHANT_BANK_ACCOUNT"`
	MerchantName  string `env:"MERCHANT_NAME"`
	MerchantCity  string `env:"MERCHANT_CITY"`
	StoreLabel    string `env:"MERCHANT_STORE_LABEL"`
	PhoneNumber   string `env:"MERCHANT_PHONE"`
	TerminalLabel string `env:"MERCHANT_TERMINAL"`
}

func LoadConfig() (*Config, error) {
	// .env необязателен, его отсутствие не ошибка.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.RecordKeeperURL == "" {
		return nil, errors.New("record keeper address is not set")
	}
	if conf.ProvisioningKey == "" {
		return nil, errors.New("provisioning API key is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.RecordKeeperURL, "r", "", "Record keeper API address")
	flag.StringVar(&flagConfig.BakongStatusURL, "b", "https://api-bakong.nbc.gov.kh", "Payment status API address")
	flag.StringVar(&flagConfig.ProvisioningURL, "p", "https://api.tdmmail.pro", "Mailbox provisioning API address")
	flag.StringVar(&flagConfig.ProvisioningKey, "k", "", "Mailbox provisioning API key")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.SignerMode, "s", "bakong", "QR signer mode: bakong or stub")

	flag.StringVar(&flagConfig.BankAccount, "merchant-account", "meng_topup@aclb", "Merchant bank account")
	flag.StringVar(&flagConfig.MerchantName, "merchant-name", "MailShop", "Merchant name")
	flag.StringVar(&flagConfig.MerchantCity, "merchant-city", "Phnom Penh", "Merchant city")
	flag.StringVar(&flagConfig.StoreLabel, "merchant-store", "MShop", "Merchant store label")
	flag.StringVar(&flagConfig.PhoneNumber, "merchant-phone", "855976666666", "Merchant phone number")
	flag.StringVar(&flagConfig.TerminalLabel, "merchant-terminal", "Cashier-01", "Merchant terminal label")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		RecordKeeperURL: defaultIfBlank(envConfig.RecordKeeperURL, flagsConfig.RecordKeeperURL),
		BakongStatusURL: defaultIfBlank(envConfig.BakongStatusURL, flagsConfig.BakongStatusURL),
		ProvisioningURL: defaultIfBlank(envConfig.ProvisioningURL, flagsConfig.ProvisioningURL),
		ProvisioningKey: defaultIfBlank(envConfig.ProvisioningKey, flagsConfig.ProvisioningKey),
		JWTUserSecret:   defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		SignerMode:      defaultIfBlank(envConfig.SignerMode, flagsConfig.SignerMode),
		BankAccount:     defaultIfBlank(envConfig.BankAccount, flagsConfig.BankAccount),
		MerchantName:    defaultIfBlank(envConfig.MerchantName, flagsConfig.MerchantName),
		MerchantCity:    defaultIfBlank(envConfig.MerchantCity, flagsConfig.MerchantCity),
		StoreLabel:      defaultIfBlank(envConfig.StoreLabel, flagsConfig.StoreLabel),
		PhoneNumber:     defaultIfBlank(envConfig.PhoneNumber, flagsConfig.PhoneNumber),
		TerminalLabel:   defaultIfBlank(envConfig.TerminalLabel, flagsConfig.TerminalLabel),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
