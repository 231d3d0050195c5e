package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crewdesk/crewdesk/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Catalog    CatalogConfig    `validate:"required"`
	Invoicing  InvoicingConfig  `validate:"required"`
	Drafts     DraftsConfig
	Cache      CacheConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// CatalogConfig points at the upstream service-request query endpoint.
// The catalog is a read-only external collaborator.
type CatalogConfig struct {
	BaseURL  string `validate:"required"`
	APIKey   string
	CacheTTL time.Duration
}

// InvoicingConfig points at the external create-invoice endpoint.
type InvoicingConfig struct {
	CreateInvoiceURL string `validate:"required"`
	APIKey           string
	Timeout          time.Duration
}

// DraftsConfig controls the in-memory draft session store.
type DraftsConfig struct {
	TTL time.Duration
}

type CacheConfig struct {
	Enabled bool
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/crewdesk")

	v.SetEnvPrefix("CREWDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeAPI))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("catalog.cachettl", 5*time.Minute)
	v.SetDefault("invoicing.timeout", 30*time.Second)
	v.SetDefault("drafts.ttl", 2*time.Hour)
	v.SetDefault("cache.enabled", true)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Drafts:     DraftsConfig{TTL: 2 * time.Hour},
		Catalog:    CatalogConfig{CacheTTL: 5 * time.Minute},
		Invoicing:  InvoicingConfig{Timeout: 30 * time.Second},
		Cache:      CacheConfig{Enabled: true},
	}
}
