package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig  `validate:"required"`
	Logging  LoggingConfig `validate:"required"`
	Postgres PostgresConfig
	Storage  StorageConfig `validate:"required"`
	Pdf      PdfConfig
	Auth     AuthConfig
	Site     SiteConfig
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level string `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// StorageConfig locates the storage root for generated documents and the
// public URL prefix it maps to for downloads.
type StorageConfig struct {
	Root          string `mapstructure:"root" validate:"required"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// PdfConfig configures the external HTML-to-PDF rasterizer binary.
type PdfConfig struct {
	BinaryPath  string `mapstructure:"binary_path"`
	PageSize    string `mapstructure:"page_size"`
	Orientation string `mapstructure:"orientation"`
}

// AuthConfig carries the manage-orders API key and the anti-forgery token
// expected on interactive generation requests.
type AuthConfig struct {
	APIKey       string `mapstructure:"api_key"`
	RequestToken string `mapstructure:"request_token"`
}

// SiteConfig supplies the site-wide fallbacks used when company settings
// are unset.
type SiteConfig struct {
	Name       string `mapstructure:"name"`
	AdminEmail string `mapstructure:"admin_email"`
	URL        string `mapstructure:"url"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/orderdocs")

	v.SetEnvPrefix("ORDERDOCS")
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
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("storage.root", "./data/orderdocs")
	v.SetDefault("pdf.binary_path", "wkhtmltopdf")
	v.SetDefault("pdf.page_size", "A4")
	v.SetDefault("pdf.orientation", "Portrait")
	v.SetDefault("site.name", "Store")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: "debug"},
		Storage: StorageConfig{Root: "./data/orderdocs"},
		Pdf: PdfConfig{
			BinaryPath:  "wkhtmltopdf",
			PageSize:    "A4",
			Orientation: "Portrait",
		},
		Site: SiteConfig{
			Name:       "Store",
			AdminEmail: "admin@example.com",
			URL:        "https://example.com",
		},
	}
}
