package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Catalog sources
const (
	SourceFile     = "file"
	SourceDrive    = "drive"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Env     string
	Port    string
	Log     LogConfig
	Catalog CatalogConfig
	Drive   DriveConfig
	DB      DatabaseConfig
	PDF     PDFConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// CatalogConfig selects where the catalog and bundle resources are loaded from
type CatalogConfig struct {
	Source      string // file, drive or postgres
	DataDir     string
	CatalogFile string
	BundlesFile string
	LoadTimeout time.Duration
}

// DriveConfig holds Google Drive settings for the drive source
type DriveConfig struct {
	FolderID        string
	CredentialsPath string
}

// DatabaseConfig holds Postgres settings for the postgres source
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// PDFConfig holds settings for the printable order sheet
type PDFConfig struct {
	ChromePath string
	Timeout    time.Duration
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the Postgres connection string, preferring DATABASE_URL
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from the environment. Call godotenv before Load to pick up a .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env:  v.GetString("env"),
		Port: strings.TrimPrefix(v.GetString("port"), ":"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Catalog: CatalogConfig{
			Source:      strings.ToLower(v.GetString("catalog.source")),
			DataDir:     v.GetString("data.dir"),
			CatalogFile: v.GetString("catalog.file"),
			BundlesFile: v.GetString("bundles.file"),
			LoadTimeout: v.GetDuration("load.timeout"),
		},
		Drive: DriveConfig{
			FolderID:        v.GetString("drive.folder.id"),
			CredentialsPath: v.GetString("google.application.credentials"),
		},
		DB: DatabaseConfig{
			URL:      v.GetString("database.url"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		PDF: PDFConfig{
			ChromePath: v.GetString("chrome.path"),
			Timeout:    v.GetDuration("pdf.timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("catalog.source", SourceFile)
	v.SetDefault("data.dir", "data")
	v.SetDefault("catalog.file", "inventory.json")
	v.SetDefault("bundles.file", "bundles.json")
	v.SetDefault("load.timeout", 30*time.Second)

	v.SetDefault("drive.folder.id", "")
	v.SetDefault("google.application.credentials", "")

	v.SetDefault("database.url", "")
	v.SetDefault("db.host", "")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("chrome.path", "")
	v.SetDefault("pdf.timeout", 30*time.Second)
}

// Validate checks the settings required by the selected catalog source
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.Catalog.LoadTimeout <= 0 {
		return fmt.Errorf("LOAD_TIMEOUT must be positive")
	}

	switch c.Catalog.Source {
	case SourceFile:
		if c.Catalog.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file catalog source")
		}
	case SourceDrive:
		if c.Drive.FolderID == "" {
			return fmt.Errorf("DRIVE_FOLDER_ID is required for the drive catalog source")
		}
		if c.Drive.CredentialsPath == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS is required for the drive catalog source")
		}
	case SourcePostgres:
		if c.DB.URL == "" && (c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "") {
			return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (want file, drive or postgres)", c.Catalog.Source)
	}

	if c.Catalog.CatalogFile == "" || c.Catalog.BundlesFile == "" {
		return fmt.Errorf("CATALOG_FILE and BUNDLES_FILE cannot be empty")
	}
	return nil
}
