// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Sheets struct {
		SpreadsheetID   string `mapstructure:"spreadsheet_id"`
		CredentialsFile string `mapstructure:"credentials_file"`
		TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"sheets"`
	App struct {
		CatalogPath string `mapstructure:"catalog_path"`
		AssetsDir   string `mapstructure:"assets_dir"`
	} `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("sheets.spreadsheet_id", "APP_SHEETS_SPREADSHEET_ID")
	viper.BindEnv("sheets.credentials_file", "APP_SHEETS_CREDENTIALS_FILE")
	viper.BindEnv("database.url", "APP_DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// Defaults for anything the file leaves out.
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.Database.URL == "" {
		log.Println("Database URL not set, using default 'tcc_companion.db' (sqlite)")
		Cfg.Database.URL = "tcc_companion.db"
	}
	if Cfg.Sheets.TimeoutSeconds <= 0 {
		Cfg.Sheets.TimeoutSeconds = 10
	}
	if Cfg.App.CatalogPath == "" {
		Cfg.App.CatalogPath = "configs/protocole.yaml"
	}
	if Cfg.App.AssetsDir == "" {
		Cfg.App.AssetsDir = "assets"
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Content-Type", "X-Patient-ID"}
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Catalog Path: %s", Cfg.App.CatalogPath)
	log.Printf("Sheets configured: %t", Cfg.Sheets.SpreadsheetID != "")

	return nil
}
