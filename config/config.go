package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google service account used for both Calendar and Sheets.
	ServiceAccountFile string `mapstructure:"SERVICE_ACCOUNT_FILE"`

	// Calendar configuration.
	CalendarID string `mapstructure:"CALENDAR_ID"`

	// Ledger (spreadsheet) configuration.
	SpreadsheetID string `mapstructure:"SPREADSHEET_ID"`
	SheetName     string `mapstructure:"SHEET_NAME"`

	// Working timezone for the slot grid and all display formatting.
	Timezone string `mapstructure:"TIMEZONE"`

	// Source label written to the ledger for every booking action.
	BookingSource string `mapstructure:"BOOKING_SOURCE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("CALENDAR_ID", "")
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("SHEET_NAME", "Sheet1")
	viper.SetDefault("TIMEZONE", "America/Toronto")
	viper.SetDefault("BOOKING_SOURCE", "retell-chat")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
