package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Clinic    Clinic    `mapstructure:",squash"`
	Vapi      Vapi      `mapstructure:",squash"`
	Google    Google    `mapstructure:",squash"`
	WhatsApp  WhatsApp  `mapstructure:",squash"`
	Instagram Instagram `mapstructure:",squash"`
	MetaAds   MetaAds   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Clinic struct {
	Name     string `mapstructure:"clinic_name"`
	Timezone string `mapstructure:"clinic_timezone"`
}

type Vapi struct {
	URL           string `mapstructure:"vapi_url"`
	APIKey        string `mapstructure:"vapi_api_key"`
	AssistantID   string `mapstructure:"vapi_assistant_id"`
	PhoneNumberID string `mapstructure:"vapi_phone_number"`
}

type Google struct {
	CredentialsFile string `mapstructure:"google_application_credentials"`
	CalendarID      string `mapstructure:"google_calendar_id"`
	SheetID         string `mapstructure:"google_sheet_id"`
	SheetRange      string `mapstructure:"google_sheet_range"`
}

type WhatsApp struct {
	GraphURL    string `mapstructure:"whatsapp_graph_url"`
	AccessToken string `mapstructure:"whatsapp_access_token"`
	PhoneID     string `mapstructure:"whatsapp_phone_id"`
	VerifyToken string `mapstructure:"whatsapp_verify_token"`
}

type Instagram struct {
	GraphURL    string `mapstructure:"instagram_graph_url"`
	AccessToken string `mapstructure:"instagram_access_token"`
	VerifyToken string `mapstructure:"instagram_verify_token"`
}

type MetaAds struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	Version     string `mapstructure:"meta_version"`
	URL         string `mapstructure:"-"`
	AdAccountID string `mapstructure:"meta_ad_account_id"`
	AccessToken string `mapstructure:"meta_access_token"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 3002)

	viper.SetDefault("CLINIC_NAME", "NovaSync Dental")
	viper.SetDefault("CLINIC_TIMEZONE", "America/New_York")

	viper.SetDefault("VAPI_URL", "https://api.vapi.ai")

	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_SHEET_ID", "1l_PBoX6lET_E8Pfm5wwBkAmaFObDJmpVmDlsereA_2k")
	viper.SetDefault("GOOGLE_SHEET_RANGE", "Form Responses 1!A:J")

	viper.SetDefault("WHATSAPP_GRAPH_URL", "https://graph.facebook.com/v17.0")
	viper.SetDefault("WHATSAPP_VERIFY_TOKEN", "nova_sync_secret")

	viper.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.facebook.com/v17.0")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	applyPrefixedFallbacks(config)

	// The front-end env file sometimes ends up copied to the backend, so the
	// Instagram webhook token falls back to the WhatsApp one.
	if config.Instagram.VerifyToken == "" {
		config.Instagram.VerifyToken = config.WhatsApp.VerifyToken
	}

	config.MetaAds.URL = fmt.Sprintf("%s/%s", config.MetaAds.BaseURL, config.MetaAds.Version)

	if config.Google.CredentialsFile == "" {
		return nil, errors.New("GOOGLE_APPLICATION_CREDENTIALS is required")
	}

	return config, nil
}

// applyPrefixedFallbacks honors the VITE_-prefixed variants of the messaging
// and ads credentials, preferring the prefixed value when both are set.
func applyPrefixedFallbacks(config *Config) {
	if v := viper.GetString("VITE_WHATSAPP_ACCESS_TOKEN"); v != "" {
		config.WhatsApp.AccessToken = v
	}
	if v := viper.GetString("VITE_WHATSAPP_PHONE_ID"); v != "" {
		config.WhatsApp.PhoneID = v
	}
	if v := viper.GetString("VITE_INSTAGRAM_ACCESS_TOKEN"); v != "" {
		config.Instagram.AccessToken = v
	}
	if v := viper.GetString("VITE_META_ACCESS_TOKEN"); v != "" {
		config.MetaAds.AccessToken = v
	}
	if v := viper.GetString("VITE_META_AD_ACCOUNT_ID"); v != "" {
		config.MetaAds.AdAccountID = v
	}
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found, relying on process environment")
}
