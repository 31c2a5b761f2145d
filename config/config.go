package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Hospital HospitalConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type LogConfig struct {
	Level  string
	Format string
}

type HospitalConfig struct {
	Name        string
	ContactInfo string
}

// NotifyConfig selects the SOS contact dispatch mode: "noop" drops
// notifications, "log" writes them to the application log.
type NotifyConfig struct {
	Mode string
}

const (
	NotifyModeNoop = "noop"
	NotifyModeLog  = "log"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "healthcare-coordination")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("HOSPITAL_NAME", "")
	viper.SetDefault("HOSPITAL_CONTACT", "")
	viper.SetDefault("NOTIFY_MODE", NotifyModeNoop)

	// A missing .env is fine; the environment alone is enough.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Hospital: HospitalConfig{
			Name:        viper.GetString("HOSPITAL_NAME"),
			ContactInfo: viper.GetString("HOSPITAL_CONTACT"),
		},
		Notify: NotifyConfig{
			Mode: viper.GetString("NOTIFY_MODE"),
		},
	}

	return config, nil
}
