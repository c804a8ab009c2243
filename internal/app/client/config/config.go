package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultEnv       = "local"
	defaultConfigDir = ".gomarket"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	ServerURL string `mapstructure:"server_url"`
	LogLevel  string `mapstructure:"log_level"`
	ConfigDir string `mapstructure:"config_dir"`
	// DataPath — путь к локальной базе клиента (sqlite).
	DataPath string `mapstructure:"data_path"`
}

// MustLoad загружает конфигурацию клиента.
func MustLoad() *Config {
	// .env ищем рядом с местом запуска
	envPath := ".env"
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_URL", defaultServerURL)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	config := &Config{
		Env:       viper.GetString("APP_ENV"),
		ServerURL: viper.GetString("SERVER_URL"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		ConfigDir: configDir,
		DataPath:  filepath.Join(configDir, "client.db"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url не может быть пустым")
	}
	return nil
}
