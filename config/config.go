package config

import (
	"log"

	"github.com/spf13/viper"
)

const Version = "0.1.0"

type Config struct {
	App struct {
		Name string
		Port string
		Prod bool
	}
	Database struct {
		Dsn                  string
		MaxIdleConns         int
		MaxOpenConns         int
		ConnMaxLifetimeHours int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	Auth struct {
		JWTSecret   string
		ExpireHours int
	}
	Rawg struct {
		APIKey  string
		BaseURL string
	}
}

var AppConfig *Config

// InitConfig loads config/config.yml and brings up the database and redis
// connections. Fatal on a missing or unparsable file: nothing works without it.
func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Error unmarshalling config file: %v", err)
	}
	if AppConfig.Rawg.BaseURL == "" {
		AppConfig.Rawg.BaseURL = "https://api.rawg.io/api"
	}
	if AppConfig.Auth.ExpireHours <= 0 {
		AppConfig.Auth.ExpireHours = 72
	}
	initDB()
	initRedis()
	runMigrations()
	initUserCache(userCacheSize)
}

func GetPort() string {
	if AppConfig == nil || AppConfig.App.Port == "" {
		log.Println("Warning: port not set in config file, using default 8080")
		return ":8080"
	}
	port := AppConfig.App.Port
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}
