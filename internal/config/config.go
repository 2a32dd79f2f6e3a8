package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// App configuration
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Mongo  MongoConfig
}

// Default configuration values
const (
	DefaultServerPort = "8080"
	DefaultServerHost = ""
	DefaultMongoURI   = "mongodb://localhost:27017"
	DefaultMongoDB    = "employees-db"
	DefaultAppEnv     = "development"
	DefaultAppName    = "employee-api"
	DefaultLogLevel   = "info"
)

// Load reads configuration from the environment via viper, with an
// optional config file, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", DefaultAppEnv),
			Name:     getString(v, "APP_NAME", DefaultAppName),
			LogLevel: getString(v, "LOG_LEVEL", DefaultLogLevel),
		},
		Server: ServerConfig{
			Host: getString(v, "SERVER_HOST", DefaultServerHost),
			Port: getString(v, "SERVER_PORT", DefaultServerPort),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", DefaultMongoURI),
			Database: getString(v, "MONGO_DB", DefaultMongoDB),
		},
	}

	return cfg, nil
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
