// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Auth    *Auth
	Data    *Data
	Admin   *Admin
	Logger  *Logger
	Viper   *viper.Viper
}

// IsProd reports whether the application runs in production mode.
func (c *Config) IsProd() bool {
	return c.RunMode == "release" || c.RunMode == "prod"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig loads the configuration from the file.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvAliases(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// The whole configuration may come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Host:    v.GetString("server.host"),
		Port:    v.GetInt("server.port"),
		Auth:    getAuth(v),
		Data:    getData(v),
		Admin:   getAdmin(v),
		Logger:  getLogger(v),
		Viper:   v,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindEnvAliases maps the conventional environment variable names onto
// their config keys.
func bindEnvAliases(v *viper.Viper) {
	_ = v.BindEnv("data.mongodb.uri", "MONGODB_URI")
	_ = v.BindEnv("data.mongodb.database", "MONGODB_DATABASE")
	_ = v.BindEnv("auth.jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("admin.email", "ADMIN_EMAIL")
	_ = v.BindEnv("admin.username", "ADMIN_USERNAME")
	_ = v.BindEnv("admin.password", "ADMIN_PASSWORD")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "marina-api")
	v.SetDefault("run_mode", "release")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
	v.SetDefault("data.mongodb.database", "marina")
	v.SetDefault("auth.jwt.expire", 60)
	v.SetDefault("admin.email", "admin@exemple.com")
	v.SetDefault("admin.username", "Admin")
	v.SetDefault("admin.password", "test1234")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
}

func validate(cfg *Config) error {
	if cfg.Data.MongoDB.URI == "" {
		return fmt.Errorf("config: data.mongodb.uri is required (set MONGODB_URI)")
	}
	if cfg.Auth.JWT.Secret == "" {
		return fmt.Errorf("config: auth.jwt.secret is required (set JWT_SECRET)")
	}
	return nil
}
