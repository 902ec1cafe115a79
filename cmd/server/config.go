package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kumobot/botsite/internal/logging"
	"github.com/kumobot/botsite/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultEnvFile = ".env"
	envPrefix      = "BOTSITE"
	configFileName = "botsite"
)

type Config struct {
	server.Config `mapstructure:",squash"`
	Log           logging.Config `mapstructure:"log"`
}

// loadEnvFile copies the dotenv file into the process environment without
// overriding variables that are already set. Only an explicitly requested file must exist.
func loadEnvFile(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file") {
			return nil
		}
		return fmt.Errorf("env file '%s': %w", path, err)
	}
	return nil
}

// loadConfig resolves the config once. Flags win over env, env over the config file, the file over defaults.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", server.DefaultAddr)
	v.SetDefault("http.cert_file", "")
	v.SetDefault("http.key_file", "")
	v.SetDefault("http.trusted_proxies", "")
	v.SetDefault("cors.origins", "")
	v.SetDefault("site.dir", "")
	v.SetDefault("site.name", server.DefaultSiteName)
	v.SetDefault("api.rate_limit", server.DefaultAPIRateLimit)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if cmd.Flag("config").Changed {
		configFilePath, _ := cmd.Flags().GetString("config")
		v.SetConfigFile(configFilePath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/botsite")
		v.SetConfigName(configFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		enoent := errors.Is(err, fs.ErrNotExist)
		_, ok := err.(viper.ConfigFileNotFoundError)
		if !enoent && !ok {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
		if cmd.Flag("config").Changed {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// CORS_ORIGINS is the documented name, the prefixed form wins when both are set
	if err := v.BindEnv("cors.origins", envPrefix+"_CORS_ORIGINS", "CORS_ORIGINS"); err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{
		"http.addr":      "bind",
		"http.cert_file": "cert",
		"http.key_file":  "key",
		"site.dir":       "site-dir",
		"log.level":      "log-level",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	return &cfg, nil
}
