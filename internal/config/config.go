package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultAddr        = ":8000"
	defaultFanoutLimit = 8
)

type Config struct {
	BotToken    string
	Addr        string
	Debug       bool
	FanoutLimit int
}

func NewConfig(cfgFolderPath string) (*Config, error) {
	const errMsg = "Config.NewConfig"

	c := &Config{
		Addr:        defaultAddr,
		FanoutLimit: defaultFanoutLimit,
	}

	envPath := filepath.Join(cfgFolderPath, "app.env")

	err := c.loadEnv(envPath)
	if err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	err = c.validate()
	if err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	return c, nil
}

func (c *Config) loadEnv(filePath string) error {
	// A missing env file is fine, values may come from the process environment.
	_ = godotenv.Load(filePath)

	c.BotToken = os.Getenv("bot_token")
	c.Debug, _ = strconv.ParseBool(os.Getenv("debug"))

	if addr := os.Getenv("addr"); addr != "" {
		c.Addr = addr
	}

	if limit := os.Getenv("fanout_limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return errors.Wrap(err, "loadEnv")
		}
		c.FanoutLimit = parsed
	}

	return nil
}

func (c *Config) validate() error {
	// An empty bot_token is allowed: the service then runs in not-configured
	// mode and reports 503 on resolve endpoints.
	if c.FanoutLimit < 1 {
		err := errors.New("fanout_limit must be at least 1")

		return errors.Wrap(err, "validate")
	}

	return nil
}
