package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-copydebug/app"
	"github.com/anyproto/any-copydebug/app/logger"
	"github.com/anyproto/any-copydebug/copydebug"
)

const CName = "config"

var log = logger.NewNamed(CName)

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (c *Config, err error) {
	c = &Config{}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

type Config struct {
	Log       logger.Config    `yaml:"log"`
	CopyDebug copydebug.Config `yaml:"copyDebug"`
}

func (c *Config) Init(a *app.App) (err error) {
	log.Debug("config loaded", zap.String("filtersField", c.CopyDebug.FiltersField))
	return
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetLogger() logger.Config {
	return c.Log
}

func (c *Config) GetCopyDebug() copydebug.Config {
	return c.CopyDebug
}
