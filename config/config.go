package config

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"io"
)

type Config struct {
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Output    OutputConfig `mapstructure:"output"`
	Store     StoreConfig  `mapstructure:"store"`
	Verify    VerifyConfig `mapstructure:"verify"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type VerifyConfig struct {
	Workers      int   `mapstructure:"workers"`
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
}

const (
	OutputFormatAuto = "auto"
	OutputFormatHex  = "hex"
	OutputFormatRaw  = "raw"
)

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputFormatAuto, OutputFormatHex, OutputFormatRaw:
	default:
		return errors.Errorf("invalid output format %q", c.Output.Format)
	}
	if c.Verify.Workers < 1 {
		return errors.New("verify workers must be at least 1")
	}
	if c.Verify.MaxFileBytes < 0 {
		return errors.New("verify max file bytes must not be negative")
	}
	return nil
}
