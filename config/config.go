package config

import (
	"encoding/json"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
	"io/ioutil"
)

type Config struct {
	BaseDir   string
	Verbosity int
}

// MakeConfig builds the configuration from defaults, an optional JSON file and command line flags,
// later sources overriding earlier ones.
func MakeConfig(ctx *cli.Context) (*Config, error) {
	cfg := getDefaultConfig()

	if file := ctx.String(CfgFileFlag.Name); file != "" {
		if err := loadConfig(file, cfg); err != nil {
			return nil, err
		}
	}

	applyFlags(ctx, cfg)

	baseDir, err := homedir.Expand(cfg.BaseDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand base dir %v", cfg.BaseDir)
	}
	cfg.BaseDir = baseDir
	return cfg, nil
}

func getDefaultConfig() *Config {
	return &Config{
		BaseDir:   DefaultBaseDir,
		Verbosity: DefaultVerbosity,
	}
}

func loadConfig(configPath string, cfg *Config) error {
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %v", configPath)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "failed to parse config file %v", configPath)
	}
	return nil
}

func applyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(BaseDirFlag.Name) {
		cfg.BaseDir = ctx.String(BaseDirFlag.Name)
	}
	if ctx.IsSet(VerbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(VerbosityFlag.Name)
	}
}
