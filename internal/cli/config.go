package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cairo-glyph/glyph/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "GLYPH"

	cfgKeyNamespace   = "namespace"
	cfgKeyLibsDir     = "libs_dir"
	cfgKeySearchPaths = "search_paths"
	cfgKeyRegistry    = "registry"
	cfgKeyExclude     = "exclude"
	cfgKeySkipPolicy  = "skip_policy"
	cfgKeyLogLevel    = "log_level"

	defaultLogLevel = "warn"
)

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error and nothing is written to disk. GLYPH_* environment variables
// override the file, and flags that were set override both.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyNamespace, types.DefaultNamespace)
	v.SetDefault(cfgKeyLibsDir, types.DefaultLibsDir)
	v.SetDefault(cfgKeySkipPolicy, string(types.SkipExisting))
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if f := flags.Lookup("registry"); f != nil {
		if err := v.BindPFlag(cfgKeyRegistry, f); err != nil {
			return nil, err
		}
	}
	if f := flags.Lookup("log-level"); f != nil {
		if err := v.BindPFlag(cfgKeyLogLevel, f); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// configFromViper builds a types.Config. A relative registry path resolves
// against projectDir.
func configFromViper(v *viper.Viper, projectDir string) types.Config {
	cfg := types.Config{
		Namespace:   v.GetString(cfgKeyNamespace),
		LibsDir:     v.GetString(cfgKeyLibsDir),
		SearchPaths: v.GetStringSlice(cfgKeySearchPaths),
		Registry:    v.GetString(cfgKeyRegistry),
		Exclude:     v.GetStringSlice(cfgKeyExclude),
		SkipPolicy:  types.SkipPolicy(v.GetString(cfgKeySkipPolicy)),
	}
	if cfg.Registry != "" && !filepath.IsAbs(cfg.Registry) {
		cfg.Registry = filepath.Join(projectDir, cfg.Registry)
	}
	return cfg
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns false and
// leaves it untouched.
func writeConfigIfMissing(configDir string) (string, bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return path, false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(defaultConfigFile())
	if err != nil {
		return path, false, fmt.Errorf("marshal config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, false, err
	}
	return path, true, nil
}

// configFile is the structure written to config.yaml by init.
type configFile struct {
	types.Config `yaml:",inline"`
	LogLevel     string `yaml:"log_level"`
}

func defaultConfigFile() configFile {
	return configFile{
		Config:   types.DefaultConfig(),
		LogLevel: defaultLogLevel,
	}
}

const configHeader = `# glyph configuration
#
# search_paths: directories holding the contracts namespace (default: the
#   active virtualenv's site-packages, or $GLYPH_PATH)
# registry: optional YAML or TOML file mapping library names to directories
# exclude: extra name patterns never copied, besides __init__.py and __pycache__
# skip_policy: "skip" leaves existing copies alone; "verify" also reports
#   copies that differ from their source

`
