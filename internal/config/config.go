package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/deploymenttheory/go-icns/internal/common/fsutil"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "go-icns"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "ICNS"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Extraction settings
	Extract struct {
		// OutputDir overrides the default "<input>.extracted" directory
		OutputDir string `mapstructure:"output_dir"`
		// Overwrite allows extraction into an existing directory
		Overwrite bool `mapstructure:"overwrite"`
	} `mapstructure:"extract"`

	// Rendering settings
	Render struct {
		// Interpolation used when resizing: catmullrom, bilinear or nearest
		Interpolation string `mapstructure:"interpolation"`
	} `mapstructure:"render"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Viper instance
	v *viper.Viper

	// Ensure thread safety
	initOnce sync.Once
)

// Initialize sets up the configuration system
func Initialize(cfgFile string) error {
	var err error

	initOnce.Do(func() {
		v = viper.New()

		setDefaults(v)

		// Load configuration from file if specified
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
		} else {
			v.SetConfigName(AppName)
			v.SetConfigType("yaml")
			addSearchPaths(v)
		}

		// Set up environment variables
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()

		// Read configuration file
		if readErr := v.ReadInConfig(); readErr != nil {
			if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
				// Only capture error if the config file was found but couldn't be read
				err = fmt.Errorf("error reading config file: %w", readErr)
			}
			// Config file not found, using defaults and environment variables
			ConfigLoaded = false
			ConfigFile = ""
		} else {
			ConfigLoaded = true
			ConfigFile = v.ConfigFileUsed()
		}

		// Unmarshal config into struct
		if unmarshalErr := v.Unmarshal(&Instance); unmarshalErr != nil {
			err = fmt.Errorf("error parsing config: %w", unmarshalErr)
			return
		}

		ensureDirectories()
	})

	return err
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")

	// Logging to a file is opt-in for a CLI tool; leave log_file empty
	v.SetDefault("log_file", "")

	v.SetDefault("extract.output_dir", "")
	v.SetDefault("extract.overwrite", false)

	v.SetDefault("render.interpolation", "catmullrom")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	// Add user config directory
	configDir, err := fsutil.GetConfigDir(AppName)
	if err == nil {
		v.AddConfigPath(configDir)
	}
}

// ensureDirectories creates necessary directories based on configuration
func ensureDirectories() {
	if Instance.LogFile != "" {
		logDir := filepath.Dir(Instance.LogFile)
		_ = fsutil.CreateDirIfNotExists(logDir)
	}
}

// Set overrides a configuration value at runtime (used by CLI flags)
func Set(key string, value interface{}) {
	if v == nil {
		return
	}
	v.Set(key, value)
	_ = v.Unmarshal(&Instance)
}

// IsSet reports whether a key was set by a file, flag or the environment
func IsSet(key string) bool {
	if v == nil {
		return false
	}
	return v.IsSet(key)
}

// EnvOrDefault reads an environment variable with the application prefix
func EnvOrDefault(name, fallback string) string {
	if val := os.Getenv(EnvPrefix + "_" + name); val != "" {
		return val
	}
	return fallback
}
