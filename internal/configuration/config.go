package configuration

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"strings-diff/internal/logging"
)

const (
	DefaultTags          = "string"
	DefaultWatchDebounce = 500 * time.Millisecond
)

type Configuration struct {
	Tags       string      `mapstructure:"tags"`
	FailOnDiff bool        `mapstructure:"failOnDiff"`
	Watch      WatchConfig `mapstructure:"watch"`
	Log        LogConfig   `mapstructure:"log"`
}

type WatchConfig struct {
	// Debounce is the quiet period after a file event before the comparison is re-run
	Debounce time.Duration `mapstructure:"debounce"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("strings-diff")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logging.Warning("Couldn't detect home directory: %v", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("/etc/strings-diff/")
	}

	viper.SetEnvPrefix("STRINGS_DIFF")
	// watch.debounce is read from STRINGS_DIFF_WATCH_DEBOUNCE
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("tags", DefaultTags)
	viper.SetDefault("failOnDiff", false)

	viper.SetDefault("watch.debounce", DefaultWatchDebounce)

	viper.SetDefault("log.file", "")
}

// DetectAndReadConfigFile detects the path of the first existing config file
func DetectAndReadConfigFile() (string, error) {
	err := readInConfig()
	if err != nil {
		// no config file at all is fine, everything has a default
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		if os.IsNotExist(err) {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	return GetFilePath(), nil
}

// readInConfig reads and parses the config file
func readInConfig() error {
	return viper.ReadInConfig()
}

// GetFilePath this is only populated _after_ readInConfig()
func GetFilePath() string {
	return viper.ConfigFileUsed()
}

func LoadConfig() error {
	err := viper.Unmarshal(&CurrentConfig)
	if err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

// Validate checks the loaded configuration for values the application cannot work with
func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if config.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, was %s (config: %s)", config.Watch.Debounce, describePath(path))
	}
	return nil
}

func describePath(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
