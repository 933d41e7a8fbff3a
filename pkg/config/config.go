package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Devansh-sys/todo-list-cts/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	Database string            `mapstructure:"database"`
	Theme    string            `mapstructure:"theme"`
	KeyMap   map[string]string `mapstructure:"keymap"`
}

// Styles holds the colors the UI renders with
type Styles struct {
	BorderColor       string
	AccentColor       string
	NormalTextColor   string
	MutedTextColor    string
	SelectedTextColor string
	SelectedBgColor   string
	ErrorColor        string
	DoneColor         string
	HighPrioColor     string
	LowPrioColor      string
}

// Load reads the configuration file, creating one with defaults on first
// run. A command-line database path overrides the configured one.
func Load(configPath, dbOverride string) (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "todo-list-cts")
	config := Config{
		Database: filepath.Join(configDir, "tasks.db"),
		Theme:    "light",
		KeyMap:   keymaps.GetDefaultKeyMappings(),
	}

	viper.SetConfigName("config")
	viper.SetConfigType("json")
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return config, err
		}
		// No config yet, write the defaults
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, err
		}
		viper.Set("database", config.Database)
		viper.Set("theme", config.Theme)
		viper.Set("keymap", config.KeyMap)
		if err := viper.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, err
		}
	} else {
		if err := viper.Unmarshal(&config); err != nil {
			return config, err
		}
	}

	if dbOverride != "" {
		config.Database = dbOverride
	}
	if config.Theme != "dark" && config.Theme != "light" {
		config.Theme = "light"
	}

	return config, nil
}

// SaveTheme persists a changed theme preference. Errors are ignored; the
// toggle still applies for the running session.
func SaveTheme(theme string) {
	viper.Set("theme", theme)
	_ = viper.WriteConfig()
}

// StylesForTheme returns the color palette for a theme
func StylesForTheme(theme string) Styles {
	if theme == "dark" {
		return Styles{
			BorderColor:       "240",
			AccentColor:       "205",
			NormalTextColor:   "252",
			MutedTextColor:    "243",
			SelectedTextColor: "229",
			SelectedBgColor:   "57",
			ErrorColor:        "9",
			DoneColor:         "242",
			HighPrioColor:     "203",
			LowPrioColor:      "72",
		}
	}
	return Styles{
		BorderColor:       "245",
		AccentColor:       "127",
		NormalTextColor:   "235",
		MutedTextColor:    "246",
		SelectedTextColor: "230",
		SelectedBgColor:   "97",
		ErrorColor:        "124",
		DoneColor:         "247",
		HighPrioColor:     "160",
		LowPrioColor:      "29",
	}
}
