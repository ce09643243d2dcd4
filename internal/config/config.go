package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataFile       string `mapstructure:"data_file" yaml:"data_file"`
	SheetName      string `mapstructure:"sheet_name" yaml:"sheet_name"`
	MetadataDir    string `mapstructure:"metadata_dir" yaml:"metadata_dir"`
	HistoryDir     string `mapstructure:"history_dir" yaml:"history_dir"`
	MaxDisplayRows int    `mapstructure:"max_display_rows" yaml:"max_display_rows"`
	Watch          bool   `mapstructure:"watch" yaml:"watch"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.waterchat/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".waterchat")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WATERCHAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_file", "FieldData.xlsx")
	v.SetDefault("sheet_name", "FieldData")
	v.SetDefault("max_display_rows", 25)
	v.SetDefault("watch", false)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".waterchat")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve state directories under ~/.waterchat by default.
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	if c.MetadataDir == "" {
		c.MetadataDir = filepath.Join(home, ".waterchat", "metadata")
	}
	if c.HistoryDir == "" {
		c.HistoryDir = filepath.Join(home, ".waterchat", "history")
	}
	return &c, nil
}
