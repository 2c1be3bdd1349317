// Package config loads settings from defaults, an optional YAML file,
// COINSHOWER_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"coinshower/model"
)

const (
	appName   = "coinshower"
	envPrefix = "COINSHOWER"
)

type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	Vsync      bool   `mapstructure:"vsync"`
}

type Config struct {
	Window     WindowConfig           `mapstructure:"window"`
	TPS        int                    `mapstructure:"tps"`
	Debug      bool                   `mapstructure:"debug"`
	Background uint32                 `mapstructure:"background"`
	AssetsDir  string                 `mapstructure:"assets_dir"`
	LogFile    string                 `mapstructure:"log_file"`
	Seed       int64                  `mapstructure:"seed"`
	Effect     model.CoinShowerConfig `mapstructure:"effect"`

	// ConfigFile is the file that was read, empty when running on defaults.
	ConfigFile string `mapstructure:"config_file"`
}

func setDefaults(v *viper.Viper) {
	effect := model.DefaultCoinShowerConfig()

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 450)
	v.SetDefault("window.title", "Coin Shower")
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.vsync", true)
	v.SetDefault("tps", 60)
	v.SetDefault("debug", false)
	v.SetDefault("background", 0x000000)
	v.SetDefault("assets_dir", "")
	v.SetDefault("log_file", "")
	v.SetDefault("seed", 0)

	v.SetDefault("effect.start", effect.Start)
	v.SetDefault("effect.duration", effect.Duration)
	v.SetDefault("effect.coin_interval", effect.CoinInterval)
	v.SetDefault("effect.total_coins", effect.TotalCoins)
	v.SetDefault("effect.message_text", effect.MessageText)
	v.SetDefault("effect.message_font_size", effect.MessageFontSize)
	v.SetDefault("effect.message_color", effect.MessageColor)
}

// Flags declares the command-line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.Bool("debug", false, "show the debug overlay")
	fs.Bool("window.fullscreen", false, "start in fullscreen")
	fs.String("assets_dir", "", "load textures from this directory instead of the embedded assets")
	fs.String("log_file", "", "also append logs to this file")
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Int("effect.total_coins", 0, "maximum number of coins")
	fs.Duration("effect.coin_interval", 0, "time between two coins")
	return fs
}

// Load parses args with the flags from Flags and merges every source.
// A missing config file is not an error.
func Load(args []string) (*Config, error) {
	flags := Flags()
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return load(viper.New(), flags)
}

func load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		// only flags given on the command line override lower layers
		var err error
		flags.Visit(func(f *pflag.Flag) {
			if f.Name == "config" || err != nil {
				return
			}
			err = v.BindPFlag(f.Name, f)
		})
		if err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	path := ""
	if flags != nil {
		path, _ = flags.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/" + appName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.Effect = cfg.Effect.WithDefaults()

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width, cfg.Window.Height = 800, 450
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	return &cfg, nil
}
