package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coinshower.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 450 {
		t.Errorf("window = %dx%d, want 800x450", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.TPS != 60 {
		t.Errorf("tps = %d, want 60", cfg.TPS)
	}
	if cfg.Effect.Duration != 6*time.Second || cfg.Effect.CoinInterval != 300*time.Millisecond {
		t.Errorf("effect timing = %v / %v", cfg.Effect.Duration, cfg.Effect.CoinInterval)
	}
	if cfg.Effect.TotalCoins != 300 || cfg.Effect.MessageColor != 0xFFFFFF {
		t.Errorf("effect = %+v", cfg.Effect)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("no config file expected, got %q", cfg.ConfigFile)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Big Win
debug: true
effect:
  duration: 4s
  coin_interval: 150ms
  total_coins: 40
  message_text: Jackpot!
  message_color: 0xFFD700
`)

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ConfigFile != path {
		t.Errorf("config file = %q, want %q", cfg.ConfigFile, path)
	}
	if cfg.Window.Title != "Big Win" || !cfg.Debug {
		t.Errorf("window/debug = %+v / %v", cfg.Window, cfg.Debug)
	}
	e := cfg.Effect
	if e.Duration != 4*time.Second || e.CoinInterval != 150*time.Millisecond || e.TotalCoins != 40 {
		t.Errorf("effect = %+v", e)
	}
	if e.MessageText != "Jackpot!" || e.MessageColor != 0xFFD700 {
		t.Errorf("message = %q %#x", e.MessageText, e.MessageColor)
	}
	if e.MessageFontSize != 24 {
		t.Errorf("font size should keep its default, got %v", e.MessageFontSize)
	}
}

func TestLoadZeroValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
effect:
  duration: 0s
  total_coins: 0
  message_text: ""
`)

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Effect.Duration != 6*time.Second || cfg.Effect.TotalCoins != 300 {
		t.Errorf("zero values should fall back to defaults, got %+v", cfg.Effect)
	}
	if cfg.Effect.MessageText == "" {
		t.Errorf("empty message should fall back to the default")
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COINSHOWER_EFFECT_TOTAL_COINS", "25")
	t.Setenv("COINSHOWER_WINDOW_WIDTH", "1024")

	cfg, err := Load([]string{"--effect.total_coins", "10", "--seed", "42"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Effect.TotalCoins != 10 {
		t.Errorf("flag should win over env, total coins = %d", cfg.Effect.TotalCoins)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("env width = %d, want 1024", cfg.Window.Width)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestLoadBadFlag(t *testing.T) {
	if _, err := Load([]string{"--no-such-flag"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}
