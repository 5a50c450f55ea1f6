package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Data    DataConfig    `yaml:"data" json:"data"`
	Redis   RedisConfig   `yaml:"redis" json:"redis"`
	Session SessionConfig `yaml:"session" json:"session"`
	Balance Balance       `yaml:"balance" json:"balance"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type DataConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

// RedisConfig selects the leaderboard backend. An empty Addr means the
// in-memory repository is used.
type RedisConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type SessionConfig struct {
	TickMillis      int  `yaml:"tick_millis" json:"tick_millis"`
	SampleSeconds   int  `yaml:"sample_seconds" json:"sample_seconds"`
	AutosaveSeconds int  `yaml:"autosave_seconds" json:"autosave_seconds"`
	CreditOffline   bool `yaml:"credit_offline" json:"credit_offline"`
}

// Balance holds the progression constants. Content values are arbitrary;
// these are the knobs that shape the reset curves.
type Balance struct {
	PrestigeDivisor      float64 `yaml:"prestige_divisor" json:"prestige_divisor"`
	AscensionDivisor     float64 `yaml:"ascension_divisor" json:"ascension_divisor"`
	TranscendenceDivisor float64 `yaml:"transcendence_divisor" json:"transcendence_divisor"`
	EternityDivisor      float64 `yaml:"eternity_divisor" json:"eternity_divisor"`
	BulkCeiling          int     `yaml:"bulk_ceiling" json:"bulk_ceiling"`
	SeriesCap            int     `yaml:"series_cap" json:"series_cap"`
	EventWindowHours     int     `yaml:"event_window_hours" json:"event_window_hours"`
}

func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8137"
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Session.TickMillis <= 0 {
		c.Session.TickMillis = 100
	}
	if c.Session.SampleSeconds <= 0 {
		c.Session.SampleSeconds = 10
	}
	if c.Session.AutosaveSeconds <= 0 {
		c.Session.AutosaveSeconds = 30
	}
	if c.Balance.PrestigeDivisor <= 0 {
		c.Balance.PrestigeDivisor = 10_000_000
	}
	if c.Balance.AscensionDivisor <= 0 {
		c.Balance.AscensionDivisor = 500
	}
	if c.Balance.TranscendenceDivisor <= 0 {
		c.Balance.TranscendenceDivisor = 250
	}
	if c.Balance.EternityDivisor <= 0 {
		c.Balance.EternityDivisor = 100
	}
	if c.Balance.BulkCeiling <= 0 {
		c.Balance.BulkCeiling = 10_000
	}
	if c.Balance.SeriesCap <= 0 {
		c.Balance.SeriesCap = 1_000
	}
	if c.Balance.EventWindowHours <= 0 {
		c.Balance.EventWindowHours = 48
	}
}

// Load reads a yaml config file. A missing file is not an error; the
// defaults carry a runnable setup.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
