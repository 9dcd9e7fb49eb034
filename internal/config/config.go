package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is everything the dashboard reads from its environment.
type Config struct {
	ListenAddr   string  `mapstructure:"listen_addr"`
	DataDir      string  `mapstructure:"data_dir"`
	ManifestPath string  `mapstructure:"manifest_path"`
	GeoCap       int     `mapstructure:"geo_cap"`
	GeoSeed      int64   `mapstructure:"geo_seed"`
	TopK         int     `mapstructure:"top_k"`
	SampleRows   int     `mapstructure:"sample_rows"`
	FetchTimeout int     `mapstructure:"fetch_timeout_sec"`
	RateLimit    float64 `mapstructure:"rate_limit_rps"`
}

// Load reads configuration from env and an optional config file.
// Precedence: env > config file > defaults. Env vars use the
// CRIMEDASH_ prefix, e.g. CRIMEDASH_LISTEN_ADDR.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CRIMEDASH")
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("data_dir", "data")
	v.SetDefault("manifest_path", "")
	v.SetDefault("geo_cap", 50000)
	v.SetDefault("geo_seed", 42)
	v.SetDefault("top_k", 5)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("fetch_timeout_sec", 120)
	v.SetDefault("rate_limit_rps", 20)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("crimedash")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// DatasetPath resolves a dataset filename inside the data dir.
func (c *Config) DatasetPath(filename string) string {
	return filepath.Join(c.DataDir, filename)
}
