package main

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/zaaray/portfolio/internal/motion"
	"github.com/zaaray/portfolio/internal/nav"
)

const envPrefix = "SITE"

// Config is the server and export configuration. Every key can be set in a
// config file, as SITE_<KEY> in the environment (or .env), or by flag.
type Config struct {
	Addr        string       `mapstructure:"addr"`
	Dev         bool         `mapstructure:"dev"`
	ContentPath string       `mapstructure:"content"`
	ImagesDir   string       `mapstructure:"images"`
	WasmDir     string       `mapstructure:"wasm"`
	LogLevel    string       `mapstructure:"log_level"`
	SiteURL     string       `mapstructure:"site_url"`
	Nav         NavConfig    `mapstructure:"nav"`
	Reveal      RevealConfig `mapstructure:"reveal"`
}

// NavConfig tunes the active-section tracker.
type NavConfig struct {
	HeaderHeight   float64 `mapstructure:"header_height"`
	ProbeFraction  float64 `mapstructure:"probe_fraction"`
	SolidThreshold float64 `mapstructure:"solid_threshold"`
}

// RevealConfig tunes the reveal animation.
type RevealConfig struct {
	Margin   float64       `mapstructure:"margin"`
	Duration time.Duration `mapstructure:"duration"`
	Offset   float64       `mapstructure:"offset"`
}

func (c NavConfig) tracker() nav.Config {
	return nav.Config{
		HeaderHeight:   c.HeaderHeight,
		ProbeFraction:  c.ProbeFraction,
		SolidThreshold: c.SolidThreshold,
	}
}

func (c RevealConfig) motion() motion.Config {
	return motion.Config{
		Margin:   c.Margin,
		Duration: c.Duration,
		Offset:   c.Offset,
	}
}

// defaultAddr honours PORT the way most hosting platforms set it.
func defaultAddr() string {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + port
	}
	return ":8080"
}

func setDefaults(v *viper.Viper) {
	n := nav.DefaultConfig()
	r := motion.DefaultConfig()

	v.SetDefault("addr", defaultAddr())
	v.SetDefault("dev", false)
	v.SetDefault("content", "")
	v.SetDefault("images", "images")
	v.SetDefault("wasm", "dist")
	v.SetDefault("log_level", "info")
	v.SetDefault("site_url", "")

	v.SetDefault("nav.header_height", n.HeaderHeight)
	v.SetDefault("nav.probe_fraction", n.ProbeFraction)
	v.SetDefault("nav.solid_threshold", n.SolidThreshold)

	v.SetDefault("reveal.margin", r.Margin)
	v.SetDefault("reveal.duration", r.Duration)
	v.SetDefault("reveal.offset", r.Offset)
}

// newViper returns a viper instance with defaults and environment binding.
// cfgFile, when set, must exist.
func newViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	// SITE_NAV_HEADER_HEIGHT for nav.header_height
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}
	return v, nil
}

// loadConfig decodes and validates v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr is required")
	case c.Nav.HeaderHeight < 0:
		return errors.Errorf("nav.header_height must not be negative, got %v", c.Nav.HeaderHeight)
	case c.Nav.ProbeFraction < 0 || c.Nav.ProbeFraction > 1:
		return errors.Errorf("nav.probe_fraction must be within [0, 1], got %v", c.Nav.ProbeFraction)
	case c.Nav.SolidThreshold < 0:
		return errors.Errorf("nav.solid_threshold must not be negative, got %v", c.Nav.SolidThreshold)
	case c.Reveal.Margin < 0:
		return errors.Errorf("reveal.margin must not be negative, got %v", c.Reveal.Margin)
	case c.Reveal.Duration < 0:
		return errors.Errorf("reveal.duration must not be negative, got %v", c.Reveal.Duration)
	case c.Reveal.Offset < 0:
		return errors.Errorf("reveal.offset must not be negative, got %v", c.Reveal.Offset)
	}
	if c.SiteURL != "" && !strings.HasPrefix(c.SiteURL, "http://") && !strings.HasPrefix(c.SiteURL, "https://") {
		return errors.Errorf("site_url must be an http(s) URL, got %q", c.SiteURL)
	}
	return nil
}
