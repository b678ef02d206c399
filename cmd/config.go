package cmd

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/headerhawk/headerhawk/internal/checker"
)

// ScanConfig consolidates the runtime tunables for a scan run.
type ScanConfig struct {
	Timeout time.Duration
	Delay   time.Duration
	MaxURLs int
}

func init() {
	viper.SetDefault("timeout_secs", int(checker.DefaultTimeout/time.Second))
	viper.SetDefault("delay_secs", int(checker.RateLimitDelay/time.Second))
	viper.SetDefault("max_urls", checker.MaxURLs)
}

// bindScanFlags layers the scan flags over the config file keys, so a
// flag set on the command line wins over $HOME/.headerhawk.yaml.
func bindScanFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("timeout_secs", flags.Lookup("timeout"))
	_ = viper.BindPFlag("delay_secs", flags.Lookup("delay"))
}

// loadScanConfig resolves flag > config file > built-in default for
// every tunable. Nonsensical values fall back to the defaults; a zero
// delay is allowed (useful for tests and local targets).
func loadScanConfig() ScanConfig {
	cfg := ScanConfig{
		Timeout: time.Duration(viper.GetInt("timeout_secs")) * time.Second,
		Delay:   time.Duration(viper.GetInt("delay_secs")) * time.Second,
		MaxURLs: viper.GetInt("max_urls"),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = checker.DefaultTimeout
	}
	if cfg.Delay < 0 {
		cfg.Delay = checker.RateLimitDelay
	}
	if cfg.MaxURLs <= 0 {
		cfg.MaxURLs = checker.MaxURLs
	}
	return cfg
}
