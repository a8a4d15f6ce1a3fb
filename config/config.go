// Package config loads formatter defaults from a TOML file.
//
// Example ~/.datefmt.toml:
//
//	pattern = "YYYY-MM-DD HH:mm:ss ZZ"
//	locale  = "de-DE"
//	names   = "cldr"
//	zone    = "Europe/Berlin"
//	# offset = "+01:00"   # or -3600000; mutually exclusive with zone
//	cache_size = 512
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cast"

	"github.com/TsubasaBE/go-datefmt"
	"github.com/TsubasaBE/go-datefmt/names"
	"github.com/TsubasaBE/go-datefmt/pattern"
	"github.com/TsubasaBE/go-datefmt/zone"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "~/.datefmt.toml"

// DefaultPattern is used when the file sets no pattern.
const DefaultPattern = "YYYY-MM-DDTHH:mm:ss.fffZ"

// Errors
var (
	ErrInvalidOffset = errors.New("invalid offset")
	ErrUnknownKey    = errors.New("unknown configuration key")
	ErrConflict      = errors.New("conflicting settings")
)

// Config holds formatter defaults.
type Config struct {
	Pattern   string `toml:"pattern"`
	Locale    string `toml:"locale"`
	Names     string `toml:"names"`
	Zone      string `toml:"zone"`
	Offset    any    `toml:"offset"`
	CacheSize int    `toml:"cache_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pattern: DefaultPattern,
		Locale:  datefmt.DefaultLocale,
		Names:   "english",
	}
}

// Load reads the file at path over the defaults.  An empty path means
// [DefaultPath], which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: Load: %w", err)
	}

	cfg := Default()
	if _, err := os.Stat(expanded); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: Load: %w", err)
	}

	meta, err := toml.DecodeFile(expanded, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: Load: %s: %w", expanded, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: Load: %s: %w: %s", expanded, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings without touching the zone database.
func (c *Config) Validate() error {
	if c.Zone != "" && c.Offset != nil {
		return fmt.Errorf("config: Validate: %w: zone and offset are both set", ErrConflict)
	}
	if _, err := names.ByName(c.Names); err != nil {
		return fmt.Errorf("config: Validate: %w", err)
	}
	if c.Offset != nil {
		if _, err := ParseOffset(c.Offset); err != nil {
			return fmt.Errorf("config: Validate: %w", err)
		}
	}
	return nil
}

// Options converts the configuration into formatter options for instant t.
// A zone is resolved at t, since a region's offset varies over time.
func (c *Config) Options(t time.Time) ([]datefmt.Option, error) {
	provider, err := names.ByName(c.Names)
	if err != nil {
		return nil, fmt.Errorf("config: Options: %w", err)
	}
	opts := []datefmt.Option{
		datefmt.WithLocale(c.Locale),
		datefmt.WithNames(provider),
	}
	if c.CacheSize > 0 {
		opts = append(opts, datefmt.WithCache(pattern.NewCache(c.CacheSize)))
	}

	switch {
	case c.Zone != "":
		ms, err := zone.Offset(t, c.Zone)
		if err != nil {
			return nil, fmt.Errorf("config: Options: %w", err)
		}
		opts = append(opts, datefmt.WithOffset(ms))
	case c.Offset != nil:
		ms, err := ParseOffset(c.Offset)
		if err != nil {
			return nil, fmt.Errorf("config: Options: %w", err)
		}
		opts = append(opts, datefmt.WithOffset(ms))
	}
	return opts, nil
}

// ParseOffset reads an offset in one of two spellings:
//
//   - milliseconds, UTC minus local, as a TOML integer or a decimal string:
//     -3600000 is UTC+01:00;
//   - a clock offset as printed, local minus UTC: "+01:00", "+0100",
//     "-05:30", "+10:04:52" or "Z".  A leading '+' or a ':' selects this
//     form, so "-0100" is read as -100 ms.
func ParseOffset(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		ms, err := cast.ToInt64E(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidOffset, v)
		}
		return ms, nil
	}

	s = strings.TrimSpace(s)
	switch {
	case s == "Z" || s == "z":
		return 0, nil
	case strings.HasPrefix(s, "+") || strings.Contains(s, ":"):
		return parseClock(s)
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return ms, nil
}

// parseClock parses "±HH:MM[:SS]" or "±HHMM[SS]".
func parseClock(s string) (int64, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	sign := int64(-1) // east of UTC is negative
	if s[0] == '-' {
		sign = 1
	}
	digits := strings.ReplaceAll(s[1:], ":", "")
	if len(digits) != 4 && len(digits) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	var parts [3]int64
	for i := 0; i < len(digits)/2; i++ {
		n, err := strconv.ParseUint(digits[2*i:2*i+2], 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
		}
		parts[i] = int64(n)
	}
	if parts[1] >= 60 || parts[2] >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return sign * (parts[0]*3_600_000 + parts[1]*60_000 + parts[2]*1000), nil
}
