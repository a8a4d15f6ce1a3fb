package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/TsubasaBE/go-datefmt"
	"github.com/TsubasaBE/go-datefmt/config"
	"github.com/TsubasaBE/go-datefmt/names"
)

// writeConfig writes body to a fresh TOML file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datefmt.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
pattern    = "DD.MM.YYYY"
locale     = "de-DE"
names      = "cldr"
offset     = "+01:00"
cache_size = 32
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pattern != "DD.MM.YYYY" || cfg.Locale != "de-DE" || cfg.Names != "cldr" || cfg.CacheSize != 32 {
		t.Errorf("Load = %+v", cfg)
	}
	if cfg.Offset != "+01:00" {
		t.Errorf("Offset = %v, want +01:00", cfg.Offset)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := config.Default()
	if cfg.Pattern != want.Pattern || cfg.Locale != want.Locale || cfg.Names != want.Names {
		t.Errorf("Load(empty) = %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown key", `colour = "red"`, config.ErrUnknownKey},
		{"zone and offset", "zone = \"Europe/Paris\"\noffset = 0", config.ErrConflict},
		{"bad offset", `offset = "+25:99"`, config.ErrInvalidOffset},
		{"bad names", `names = "klingon"`, names.ErrUnknownProvider},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			if !errors.Is(err, tc.want) {
				t.Errorf("Load error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(absent) error = %v, want ErrNotExist", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := config.Load(writeConfig(t, `pattern = `)); err == nil {
		t.Error("Load(malformed) succeeded, want error")
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   any
		want int64
	}{
		{int64(-3600000), -3600000},
		{0, 0},
		{18000000, 18000000},
		{"-3600000", -3600000},
		{"Z", 0},
		{"+00:00", 0},
		{"+01:00", -3600000},
		{"+0100", -3600000},
		{"-05:30", 19800000},
		{"+05:45", -20700000},
		{"+10:04:52", -36292000},
		{"+100452", -36292000},
		{" +01:00 ", -3600000},
		{"-0100", -100},
	}
	for _, tc := range tests {
		got, err := config.ParseOffset(tc.in)
		if err != nil {
			t.Errorf("ParseOffset(%#v): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseOffset(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseOffsetInvalid(t *testing.T) {
	for _, in := range []any{"", "+", "+1", "+01:60", "+01:00:60", "+0a:00", "one", []int{1}} {
		if _, err := config.ParseOffset(in); !errors.Is(err, config.ErrInvalidOffset) {
			t.Errorf("ParseOffset(%#v) error = %v, want ErrInvalidOffset", in, err)
		}
	}
}

func TestOptions(t *testing.T) {
	at := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"defaults", *config.Default(), "2024-01-15T12:00:00.000Z"},
		{"offset", config.Config{Names: "english", Offset: "+02:00"}, "2024-01-15T14:00:00.000+02:00"},
		{"zone", config.Config{Names: "english", Zone: "America/New_York"}, "2024-01-15T07:00:00.000-05:00"},
		{"cache", config.Config{Names: "english", Offset: int64(0), CacheSize: 8}, "2024-01-15T12:00:00.000Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := tc.cfg.Options(at)
			if err != nil {
				t.Fatalf("Options: %v", err)
			}
			if got := datefmt.Format(at, config.DefaultPattern, opts...); got != tc.want {
				t.Errorf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOptionsUnknownZone(t *testing.T) {
	cfg := config.Config{Zone: "Nowhere/Special"}
	if _, err := cfg.Options(time.Now()); err == nil {
		t.Error("Options with unknown zone succeeded, want error")
	}
}
