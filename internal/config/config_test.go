package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "toml",
			file:    "config.toml",
			content: "locale = \"fr_FR\"\nformat = \"long\"\ntimezone = \"Europe/Paris\"\n",
			want:    Config{Locale: "fr_FR", Format: "long", Timezone: "Europe/Paris"},
		},
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "locale: de\nformat: d MMM y\n",
			want:    Config{Locale: "de", Format: "d MMM y", Timezone: "Local"},
		},
		{
			name:    "yml with log level",
			file:    "config.yml",
			content: "log_level: debug\n",
			want:    Config{Format: "medium", Timezone: "Local", LogLevel: "debug"},
		},
		{
			name:    "partial toml keeps defaults",
			file:    "config.toml",
			content: "locale = \"en_GB\"\n",
			want:    Config{Locale: "en_GB", Format: "medium", Timezone: "Local"},
		},
		{
			name:    "malformed toml",
			file:    "config.toml",
			content: "locale = \n",
			wantErr: true,
		},
		{
			name:    "unknown locale",
			file:    "config.toml",
			content: "locale = \"tlh\"\n",
			wantErr: true,
		},
		{
			name:    "bad format",
			file:    "config.toml",
			content: "format = \"QQQ\"\n",
			wantErr: true,
		},
		{
			name:    "bad timezone",
			file:    "config.toml",
			content: "timezone = \"Mars/Olympus_Mons\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", got, Default())
	}
}

func TestLoadUnknownLocaleWraps(t *testing.T) {
	path := writeFile(t, "config.toml", "locale = \"tlh\"\n")
	_, err := Load(path)
	if !errors.Is(err, datefmt.ErrUnknownLocale) {
		t.Errorf("Load() error = %v, want ErrUnknownLocale", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			want := Config{Locale: "it_IT", Format: "short", Timezone: "UTC"}

			if err := Save(path, want); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != want {
				t.Errorf("Load() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMarshalOmitsEmptyLogLevel(t *testing.T) {
	data, err := Marshal(Default(), false)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "log_level") {
		t.Errorf("Marshal() = %q, want no log_level key", data)
	}
	if !strings.Contains(string(data), `format = "medium"`) {
		t.Errorf("Marshal() = %q, want the format key", data)
	}
}

func TestOverride(t *testing.T) {
	cfg := Config{Locale: "fr", Format: "long", Timezone: "UTC"}
	cfg.Override("", "short", "")

	want := Config{Locale: "fr", Format: "short", Timezone: "UTC"}
	if cfg != want {
		t.Errorf("Override() = %+v, want %+v", cfg, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/.config/edtfloc", filepath.Join(home, ".config/edtfloc")},
		{"~", home},
		{"/etc/edtfloc.toml", "/etc/edtfloc.toml"},
		{"relative/config.toml", "relative/config.toml"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	if got := DefaultPath(); got != "~/.config/edtfloc/config.toml" {
		t.Errorf("DefaultPath() = %q", got)
	}
}
