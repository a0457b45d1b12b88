package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Locale != "en" {
		t.Errorf("locale = %q, want en", c.Locale)
	}
	if c.LogLevel != "info" || c.LogFormat != "text" {
		t.Errorf("log defaults = %q/%q", c.LogLevel, c.LogFormat)
	}
	if filepath.Base(c.TemplateDir) != "Downloads" {
		t.Errorf("template_dir = %q, want the Downloads folder", c.TemplateDir)
	}
	if filepath.Base(c.LogDir) != ".merger" {
		t.Errorf("log_dir = %q", c.LogDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MERGER_LOCALE", "fr")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Locale != "fr" {
		t.Errorf("locale = %q, want fr from env", c.Locale)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")

	in := &Global{
		Locale:      "pt",
		TemplateDir: "/data/templates",
		LogLevel:    "debug",
		LogFormat:   "json",
		LogDir:      "/var/log/merger",
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}
