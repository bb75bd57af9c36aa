package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.toml")} {
		c, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig(%q) error = %v", path, err)
		}
		want := defaultConfig()
		if c.Spacing != want.Spacing || c.Zone != want.Zone || len(c.Palette) != len(want.Palette) || len(c.Seed) != 3 {
			t.Errorf("loadConfig(%q) = %+v, want defaults", path, c)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
save_directory = "~/blocks"
spacing = 0
seed = []
colour = "red"

[zone]
margin_x = 3

[[palette]]
kind = "pen"
label = "pen down"
`)
	c, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if c.SaveDirectory != filepath.Join(home, "blocks") {
		t.Errorf("SaveDirectory = %q, want %q", c.SaveDirectory, filepath.Join(home, "blocks"))
	}
	if c.Spacing != 0 {
		t.Errorf("Spacing = %v, want 0", c.Spacing)
	}
	if want := (ZoneConfig{MarginX: 3, MarginY: 0, Reach: 8}); c.Zone != want {
		t.Errorf("Zone = %+v, want %+v", c.Zone, want)
	}
	if len(c.Palette) != 1 || c.Palette[0] != (TemplateConfig{Kind: "pen", Label: "pen down"}) {
		t.Errorf("Palette = %+v, want one pen entry", c.Palette)
	}
	if len(c.Seed) != 0 {
		t.Errorf("Seed = %v, want empty", c.Seed)
	}
	if len(c.Undecoded) != 1 || c.Undecoded[0] != "colour" {
		t.Errorf("Undecoded = %v, want [colour]", c.Undecoded)
	}
	if z := c.BlockZone(); z.MarginX != 3 || z.MarginY != 0 || z.Reach != 8 {
		t.Errorf("BlockZone() = %+v", z)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "spacing = = 1"},
		{"type", `spacing = "wide"`},
		{"negative zone", "[zone]\nreach = -1"},
		{"empty label", "[[palette]]\nkind = \"x\"\nlabel = \"  \""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("loadConfig() error = nil, want error")
			}
		})
	}
}

func TestGetSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	abs := filepath.Join(t.TempDir(), "x.png")

	tests := []struct {
		name     string
		saveDir  string
		filename string
		want     string
	}{
		{"no directory", "", "a.png", "a.png"},
		{"directory", dir, "a.png", filepath.Join(dir, "a.png")},
		{"absolute", dir, abs, abs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{SaveDirectory: tt.saveDir}
			got, err := c.GetSavePath(tt.filename)
			if err != nil {
				t.Fatalf("GetSavePath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetSavePath() = %q, want %q", got, tt.want)
			}
		})
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("save directory not created: %v", err)
	}
}
