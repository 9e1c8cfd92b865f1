package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/pianolayout/pkg/errors"
	"github.com/matzehuels/pianolayout/pkg/keyboard"
)

func TestParse(t *testing.T) {
	data := []byte(`
[tuning]
width_overlap = 0.04

[render]
formats = ["svg", "png"]
orientation = "horizontal"
width = 1600
labels = true
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := Config{
		Tuning: keyboard.Tuning{SpanCorrection: 0.006, WidthOverlap: 0.04, BlackCrossExtent: 0.6},
		Render: Render{
			Formats:     []string{"svg", "png"},
			Orientation: "horizontal",
			Width:       1600,
			Labels:      true,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[tuning\nwidth_overlap = 0.04"},
		{"unknown key", "[tuning]\nkey_count = 61"},
		{"unknown table", "[audio]\nvolume = 1"},
		{"black extent out of range", "[tuning]\nblack_cross_extent = 1.5"},
		{"negative width", "[render]\nwidth = -1"},
		{"span collapses", "[tuning]\nspan_correction = -1"},
		{"negative white extent", "[tuning]\nwidth_overlap = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("[render]\nlabels = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Render.Labels {
		t.Error("Labels = false, want true")
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want %v", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func TestLoadOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, used, err := LoadOptional("")
	if err != nil {
		t.Fatalf("LoadOptional() error: %v", err)
	}
	if used != "" {
		t.Errorf("used = %q, want defaults", used)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("LoadOptional() mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(FileName, []byte("[render]\nwidth = 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, used, err = LoadOptional("")
	if err != nil {
		t.Fatalf("LoadOptional() error: %v", err)
	}
	if used != FileName || cfg.Render.Width != 300 {
		t.Errorf("LoadOptional() = (%+v, %q)", cfg.Render, used)
	}
}

func TestLoadOptionalStatError(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "file")
	if err := os.WriteFile(notDir, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// stat fails with ENOTDIR, which is not a missing file
	_, used, err := loadOptional("", filepath.Join(notDir, FileName))
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("loadOptional() error = %v, want %v", err, errs.ErrCodeInvalidConfig)
	}
	if used != "" {
		t.Errorf("used = %q, want empty", used)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Render.Labels = true
	cfg.Render.Width = 320

	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v\n%s", err, data)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
